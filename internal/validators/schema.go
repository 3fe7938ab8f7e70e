package validators

import (
	"fmt"
	"regexp"
	"unicode"
)

// emailPattern is intentionally permissive: one "@" separating non-empty
// local and domain parts, with at least one dot in the domain.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Check is a single constraint on a field value. OK reports whether the
// value satisfies the constraint; Message is returned to the client when it
// does not.
type Check struct {
	OK      func(value string) bool
	Message string
}

// FieldRule declares the constraints of one payload field.
//
// Required fields must be present (non-empty). Optional fields are skipped
// entirely when absent, but when present must satisfy every Check.
type FieldRule struct {
	// Field is the payload field name, used only for schema introspection.
	Field string

	// Required marks the field as mandatory. RequiredMessage is returned
	// when it is absent.
	Required        bool
	RequiredMessage string

	// Checks are evaluated in declaration order after the presence check.
	Checks []Check
}

// Schema is an ordered set of field rules. Validation walks the rules in
// declaration order and stops at the first violated constraint.
type Schema []FieldRule

// Validate checks the given field values against the schema.
//
// values maps field name to its (string) payload value; an empty string is
// treated as "absent". Returns nil when every rule passes, otherwise a
// *ValidationError carrying the first violated constraint's message.
func (s Schema) Validate(values map[string]string) error {
	for _, rule := range s {
		value := values[rule.Field]

		if value == "" {
			if rule.Required {
				return newValidationError(rule.RequiredMessage)
			}
			continue
		}

		for _, check := range rule.Checks {
			if !check.OK(value) {
				return newValidationError(check.Message)
			}
		}
	}

	return nil
}

// MinLen constrains the value to at least n characters.
func MinLen(n int, message string) Check {
	return Check{
		OK:      func(value string) bool { return len([]rune(value)) >= n },
		Message: message,
	}
}

// MaxLen constrains the value to at most n characters.
func MaxLen(n int, message string) Check {
	return Check{
		OK:      func(value string) bool { return len([]rune(value)) <= n },
		Message: message,
	}
}

// Alphanumeric constrains the value to letters and digits only.
func Alphanumeric(message string) Check {
	return Check{
		OK: func(value string) bool {
			for _, r := range value {
				if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
					return false
				}
			}
			return true
		},
		Message: message,
	}
}

// Email constrains the value to a plausible email address shape.
func Email(message string) Check {
	return Check{
		OK:      func(value string) bool { return emailPattern.MatchString(value) },
		Message: message,
	}
}

// OneOf constrains the value to the given set of allowed values.
func OneOf[T ~string](allowed []T, message string) Check {
	return Check{
		OK: func(value string) bool {
			for _, a := range allowed {
				if value == string(a) {
					return true
				}
			}
			return false
		},
		Message: message,
	}
}

// unknownTypeError wraps ErrUnsupportedType with the offending dynamic type
// for easier debugging.
func unknownTypeError(obj any) error {
	return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
}
