package validators

import "errors"

var (
	// ErrUnsupportedType is returned when a value of an unknown type is
	// passed to a Validator. This indicates a programming error, not bad
	// client input.
	ErrUnsupportedType = errors.New("unsupported type for validation")
)

// ValidationError reports the first violated constraint of a payload.
// Its message is human-readable and safe to return to the caller verbatim.
type ValidationError struct {
	message string
}

// newValidationError constructs a ValidationError with the given client-facing
// message.
func newValidationError(message string) *ValidationError {
	return &ValidationError{message: message}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.message
}
