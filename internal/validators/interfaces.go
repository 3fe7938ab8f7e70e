// Package validators provides declarative input validation for every
// endpoint payload.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary request payloads.
//   - Schema: an ordered set of per-field rules. Rules are checked in
//     declaration order and validation stops at the first violated
//     constraint, returning its human-readable message.
//
// Usage patterns:
//  1. Declare a Schema per endpoint payload with the constraint catalog
//     (required, min/max length, alphanumeric, email format, enum membership).
//  2. Inject Validator implementations into services.
//  3. Call Validate with context and the decoded payload value.
//
// This package is independent of the transport layer and the storage layer,
// so validation rules are testable without simulating HTTP.
package validators

import "context"

// Validator defines a generic validation interface for request payloads.
// Implementations dispatch on the dynamic type of the input and enforce the
// schema declared for it.
type Validator interface {

	// Validate validates the provided input. Returns nil when the payload
	// satisfies its schema, a *ValidationError carrying the first violated
	// constraint's message otherwise.
	Validate(context.Context, any) error
}
