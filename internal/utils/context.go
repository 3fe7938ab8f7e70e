// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP response writing, JWT token generation and validation, and other
// common operations.
package utils

import (
	"context"

	"github.com/kmolchanov/feedback-service/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key used to store the authenticated identity in the
// request context. Used together with GetIdentityFromContext for type-safe
// retrieval.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.IdentityCtxKey, utils.Identity{SubjectID: 42, Role: models.RoleUser})
var IdentityCtxKey = contextKey("identity")

// Identity is the verified {subject id, role} pair extracted from an
// identity token by the authentication middleware. It is the only piece of
// token state that downstream handlers may rely on.
type Identity struct {
	// SubjectID is the account identifier from the token's "sub" claim.
	SubjectID int64

	// Role is the permission tag from the token's "role" claim.
	Role models.Role
}

// GetIdentityFromContext retrieves the authenticated identity from the context.
//
// Returns the Identity and an ok flag:
//   - ok == true : value is found and has the correct type
//   - ok == false: value is missing or has an unexpected type, meaning the
//     authentication middleware did not run for this request
func GetIdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(Identity)
	return identity, ok
}
