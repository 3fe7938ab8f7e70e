package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Role is the coarse permission tag carried by an identity token.
// Route access is gated on flat role equality, there is no hierarchy.
type Role string

const (
	// RoleUser marks tokens issued to end users.
	RoleUser Role = "user"

	// RoleAdmin marks tokens issued to administrators.
	RoleAdmin Role = "admin"
)

// TokenClaims is the claim set embedded in every issued identity token.
// It extends the standard registered claims (sub, exp, iat, iss) with the
// subject's role, so that authorization middleware can gate routes without
// a database lookup.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Role is the permission tag of the token subject.
	Role Role `json:"role"`
}

// Token wraps a JWT identity token with convenience accessors for
// authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [TokenClaims] for claim access.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted to clients.
//
// SubjectID is a cached, parsed copy of the "sub" claim converted to int64.
// It is populated during token construction or parsing and avoids repeated
// string-to-int conversion.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// TokenClaims provides access to the claim set (sub, exp, iat, iss, role).
	TokenClaims

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// SubjectID is the account identifier extracted from the "sub" claim.
	// Excluded from JSON serialization; it is an internal server-side cache.
	SubjectID int64 `json:"-"`
}

// GetSubjectID extracts the account identifier from the token's "sub"
// (subject) claim, parses it as a base-10 int64, and returns the result.
//
// Returns an error if the subject claim is missing, empty, or cannot be
// converted to int64.
func (t *Token) GetSubjectID() (int64, error) {
	subjectString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting subject from token: %w", err)
	}

	subjectID, err := strconv.ParseInt(subjectString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting subject from token to int64: %w", err)
	}

	return subjectID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
