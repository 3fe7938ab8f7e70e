package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a salted bcrypt digest from the given plaintext
// password using the provided work factor.
//
// A cost outside the range supported by bcrypt (or zero) falls back to
// [bcrypt.DefaultCost]. Raising the cost makes every hash and verification
// proportionally more expensive, which is the brute-force resistance knob.
//
// Parameters:
//
//	password - plaintext password to hash
//	cost     - bcrypt work factor (e.g. 10..14)
//
// Returns:
//
//	string - the bcrypt digest, safe to persist
//	error  - non-nil if bcrypt rejects the input (e.g. password longer than
//	         72 bytes)
//
// Example usage:
//
//	digest, err := utils.HashPassword("s3cret-passw0rd", 12)
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// CheckPassword reports whether the plaintext password matches the stored
// bcrypt digest.
//
// It fails closed: a malformed or truncated digest never produces an error
// past this boundary, it simply yields false.
//
// Example usage:
//
//	if !utils.CheckPassword(given, stored) {
//	    // reject the credentials
//	}
func CheckPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
