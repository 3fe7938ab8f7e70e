package service

import "errors"

var (
	// ErrInvalidCredentials is returned on login when the email is unknown
	// or the password does not match. The two cases are deliberately
	// indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrWrongOldPassword is returned by the change-password flow when the
	// supplied current password does not match the stored digest.
	ErrWrongOldPassword = errors.New("old password is incorrect")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
