package models

// Request payload structs for every endpoint. Decoding into typed structs
// drops extraneous JSON fields before validation runs, so handlers only
// ever see the declared field set.

// RegisterRequest is the payload of POST /user/register and
// POST /admin/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the payload of POST /user/login and POST /admin/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// EditProfileRequest is the payload of PUT /user/profile/edit.
// Both fields are optional; absence means "leave unchanged".
type EditProfileRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// ChangePasswordRequest is the payload of PUT /user/profile/changePassword.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// ForgotPasswordRequest is the payload of POST /user/forgotPassword.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// CreateFeedbackRequest is the payload of POST /feedback/create.
// The owner is taken from the authenticated identity, never from the body.
type CreateFeedbackRequest struct {
	FeedbackText string `json:"feedbackText"`
	Details      string `json:"details"`
}

// FeedbackStatusRequest is the payload of PUT /feedback/update/{feedbackId}.
type FeedbackStatusRequest struct {
	Status string `json:"status"`
}
