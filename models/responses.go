package models

// Response envelopes shared by every endpoint. Success bodies carry the
// domain payload directly or wrapped with a message; error bodies carry at
// minimum an error field. The shapes mirror what API clients already rely on.

// MessageResponse wraps a human-readable status message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries a client-facing error description. Internal error
// details are logged server-side and never placed here.
type ErrorResponse struct {
	Error string `json:"error"`
}

// LoginResponse is returned on successful login and carries the issued
// identity token.
type LoginResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

// ProfileResponse is the trimmed account view returned by GET /user/.
type ProfileResponse struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

// EditProfileResponse wraps the updated account returned by profile edit.
type EditProfileResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

// DeleteUserResponse wraps the removed account returned by user deletion.
type DeleteUserResponse struct {
	DeletedUser User   `json:"deletedUser"`
	Message     string `json:"message"`
}

// CreateFeedbackResponse wraps a newly created feedback record.
type CreateFeedbackResponse struct {
	CreatedFeedback Feedback `json:"createdFeedback"`
	Message         string   `json:"message"`
}

// DeleteFeedbackResponse wraps the removed feedback record.
type DeleteFeedbackResponse struct {
	DeletedFeedback Feedback `json:"deletedFeedback"`
	Message         string   `json:"message"`
}
