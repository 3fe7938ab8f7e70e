package models

import "time"

// FeedbackStatus is the moderation state of a feedback record.
type FeedbackStatus string

// Allowed feedback statuses. There is no state machine beyond the enum:
// an authorized caller may set any valid value at any time.
const (
	StatusPending  FeedbackStatus = "pending"
	StatusAccepted FeedbackStatus = "accepted"
	StatusRejected FeedbackStatus = "rejected"
)

// AllowedFeedbackStatuses is the exhaustive set of FeedbackStatus values
// accepted by validators and by the feedbacks table constraint.
var AllowedFeedbackStatuses = []FeedbackStatus{StatusPending, StatusAccepted, StatusRejected}

// Feedback is a single piece of user feedback. It is created by a user,
// moderated (status changes) and deleted by admins only.
type Feedback struct {
	// ID is the server-assigned unique identifier of the record.
	ID int64 `json:"id"`

	// FeedbackText is the short summary of the feedback.
	FeedbackText string `json:"feedbackText"`

	// Details is the free-form body of the feedback.
	Details string `json:"details"`

	// Status is the moderation state. Defaults to StatusPending at creation.
	Status FeedbackStatus `json:"status"`

	// UserID references the owning user. Always set to the authenticated
	// caller at creation time, never taken from the request payload.
	UserID int64 `json:"userId"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Feedback model.
func (f Feedback) TableName() string {
	return "feedbacks"
}
