package store

import (
	"context"

	"github.com/kmolchanov/feedback-service/models"
)

// UserRepository is the persistence contract of the user identity namespace.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	FindAllUsers(ctx context.Context) ([]models.User, error)

	// ExistsUserByUsernameOrEmail reports whether any user record matches
	// the given username OR email. A non-nil excludeID removes that record
	// from the match (used by profile edit to skip the caller itself).
	ExistsUserByUsernameOrEmail(ctx context.Context, username, email string, excludeID *int64) (bool, error)

	UpdateUserProfile(ctx context.Context, id int64, username, email string) (models.User, error)
	UpdateUserPassword(ctx context.Context, id int64, passwordHash string) error
	DeleteUser(ctx context.Context, id int64) error
}

// AdminRepository is the persistence contract of the admin identity
// namespace. It is intentionally narrower than UserRepository: admins only
// register and log in.
type AdminRepository interface {
	CreateAdmin(ctx context.Context, admin models.Admin) (models.Admin, error)
	FindAdminByEmail(ctx context.Context, email string) (models.Admin, error)
	ExistsAdminByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}

// FeedbackRepository is the persistence contract of the feedback lifecycle.
type FeedbackRepository interface {
	CreateFeedback(ctx context.Context, feedback models.Feedback) (models.Feedback, error)
	FindFeedbackByID(ctx context.Context, id int64) (models.Feedback, error)
	FindFeedbacksByUserID(ctx context.Context, userID int64) ([]models.Feedback, error)
	FindAllFeedbacks(ctx context.Context) ([]models.Feedback, error)
	UpdateFeedbackStatus(ctx context.Context, id int64, status models.FeedbackStatus) (models.Feedback, error)
	DeleteFeedback(ctx context.Context, id int64) error
}
