package service

import (
	"context"

	"github.com/kmolchanov/feedback-service/models"
)

type AuthService interface {
	CreateToken(ctx context.Context, subjectID int64, role models.Role) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type UserService interface {
	Register(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	GetUserByID(ctx context.Context, id int64) (models.User, error)
	EditProfile(ctx context.Context, id int64, request models.EditProfileRequest) (models.User, error)
	ChangePassword(ctx context.Context, id int64, request models.ChangePasswordRequest) error
	ForgotPassword(ctx context.Context, request models.ForgotPasswordRequest) error
	DeleteUser(ctx context.Context, id int64) (models.User, error)
}

type AdminService interface {
	Register(ctx context.Context, request models.RegisterRequest) (models.Admin, error)
	Login(ctx context.Context, request models.LoginRequest) (models.Admin, error)
}

type FeedbackService interface {
	CreateFeedback(ctx context.Context, userID int64, request models.CreateFeedbackRequest) (models.Feedback, error)
	GetFeedbackByID(ctx context.Context, id int64) (models.Feedback, error)
	GetFeedbacksByUserID(ctx context.Context, userID int64) ([]models.Feedback, error)
	GetAllFeedbacks(ctx context.Context) ([]models.Feedback, error)
	UpdateFeedbackStatus(ctx context.Context, id int64, request models.FeedbackStatusRequest) (models.Feedback, error)
	DeleteFeedback(ctx context.Context, id int64) (models.Feedback, error)
}
