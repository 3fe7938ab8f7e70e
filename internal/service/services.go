package service

import (
	"github.com/kmolchanov/feedback-service/internal/config"
	"github.com/kmolchanov/feedback-service/internal/logger"
	"github.com/kmolchanov/feedback-service/internal/mailer"
	"github.com/kmolchanov/feedback-service/internal/store"
	"github.com/kmolchanov/feedback-service/internal/validators"
)

type Services struct {
	AuthService     AuthService
	UserService     UserService
	AdminService    AdminService
	FeedbackService FeedbackService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, mail mailer.Mailer, logger *logger.Logger) *Services {
	userValidator := validators.NewUserValidator()
	feedbackValidator := validators.NewFeedbackValidator()

	return &Services{
		AuthService:     NewAuthService(cfg.App, logger),
		UserService:     NewUserService(storages.UserRepository, userValidator, mail, cfg.App, logger),
		AdminService:    NewAdminService(storages.AdminRepository, userValidator, cfg.App, logger),
		FeedbackService: NewFeedbackService(storages.FeedbackRepository, feedbackValidator, logger),
	}
}
