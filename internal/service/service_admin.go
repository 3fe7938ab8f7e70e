package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/kmolchanov/feedback-service/internal/config"
	"github.com/kmolchanov/feedback-service/internal/logger"
	"github.com/kmolchanov/feedback-service/internal/store"
	"github.com/kmolchanov/feedback-service/internal/utils"
	"github.com/kmolchanov/feedback-service/internal/validators"
	"github.com/kmolchanov/feedback-service/models"
)

// adminService is the concrete implementation of AdminService. Admin accounts
// live in their own namespace: the same username or email may exist as both a
// user and an admin, and the flows here never touch the users table.
type adminService struct {
	adminRepository store.AdminRepository
	validator       validators.Validator

	bcryptCost int

	logger *logger.Logger
}

// NewAdminService constructs an AdminService wired to the given repository
// and validator, with the bcrypt cost taken from cfg.
func NewAdminService(adminRepository store.AdminRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) AdminService {
	return &adminService{
		adminRepository: adminRepository,
		validator:       validator,
		bcryptCost:      cfg.BcryptCost,
		logger:          logger,
	}
}

// Register creates a new admin account. The request is validated against the
// same registration schema as user accounts, then checked for duplicates
// within the admin namespace only.
func (s *adminService) Register(ctx context.Context, request models.RegisterRequest) (models.Admin, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		return models.Admin{}, err
	}

	exists, err := s.adminRepository.ExistsAdminByUsernameOrEmail(ctx, request.Username, request.Email)
	if err != nil {
		return models.Admin{}, fmt.Errorf("duplicate check failed: %w", err)
	}
	if exists {
		return models.Admin{}, store.ErrAdminAlreadyExists
	}

	passwordHash, err := utils.HashPassword(request.Password, s.bcryptCost)
	if err != nil {
		log.Err(err).Str("func", "*adminService.Register").Msg("error hashing password")
		return models.Admin{}, fmt.Errorf("error hashing password: %w", err)
	}

	created, err := s.adminRepository.CreateAdmin(ctx, models.Admin{
		Username: request.Username,
		Email:    request.Email,
		Password: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("username", request.Username).Msg("admin creation ended with error")
		return models.Admin{}, fmt.Errorf("admin creation ended with error: %w", err)
	}

	return created, nil
}

// Login authenticates an existing admin by email and password. Both an
// unknown email and a wrong password yield ErrInvalidCredentials.
func (s *adminService) Login(ctx context.Context, request models.LoginRequest) (models.Admin, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		return models.Admin{}, err
	}

	found, err := s.adminRepository.FindAdminByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, store.ErrAdminNotFound) {
			log.Info().Str("func", "*adminService.Login").Msg("login with unknown email")
			return models.Admin{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "*adminService.Login").Msg("error finding admin by email")
		return models.Admin{}, fmt.Errorf("error finding admin by email: %w", err)
	}

	if !utils.CheckPassword(request.Password, found.Password) {
		log.Info().Int64("id", found.ID).Str("func", "*adminService.Login").Msg("login with wrong password")
		return models.Admin{}, ErrInvalidCredentials
	}

	return found, nil
}
