package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/kmolchanov/feedback-service/internal/config"
	"github.com/kmolchanov/feedback-service/internal/logger"
	"github.com/kmolchanov/feedback-service/internal/mailer"
	"github.com/kmolchanov/feedback-service/internal/store"
	"github.com/kmolchanov/feedback-service/internal/utils"
	"github.com/kmolchanov/feedback-service/internal/validators"
	"github.com/kmolchanov/feedback-service/models"
)

// temporaryPassword is the fixed value persisted and mailed by the
// forgot-password flow. The next login simply uses it.
const temporaryPassword = "password123"

// userService is the concrete implementation of UserService.
// It owns the full user account lifecycle: registration, login, profile
// management, password changes, and the forgot-password flow.
type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	mailer         mailer.Mailer

	// bcryptCost is the work factor applied when hashing passwords.
	bcryptCost int

	logger *logger.Logger
}

// NewUserService constructs a UserService wired to the given repository,
// validator and mailer, with the bcrypt cost taken from cfg.
func NewUserService(userRepository store.UserRepository, validator validators.Validator, mail mailer.Mailer, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validator,
		mailer:         mail,
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// The request is validated against the registration schema, checked against
// existing usernames and emails, and persisted with a bcrypt password digest.
//
// Returns the persisted user or:
//   - a validators.ValidationError when a field violates the schema.
//   - store.ErrUserAlreadyExists when username or email is taken (either by
//     the pre-check or by the unique constraint on insert).
func (s *userService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		return models.User{}, err
	}

	exists, err := s.userRepository.ExistsUserByUsernameOrEmail(ctx, request.Username, request.Email, nil)
	if err != nil {
		return models.User{}, fmt.Errorf("duplicate check failed: %w", err)
	}
	if exists {
		return models.User{}, store.ErrUserAlreadyExists
	}

	passwordHash, err := utils.HashPassword(request.Password, s.bcryptCost)
	if err != nil {
		log.Err(err).Str("func", "*userService.Register").Msg("error hashing password")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	created, err := s.userRepository.CreateUser(ctx, models.User{
		Username: request.Username,
		Email:    request.Email,
		Password: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("username", request.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created, nil
}

// Login authenticates an existing user by email and password.
//
// Both an unknown email and a wrong password yield ErrInvalidCredentials so
// that callers cannot distinguish which part was wrong.
func (s *userService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		return models.User{}, err
	}

	found, err := s.userRepository.FindUserByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Info().Str("func", "*userService.Login").Msg("login with unknown email")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "*userService.Login").Msg("error finding user by email")
		return models.User{}, fmt.Errorf("error finding user by email: %w", err)
	}

	if !utils.CheckPassword(request.Password, found.Password) {
		log.Info().Int64("id", found.ID).Str("func", "*userService.Login").Msg("login with wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return found, nil
}

// GetAllUsers returns all user records.
func (s *userService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.FindAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("users listing failed: %w", err)
	}

	return users, nil
}

// GetUserByID returns a single user record by primary key.
func (s *userService) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	found, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return found, nil
}

// EditProfile applies a partial update to username and email.
//
// Absent fields keep their current values. Present fields are validated, then
// checked for uniqueness against every account except the caller's own, so an
// unchanged username does not collide with itself.
func (s *userService) EditProfile(ctx context.Context, id int64, request models.EditProfileRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		return models.User{}, err
	}

	current, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	username := request.Username
	if username == "" {
		username = current.Username
	}
	email := request.Email
	if email == "" {
		email = current.Email
	}

	exists, err := s.userRepository.ExistsUserByUsernameOrEmail(ctx, username, email, &id)
	if err != nil {
		return models.User{}, fmt.Errorf("duplicate check failed: %w", err)
	}
	if exists {
		return models.User{}, store.ErrUserAlreadyExists
	}

	updated, err := s.userRepository.UpdateUserProfile(ctx, id, username, email)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("profile update ended with error")
		return models.User{}, fmt.Errorf("profile update ended with error: %w", err)
	}

	return updated, nil
}

// ChangePassword replaces the caller's password after verifying the current
// one.
//
// Returns ErrWrongOldPassword when the supplied current password does not
// match the stored digest. This failure is distinct from authentication
// failures: the caller holds a valid token but proved the wrong secret.
func (s *userService) ChangePassword(ctx context.Context, id int64, request models.ChangePasswordRequest) error {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		return err
	}

	current, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return fmt.Errorf("user search by id failed: %w", err)
	}

	if !utils.CheckPassword(request.OldPassword, current.Password) {
		log.Info().Int64("id", id).Str("func", "*userService.ChangePassword").Msg("old password mismatch")
		return ErrWrongOldPassword
	}

	passwordHash, err := utils.HashPassword(request.NewPassword, s.bcryptCost)
	if err != nil {
		log.Err(err).Str("func", "*userService.ChangePassword").Msg("error hashing password")
		return fmt.Errorf("error hashing password: %w", err)
	}

	if err := s.userRepository.UpdateUserPassword(ctx, id, passwordHash); err != nil {
		return fmt.Errorf("password update ended with error: %w", err)
	}

	return nil
}

// ForgotPassword resets the account to a fixed temporary password and mails
// it to the account's address.
//
// The new password is persisted before the mail is sent; a delivery failure
// is logged but does not fail the request, since the reset already happened.
// An unknown email yields store.ErrUserNotFound.
func (s *userService) ForgotPassword(ctx context.Context, request models.ForgotPasswordRequest) error {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		return err
	}

	found, err := s.userRepository.FindUserByEmail(ctx, request.Email)
	if err != nil {
		return fmt.Errorf("user search by email failed: %w", err)
	}

	passwordHash, err := utils.HashPassword(temporaryPassword, s.bcryptCost)
	if err != nil {
		log.Err(err).Str("func", "*userService.ForgotPassword").Msg("error hashing password")
		return fmt.Errorf("error hashing password: %w", err)
	}

	if err := s.userRepository.UpdateUserPassword(ctx, found.ID, passwordHash); err != nil {
		return fmt.Errorf("password update ended with error: %w", err)
	}

	subject := "Forgot Password"
	body := fmt.Sprintf("Your temporary password is: %s\nPlease change your password after logging in.", temporaryPassword)
	if err := s.mailer.Send(ctx, found.Email, subject, body); err != nil {
		log.Err(err).Int64("id", found.ID).Msg("temporary password mail delivery failed")
	}

	return nil
}

// DeleteUser removes the account and returns the deleted record.
func (s *userService) DeleteUser(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	found, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	if err := s.userRepository.DeleteUser(ctx, id); err != nil {
		log.Err(err).Int64("id", id).Msg("user deletion ended with error")
		return models.User{}, fmt.Errorf("user deletion ended with error: %w", err)
	}

	return found, nil
}
