package validators

import (
	"context"

	"github.com/kmolchanov/feedback-service/models"
)

// Field name constants of the account payloads.
const (
	FieldUsername    = "username"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldOldPassword = "oldPassword"
	FieldNewPassword = "newPassword"
)

// registerSchema covers both user and admin registration: the two identity
// namespaces share the same payload shape.
var registerSchema = Schema{
	{
		Field:           FieldUsername,
		Required:        true,
		RequiredMessage: "Username is required",
		Checks: []Check{
			Alphanumeric("Username must only contain alphanumeric characters"),
			MinLen(3, "Username must be at least 3 characters long"),
			MaxLen(20, "Username cannot be more than 20 characters long"),
		},
	},
	{
		Field:           FieldEmail,
		Required:        true,
		RequiredMessage: "Email is required",
		Checks:          []Check{Email("Email must be a valid email")},
	},
	{
		Field:           FieldPassword,
		Required:        true,
		RequiredMessage: "Password is required",
		Checks:          []Check{MinLen(8, "Password length must be at least 8 characters long")},
	},
}

var loginSchema = Schema{
	{
		Field:           FieldEmail,
		Required:        true,
		RequiredMessage: "Email is required",
		Checks:          []Check{Email("Email must be a valid email")},
	},
	{
		Field:           FieldPassword,
		Required:        true,
		RequiredMessage: "Password is required",
	},
}

// editProfileSchema differs from registration: fields are optional, but when
// present must satisfy the same per-field constraints.
var editProfileSchema = Schema{
	{
		Field: FieldUsername,
		Checks: []Check{
			Alphanumeric("Username must only contain alphanumeric characters"),
			MinLen(3, "Username must be at least 3 characters long"),
			MaxLen(20, "Username cannot be more than 20 characters long"),
		},
	},
	{
		Field:  FieldEmail,
		Checks: []Check{Email("Email must be a valid email")},
	},
}

var changePasswordSchema = Schema{
	{
		Field:           FieldOldPassword,
		Required:        true,
		RequiredMessage: "Old password is required",
	},
	{
		Field:           FieldNewPassword,
		Required:        true,
		RequiredMessage: "New password is required",
		Checks:          []Check{MinLen(8, "New password must be at least 8 characters long")},
	},
}

var forgotPasswordSchema = Schema{
	{
		Field:           FieldEmail,
		Required:        true,
		RequiredMessage: "Email is required",
		Checks:          []Check{Email("Email must be a valid email")},
	},
}

// UserValidator implements the Validator interface for all account-related
// payloads: RegisterRequest, LoginRequest, EditProfileRequest,
// ChangePasswordRequest and ForgotPasswordRequest.
//
// Both value and pointer forms of every payload type are accepted.
type UserValidator struct {
}

// NewUserValidator constructs a new UserValidator
// and returns it as the Validator interface.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate dispatches validation to the schema declared for the dynamic type
// of obj. Returns ErrUnsupportedType (wrapped) if obj does not match any
// known payload.
func (v *UserValidator) Validate(ctx context.Context, obj any) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value)
	case *models.RegisterRequest:
		return v.validateRegister(*value)

	case models.LoginRequest:
		return v.validateLogin(value)
	case *models.LoginRequest:
		return v.validateLogin(*value)

	case models.EditProfileRequest:
		return v.validateEditProfile(value)
	case *models.EditProfileRequest:
		return v.validateEditProfile(*value)

	case models.ChangePasswordRequest:
		return v.validateChangePassword(value)
	case *models.ChangePasswordRequest:
		return v.validateChangePassword(*value)

	case models.ForgotPasswordRequest:
		return v.validateForgotPassword(value)
	case *models.ForgotPasswordRequest:
		return v.validateForgotPassword(*value)

	default:
		return unknownTypeError(obj)
	}
}

func (v *UserValidator) validateRegister(req models.RegisterRequest) error {
	return registerSchema.Validate(map[string]string{
		FieldUsername: req.Username,
		FieldEmail:    req.Email,
		FieldPassword: req.Password,
	})
}

func (v *UserValidator) validateLogin(req models.LoginRequest) error {
	return loginSchema.Validate(map[string]string{
		FieldEmail:    req.Email,
		FieldPassword: req.Password,
	})
}

func (v *UserValidator) validateEditProfile(req models.EditProfileRequest) error {
	return editProfileSchema.Validate(map[string]string{
		FieldUsername: req.Username,
		FieldEmail:    req.Email,
	})
}

func (v *UserValidator) validateChangePassword(req models.ChangePasswordRequest) error {
	return changePasswordSchema.Validate(map[string]string{
		FieldOldPassword: req.OldPassword,
		FieldNewPassword: req.NewPassword,
	})
}

func (v *UserValidator) validateForgotPassword(req models.ForgotPasswordRequest) error {
	return forgotPasswordSchema.Validate(map[string]string{
		FieldEmail: req.Email,
	})
}
