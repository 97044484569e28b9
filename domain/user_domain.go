package domain

import (
	"errors"
	"mime/multipart"
	"time"

	"github.com/shopspring/decimal"
)

var (
	MessageSuccessRegister         = "user registered successfully"
	MessageSuccessLogin            = "login successful"
	MessageSuccessGetUser          = "user retrieved successfully"
	MessageSuccessUpdateUser       = "user updated successfully"
	MessageSuccessGetUsers         = "users retrieved successfully"
	MessageSuccessVerifyEmail      = "email verified successfully"
	MessageSuccessSendVerifyEmail  = "verification email sent"
	MessageSuccessForgotPassword   = "password reset email sent"
	MessageSuccessResetPassword    = "password reset successfully"
	MessageSuccessDeactivateUser   = "user deactivated successfully"
	MessageSuccessReactivateUser   = "user reactivated successfully"
	MessageSuccessChangeUserRole   = "user role updated successfully"

	MessageFailedRegister        = "failed to register user"
	MessageFailedLogin           = "failed to login"
	MessageFailedGetUser         = "failed to retrieve user"
	MessageFailedUpdateUser      = "failed to update user"
	MessageFailedGetUsers        = "failed to retrieve users"
	MessageFailedVerifyEmail     = "failed to verify email"
	MessageFailedSendVerifyEmail = "failed to send verification email"
	MessageFailedForgotPassword  = "failed to process forgot password"
	MessageFailedResetPassword   = "failed to reset password"
	MessageFailedManageUser      = "failed to manage user"

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserDeactivated    = errors.New("user account is deactivated")
	ErrInvalidRole        = errors.New("invalid role")
)

type (
	RegisterRequest struct {
		Name     string `json:"name" validate:"required,min=2,max=100"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
		Phone    string `json:"phone" validate:"omitempty,min=7,max=20"`
		Address  string `json:"address" validate:"omitempty,max=255"`
		Role     string `json:"role" validate:"omitempty,oneof=user collector"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}

	UpdateProfileRequest struct {
		Name         string                `json:"name" form:"name" validate:"omitempty,min=2,max=100"`
		Phone        string                `json:"phone" form:"phone" validate:"omitempty,min=7,max=20"`
		Address      string                `json:"address" form:"address" validate:"omitempty,max=255"`
		ProfileImage *multipart.FileHeader `json:"-" form:"profile_image"`
	}

	UserResponse struct {
		ID                 string          `json:"id"`
		Name               string          `json:"name"`
		Email              string          `json:"email"`
		Phone              string          `json:"phone,omitempty"`
		Address            string          `json:"address,omitempty"`
		Role               string          `json:"role"`
		ProfileImageURL    string          `json:"profile_image_url,omitempty"`
		Rating             decimal.Decimal `json:"rating"`
		TotalCollections   int             `json:"total_collections"`
		TotalEarnings      decimal.Decimal `json:"total_earnings"`
		TotalRecycledItems int             `json:"total_recycled_items"`
		TotalRecycledValue decimal.Decimal `json:"total_recycled_value"`
		IsActive           bool            `json:"is_active"`
		IsVerified         bool            `json:"is_verified"`
		CreatedAt          time.Time       `json:"created_at"`
	}

	SendVerificationEmailRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ForgotPasswordRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ResetPasswordRequest struct {
		Token       string `json:"token" validate:"required"`
		NewPassword string `json:"new_password" validate:"required,min=8"`
	}

	UpdateUserRoleRequest struct {
		Role string `json:"role" validate:"required,oneof=user collector admin"`
	}
)
