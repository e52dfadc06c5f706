package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessRegister          = "user registered successfully"
	MessageSuccessLogin             = "login successful"
	MessageSuccessGetMe             = "user retrieved successfully"
	MessageSuccessUpdateUser        = "user updated successfully"
	MessageSuccessUpdatePreferences = "preferences updated successfully"

	MessageFailedRegister          = "failed to register user"
	MessageFailedLogin             = "failed to login"
	MessageFailedGetMe             = "failed to retrieve user"
	MessageFailedUpdateUser        = "failed to update user"
	MessageFailedUpdatePreferences = "failed to update preferences"

	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrCredentialsInvalid = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrPasswordMismatch   = errors.New("passwords do not match")
)

type (
	RegisterRequest struct {
		Name            string `json:"name" validate:"required"`
		Email           string `json:"email" validate:"required,email"`
		Password        string `json:"password" validate:"required,min=6"`
		ConfirmPassword string `json:"confirm_password" validate:"required"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	AuthResponse struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}

	UserResponse struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Email       string `json:"email"`
		CoinBalance int    `json:"coin_balance"`
		AvatarURL   string `json:"avatar_url,omitempty"`

		Preferences PreferencesResponse `json:"preferences"`

		CreatedAt time.Time `json:"created_at"`
	}

	UpdateUserRequest struct {
		Name   string                `form:"name" json:"name"`
		Avatar *multipart.FileHeader `form:"avatar" json:"-"`
	}

	UpdatePreferencesRequest struct {
		DarkTheme            *bool `json:"dark_theme"`
		NotificationsEnabled *bool `json:"notifications_enabled"`
		LocationSharing      *bool `json:"location_sharing"`
	}

	PreferencesResponse struct {
		DarkTheme            bool `json:"dark_theme"`
		NotificationsEnabled bool `json:"notifications_enabled"`
		LocationSharing      bool `json:"location_sharing"`
	}
)
