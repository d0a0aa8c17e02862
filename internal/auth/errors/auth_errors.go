package autherrors

import (
	"net/http"

	"github.com/KATBlackCoder/rapportflow/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid username or password",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		"INVALID_TOKEN",
		"Invalid token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		"TOKEN_EXPIRED",
		"Token has expired",
		http.StatusUnauthorized,
	)
	ErrInvalidRefreshToken = apperror.New(
		"INVALID_REFRESH_TOKEN",
		"Invalid refresh token",
		http.StatusUnauthorized,
	)
	ErrMissingRefreshToken = apperror.New(
		"NO_REFRESH_TOKEN",
		"Missing refresh token",
		http.StatusUnauthorized,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to generate token",
		http.StatusInternalServerError,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeUnauthorized,
		"User not found",
		http.StatusUnauthorized,
	)
	ErrForbidden = apperror.ErrForbidden
	ErrPasswordChangeRequired = apperror.New(
		apperror.CodePasswordChangeRequired,
		"You must confirm or change your default password first",
		http.StatusForbidden,
	)
	ErrPasswordRequired = apperror.Validation(
		"password",
		"Password is required when changing it",
	)
	ErrPasswordConfirmation = apperror.Validation(
		"password_confirmation",
		"Password confirmation does not match",
	)
	ErrPasswordTooShort = apperror.Validation(
		"password",
		"Password must be at least 8 characters",
	)
	ErrInvalidFirstLoginAction = apperror.Validation(
		"action",
		"Action must be keep or change",
	)
)
