package usererrors

import (
	"net/http"

	"github.com/KATBlackCoder/rapportflow/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)
	ErrUsernameTaken = apperror.Conflict("username", "Username is already taken")
	ErrInvalidCurrentPassword = apperror.Validation(
		"current_password",
		"The current password is incorrect",
	)
)
