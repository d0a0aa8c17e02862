package auth

import "github.com/KATBlackCoder/rapportflow/internal/user"

type LoginRequest struct {
	Username string `json:"username" binding:"required,max=255"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// FirstLoginRequest either keeps the generated password or replaces it.
type FirstLoginRequest struct {
	Action               string `json:"action" binding:"required,oneof=keep change"`
	Password             string `json:"password" binding:"omitempty,max=255"`
	PasswordConfirmation string `json:"password_confirmation" binding:"omitempty,max=255"`
}

type AuthResponse struct {
	User         user.UserResponse `json:"user"`
	AccessToken  string            `json:"access_token"`
	RefreshToken string            `json:"refresh_token"`
}
