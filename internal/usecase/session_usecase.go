package usecase

import "context"

// SessionUsecase defines the interface for back-office authentication.
type SessionUsecase interface {
	// Login verifies the credentials and issues a signed access token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}

// --- Input DTOs ---

// LoginInput defines the credentials submitted at login.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// LoginOutput carries the issued token and its lifetime in seconds.
type LoginOutput struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}
