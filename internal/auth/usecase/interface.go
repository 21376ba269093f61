package usecase

import (
	"errors"

	"contactbook-backend/internal/auth/domain"
	"contactbook-backend/internal/auth/dto"
)

var (
	// ErrEmailTaken is returned by Register when the email is already in use.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned by Login for an unknown email or a
	// wrong password, without distinguishing the two.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	// ErrInvalidToken covers every token failure (expired, forged, malformed).
	// Wrapped errors carry the concrete reason for logging only.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// AuthUsecase defines the authentication business logic
type AuthUsecase interface {
	// Register creates a new user with a hashed password
	Register(req *dto.RegisterRequest) (*domain.User, error)

	// Login verifies credentials and issues an access/refresh token pair
	Login(req *dto.LoginRequest) (*dto.TokenResponse, error)

	// Refresh validates a refresh token and mints a fresh access token
	Refresh(refreshToken string) (*dto.RefreshResponse, error)

	// ValidateToken resolves a bearer token to its user
	ValidateToken(tokenString string) (*domain.User, error)
}
