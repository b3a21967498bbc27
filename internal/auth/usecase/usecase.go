package usecase

import "taskmanager-api/internal/auth/domain"

// AuthUsecase defines authentication operations.
type AuthUsecase interface {
	// Login verifies credentials and returns a signed access token.
	Login(username, password string) (string, *domain.User, error)

	// ValidateToken parses and verifies a token, returning its user.
	ValidateToken(token string) (*domain.User, error)
}
