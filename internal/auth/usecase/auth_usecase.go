package usecase

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"taskmanager-api/internal/auth/domain"
	"taskmanager-api/internal/auth/repository"
	"taskmanager-api/pkg/config"
)

// authUsecase implements AuthUsecase
type authUsecase struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func (u *authUsecase) Login(username, password string) (string, *domain.User, error) {
	user, err := u.userRepo.FindByUsername(username)
	if err != nil {
		return "", nil, err
	}
	if user == nil || !repository.CheckPasswordHash(password, user.Password) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := u.generateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (u *authUsecase) generateToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   user.ID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(u.cfg.JWTAccessExpiry)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.cfg.JWTSecret))
}

func (u *authUsecase) ValidateToken(tokenString string) (*domain.User, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(u.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	user, err := u.userRepo.FindByID(claims.Subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}
