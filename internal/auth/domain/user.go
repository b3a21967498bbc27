package domain

import (
	"errors"
	"time"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type User struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	Username   string    `json:"username" gorm:"uniqueIndex;not null"`
	Email      string    `json:"email"`
	Password   string    `json:"-" gorm:"not null"` // bcrypt hash, never serialized
	DateJoined time.Time `json:"date_joined"`
	UpdatedAt  time.Time `json:"-"`
}
