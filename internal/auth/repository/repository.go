package repository

import "taskmanager-api/internal/auth/domain"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	// Create creates a new user
	Create(user *domain.User) error

	// FindByID finds a user by its ID
	FindByID(id string) (*domain.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*domain.User, error)

	// FindAll returns every user account
	FindAll() ([]*domain.User, error)

	// Update updates an existing user
	Update(user *domain.User) error

	// Delete removes a user and all tasks it owns
	Delete(id string) error

	// CountTasks returns the number of tasks owned by the user
	CountTasks(userID string) (int64, error)
}
