package usecase

import "taskmanager-api/internal/user/dto"

// UserUsecase defines account management operations.
type UserUsecase interface {
	// Register creates a new account with a hashed password
	Register(req dto.CreateUserRequest) (*dto.UserResponse, error)

	// List returns every account
	List() ([]*dto.UserResponse, error)

	// Get returns one account by ID
	Get(id string) (*dto.UserResponse, error)

	// Update applies a partial update, re-hashing the password if present
	Update(id string, req dto.UpdateUserRequest) (*dto.UserResponse, error)

	// Delete removes an account and all its tasks
	Delete(id string) error
}
