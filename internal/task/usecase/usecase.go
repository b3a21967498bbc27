package usecase

import (
	"taskmanager-api/internal/task/domain"
	"taskmanager-api/internal/task/dto"
)

// TaskUsecase defines task lifecycle and query operations.
type TaskUsecase interface {
	// Create validates and persists a new task for the user
	Create(userID string, req dto.CreateTaskRequest) (*domain.Task, error)

	// List returns the user's tasks per the query; an empty userID
	// (anonymous caller) yields an empty result set
	List(userID string, query dto.ListQuery) ([]*domain.Task, error)

	// Get returns one task; unowned tasks are indistinguishable from
	// missing ones
	Get(userID, taskID string) (*domain.Task, error)

	// Update applies a partial update, enforcing the completed-task guard
	Update(userID, taskID string, req dto.UpdateTaskRequest) (*domain.Task, error)

	// Delete removes a task
	Delete(userID, taskID string) error

	// MarkStatus flips the status, bypassing the completed-task field
	// guard; the lifecycle rules still run
	MarkStatus(userID, taskID, status string) (*domain.Task, error)
}
