package repository

import (
	"time"

	"taskmanager-api/internal/task/domain"
)

// Sort keys accepted by FindByUser. Anything else falls back to the
// default ordering (due date, newest first).
const (
	SortByDueDate  = "due_date"
	SortByPriority = "priority"
)

// ListFilter narrows and orders an owner-scoped task listing. Nil filter
// fields are not applied.
type ListFilter struct {
	Status   *domain.Status
	Priority *domain.Priority
	// DueDay matches tasks whose due date falls on this calendar day.
	DueDay *time.Time
	SortBy string
}

// TaskRepository defines the interface for task data access.
type TaskRepository interface {
	// Create creates a new task
	Create(task *domain.Task) error

	// FindByID finds a task by its ID
	FindByID(id string) (*domain.Task, error)

	// FindByUser returns the user's tasks, filtered and sorted
	FindByUser(userID string, filter ListFilter) ([]*domain.Task, error)

	// Update updates an existing task
	Update(task *domain.Task) error

	// Delete deletes a task by ID
	Delete(id string) error
}
