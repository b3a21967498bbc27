package domain

import (
	"errors"
	"time"
)

// Priority represents task priority level
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Status represents the current state of a task
type Status string

const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
)

// DueDateGrace is how far in the past a due date may lie before a
// non-completed task fails validation.
const DueDateGrace = time.Minute

var ErrTaskNotFound = errors.New("task not found")

// ValidationError marks a write rejected before persistence.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(msg string) error { return &ValidationError{Message: msg} }

// IsValidationError reports whether err is a rejected-write error.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func ValidPriority(p Priority) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

func ValidStatus(s Status) bool {
	return s == StatusPending || s == StatusCompleted
}

// Task is a to-do item owned by a single user.
type Task struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	UserID      string     `json:"user_id" gorm:"index;not null"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description"`
	DueDate     time.Time  `json:"due_date" gorm:"not null"`
	Priority    Priority   `json:"priority" gorm:"default:Medium"`
	Status      Status     `json:"status" gorm:"default:Pending"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Validate checks the full field set before any persist.
func (t *Task) Validate(now time.Time) error {
	if t.Title == "" {
		return NewValidationError("Title is required.")
	}
	if len(t.Title) > 200 {
		return NewValidationError("Title must be at most 200 characters.")
	}
	if t.DueDate.IsZero() {
		return NewValidationError("Due date is required.")
	}
	if !ValidPriority(t.Priority) {
		return NewValidationError("Priority must be Low, Medium, or High.")
	}
	if !ValidStatus(t.Status) {
		return NewValidationError("Status must be Pending or Completed.")
	}
	// Completed tasks are exempt from the due-date constraint.
	if t.Status != StatusCompleted && t.DueDate.Before(now.Add(-DueDateGrace)) {
		return NewValidationError("Due date must be in the future.")
	}
	return nil
}

// SyncCompletion maintains the completed_at invariant on every write:
// entering Completed stamps the timestamp (keeping an existing one),
// any other status clears it.
func (t *Task) SyncCompletion(now time.Time) {
	if t.Status == StatusCompleted {
		if t.CompletedAt == nil {
			t.CompletedAt = &now
		}
		return
	}
	t.CompletedAt = nil
}
