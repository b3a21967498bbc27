package usecase

import (
	"time"

	"taskmanager-api/internal/task/domain"
	"taskmanager-api/internal/task/dto"
	"taskmanager-api/internal/task/repository"
)

// taskUsecase implements TaskUsecase
type taskUsecase struct {
	taskRepo repository.TaskRepository
}

// NewTaskUsecase creates a new instance of taskUsecase
func NewTaskUsecase(taskRepo repository.TaskRepository) TaskUsecase {
	return &taskUsecase{
		taskRepo: taskRepo,
	}
}

func (u *taskUsecase) Create(userID string, req dto.CreateTaskRequest) (*domain.Task, error) {
	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return nil, err
	}

	task := &domain.Task{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
		Priority:    domain.PriorityMedium,
		Status:      domain.StatusPending,
	}
	if req.Priority != "" {
		task.Priority = domain.Priority(req.Priority)
	}
	if req.Status != "" {
		task.Status = domain.Status(req.Status)
	}

	if err := u.save(task, u.taskRepo.Create); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *taskUsecase) List(userID string, query dto.ListQuery) ([]*domain.Task, error) {
	// Anonymous callers get an empty result set, not an error.
	if userID == "" {
		return []*domain.Task{}, nil
	}

	filter := repository.ListFilter{SortBy: query.SortBy}

	if s := domain.Status(query.Status); domain.ValidStatus(s) {
		filter.Status = &s
	}
	if p := domain.Priority(query.Priority); domain.ValidPriority(p) {
		filter.Priority = &p
	}
	// A malformed due_date value skips the filter rather than erroring.
	if query.DueDate != "" {
		if day, ok := parseFilterDay(query.DueDate); ok {
			filter.DueDay = &day
		}
	}

	tasks, err := u.taskRepo.FindByUser(userID, filter)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}
	return tasks, nil
}

func (u *taskUsecase) Get(userID, taskID string) (*domain.Task, error) {
	task, err := u.taskRepo.FindByID(taskID)
	if err != nil {
		return nil, err
	}
	// A task owned by someone else looks exactly like a missing one.
	if task == nil || task.UserID != userID {
		return nil, domain.ErrTaskNotFound
	}
	return task, nil
}

func (u *taskUsecase) Update(userID, taskID string, req dto.UpdateTaskRequest) (*domain.Task, error) {
	task, err := u.Get(userID, taskID)
	if err != nil {
		return nil, err
	}

	if task.Status == domain.StatusCompleted {
		if err := checkCompletedEdit(req); err != nil {
			return nil, err
		}
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Priority != nil {
		task.Priority = domain.Priority(*req.Priority)
	}
	if req.Status != nil {
		task.Status = domain.Status(*req.Status)
	}
	if req.DueDate != nil {
		dueDate, err := parseDueDate(*req.DueDate)
		if err != nil {
			return nil, err
		}
		task.DueDate = dueDate
	}

	if err := u.save(task, u.taskRepo.Update); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *taskUsecase) Delete(userID, taskID string) error {
	task, err := u.Get(userID, taskID)
	if err != nil {
		return err
	}
	return u.taskRepo.Delete(task.ID)
}

func (u *taskUsecase) MarkStatus(userID, taskID, status string) (*domain.Task, error) {
	if !domain.ValidStatus(domain.Status(status)) {
		return nil, domain.NewValidationError("Status must be Pending or Completed")
	}

	task, err := u.Get(userID, taskID)
	if err != nil {
		return nil, err
	}

	// Only the status changes here, so the completed-task field guard does
	// not apply; the lifecycle rules in save still do.
	task.Status = domain.Status(status)
	if err := u.save(task, u.taskRepo.Update); err != nil {
		return nil, err
	}
	return task, nil
}

// save runs full validation and the completion-timestamp invariant before
// every persist. No partial writes: validation failures leave the store
// untouched.
func (u *taskUsecase) save(task *domain.Task, persist func(*domain.Task) error) error {
	now := time.Now()
	if err := task.Validate(now); err != nil {
		return err
	}
	task.SyncCompletion(now)
	return persist(task)
}

// checkCompletedEdit enforces the immutability of completed tasks: the
// payload must be empty, or set status (and nothing else) to Pending.
func checkCompletedEdit(req dto.UpdateTaskRequest) error {
	if req.Status != nil && *req.Status != string(domain.StatusPending) {
		return domain.NewValidationError("Cannot edit completed tasks. Change status to 'Pending' first to edit the task.")
	}
	provided := req.ProvidedFields()
	if len(provided) > 1 || (len(provided) == 1 && req.Status == nil) {
		return domain.NewValidationError("Cannot modify completed tasks. Only status can be changed to 'Pending'.")
	}
	return nil
}

func parseDueDate(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, domain.NewValidationError("Due date must be a valid RFC 3339 timestamp.")
	}
	return t, nil
}

// parseFilterDay accepts a calendar day or a full timestamp, truncating the
// latter to its day.
func parseFilterDay(value string) (time.Time, bool) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true
	}
	return time.Time{}, false
}
