package delivery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskmanager-api/internal/task/domain"
	"taskmanager-api/internal/task/dto"
	"taskmanager-api/internal/task/usecase"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskUsecase usecase.TaskUsecase
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskUsecase usecase.TaskUsecase) *TaskHandler {
	return &TaskHandler{
		taskUsecase: taskUsecase,
	}
}

// GetTasks returns the caller's tasks; anonymous callers get an empty list
// GET /api/tasks?status=Pending&priority=High&due_date=2025-01-01&sort_by=priority
func (h *TaskHandler) GetTasks(c *gin.Context) {
	userID := c.GetString("userID")

	query := dto.ListQuery{
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		DueDate:  c.Query("due_date"),
		SortBy:   c.Query("sort_by"),
	}

	tasks, err := h.taskUsecase.List(userID, query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// GetTaskByID returns a specific task
// GET /api/tasks/:id
func (h *TaskHandler) GetTaskByID(c *gin.Context) {
	userID := c.GetString("userID")

	task, err := h.taskUsecase.Get(userID, c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// CreateTask creates a new task owned by the caller
// POST /api/tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID := c.GetString("userID")

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskUsecase.Create(userID, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// UpdateTask applies a partial update to an existing task
// PUT/PATCH /api/tasks/:id
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID := c.GetString("userID")

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskUsecase.Update(userID, c.Param("id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask deletes a task
// DELETE /api/tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID := c.GetString("userID")

	if err := h.taskUsecase.Delete(userID, c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

// MarkStatus flips a task's status; the only sanctioned way to complete a
// task or reopen a completed one
// POST /api/tasks/:id/mark_status
func (h *TaskHandler) MarkStatus(c *gin.Context) {
	userID := c.GetString("userID")

	var req dto.MarkStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be Pending or Completed"})
		return
	}

	task, err := h.taskUsecase.MarkStatus(userID, c.Param("id"), req.Status)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// TasksPage renders the server-side task list. Anonymous visitors see an
// empty table with a login hint.
// GET /tasks/
func (h *TaskHandler) TasksPage(c *gin.Context) {
	userID := c.GetString("userID")

	tasks, err := h.taskUsecase.List(userID, dto.ListQuery{})
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load tasks")
		return
	}

	c.HTML(http.StatusOK, "tasks.html", gin.H{
		"Authenticated": userID != "",
		"Tasks":         tasks,
	})
}

func (h *TaskHandler) writeError(c *gin.Context, err error) {
	switch {
	case domain.IsValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
