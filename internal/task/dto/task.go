package dto

// CreateTaskRequest represents the request body for creating a task.
// DueDate is an RFC 3339 timestamp.
type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	DueDate     string `json:"due_date" binding:"required"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
}

// UpdateTaskRequest carries a partial field set; nil fields are untouched.
// The distinction between absent and present matters for the completed-task
// edit guard, which counts only provided fields.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
}

// ProvidedFields lists the names of fields present in the payload.
func (r UpdateTaskRequest) ProvidedFields() []string {
	var fields []string
	if r.Title != nil {
		fields = append(fields, "title")
	}
	if r.Description != nil {
		fields = append(fields, "description")
	}
	if r.DueDate != nil {
		fields = append(fields, "due_date")
	}
	if r.Priority != nil {
		fields = append(fields, "priority")
	}
	if r.Status != nil {
		fields = append(fields, "status")
	}
	return fields
}

type MarkStatusRequest struct {
	Status string `json:"status"`
}

// ListQuery holds the raw query parameters of the list endpoint. Invalid
// values are ignored rather than rejected.
type ListQuery struct {
	Status   string
	Priority string
	DueDate  string
	SortBy   string
}
