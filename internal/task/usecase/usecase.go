package usecase

import "taskdeck-backend/internal/task/domain"

// TaskUsecase defines the interface for task business logic. Every operation
// is scoped to the authenticated principal passed as ownerID.
type TaskUsecase interface {
	// CreateTask creates a new task owned by ownerID
	CreateTask(ownerID string, req CreateTaskRequest) (*domain.Task, error)

	// ListTasks returns the principal's tasks, optionally filtered
	ListTasks(ownerID string, query ListTasksQuery) ([]*domain.Task, error)

	// GetTaskByID retrieves one task (with ownership check)
	GetTaskByID(ownerID, taskID string) (*domain.Task, error)

	// UpdateTask applies a partial update to an existing task
	UpdateTask(ownerID, taskID string, req UpdateTaskRequest) (*domain.Task, error)

	// DeleteTask removes a task permanently
	DeleteTask(ownerID, taskID string) error
}

// CreateTaskRequest represents the request body for creating a task
type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required,max=200"`
	Description string  `json:"description" binding:"max=1000"`
	Status      string  `json:"status"`
	DueDate     *string `json:"due_date"`
}

// UpdateTaskRequest represents the fields that can be updated; only non-nil
// fields are applied
type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
}

// ListTasksQuery carries the optional search keyword and status filter.
// Empty strings mean no restriction from that axis.
type ListTasksQuery struct {
	Search string
	Status string
}
