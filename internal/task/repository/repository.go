package repository

import "taskdeck-backend/internal/task/domain"

// Filter restricts an owner-scoped listing. Zero values mean no restriction
// from that axis; both set means both must hold.
type Filter struct {
	Status domain.Status
	Search string
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *domain.Task) error

	// FindByID finds a task by its ID; (nil, nil) when absent
	FindByID(id string) (*domain.Task, error)

	// FindByOwner finds all tasks owned by ownerID matching the filter,
	// most recently created first
	FindByOwner(ownerID string, filter Filter) ([]*domain.Task, error)

	// Update updates an existing task
	Update(task *domain.Task) error

	// Delete deletes a task by ID
	Delete(id string) error
}
