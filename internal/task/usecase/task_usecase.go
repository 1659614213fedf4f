package usecase

import (
	"strings"
	"time"

	"taskdeck-backend/internal/task/domain"
	"taskdeck-backend/internal/task/repository"
	"taskdeck-backend/pkg/apperror"

	"github.com/google/uuid"
)

// taskUsecase implements TaskUsecase interface
type taskUsecase struct {
	taskRepo repository.TaskRepository
}

// NewTaskUsecase creates a new instance of taskUsecase
func NewTaskUsecase(taskRepo repository.TaskRepository) TaskUsecase {
	return &taskUsecase{
		taskRepo: taskRepo,
	}
}

func (u *taskUsecase) CreateTask(ownerID string, req CreateTaskRequest) (*domain.Task, error) {
	var fields []apperror.FieldError

	title := strings.TrimSpace(req.Title)
	if title == "" {
		fields = append(fields, apperror.FieldError{Field: "title", Message: "is required"})
	} else if len(title) > 200 {
		fields = append(fields, apperror.FieldError{Field: "title", Message: "must be at most 200 characters"})
	}
	if len(req.Description) > 1000 {
		fields = append(fields, apperror.FieldError{Field: "description", Message: "must be at most 1000 characters"})
	}

	status := domain.StatusNotStarted
	if req.Status != "" {
		parsed, ok := domain.ParseStatus(req.Status)
		if !ok {
			fields = append(fields, apperror.FieldError{Field: "status", Message: "invalid status"})
		} else {
			status = parsed
		}
	}

	var dueDate *time.Time
	if req.DueDate != nil && *req.DueDate != "" {
		parsed, err := parseDueDate(*req.DueDate)
		if err != nil {
			fields = append(fields, apperror.FieldError{Field: "due_date", Message: "must be a valid date"})
		} else {
			dueDate = parsed
		}
	}

	if len(fields) > 0 {
		return nil, apperror.Validation("validation failed", fields...)
	}

	task := &domain.Task{
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		Title:       title,
		Description: req.Description,
		Status:      status,
		DueDate:     dueDate,
	}
	if err := u.taskRepo.Create(task); err != nil {
		return nil, apperror.Internal(err)
	}

	return task, nil
}

func (u *taskUsecase) ListTasks(ownerID string, query ListTasksQuery) ([]*domain.Task, error) {
	filter := repository.Filter{Search: strings.TrimSpace(query.Search)}

	// An absent status filter means no restriction; an invalid one is a hard
	// rejection, never coerced to "no filter".
	if query.Status != "" {
		status, ok := domain.ParseStatus(query.Status)
		if !ok {
			return nil, apperror.Validation("validation failed",
				apperror.FieldError{Field: "status", Message: "invalid status"})
		}
		filter.Status = status
	}

	tasks, err := u.taskRepo.FindByOwner(ownerID, filter)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}
	return tasks, nil
}

// GetTaskByID hides foreign tasks behind "not found": a read must not confirm
// that another user's record exists.
func (u *taskUsecase) GetTaskByID(ownerID, taskID string) (*domain.Task, error) {
	task, err := u.taskRepo.FindByID(taskID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if task == nil || task.OwnerID != ownerID {
		return nil, apperror.NotFound("task not found")
	}
	return task, nil
}

func (u *taskUsecase) UpdateTask(ownerID, taskID string, req UpdateTaskRequest) (*domain.Task, error) {
	task, err := u.findOwnedForWrite(ownerID, taskID)
	if err != nil {
		return nil, err
	}

	var fields []apperror.FieldError

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			fields = append(fields, apperror.FieldError{Field: "title", Message: "is required"})
		} else if len(title) > 200 {
			fields = append(fields, apperror.FieldError{Field: "title", Message: "must be at most 200 characters"})
		} else {
			task.Title = title
		}
	}
	if req.Description != nil {
		if len(*req.Description) > 1000 {
			fields = append(fields, apperror.FieldError{Field: "description", Message: "must be at most 1000 characters"})
		} else {
			task.Description = *req.Description
		}
	}
	if req.Status != nil {
		status, ok := domain.ParseStatus(*req.Status)
		if !ok {
			fields = append(fields, apperror.FieldError{Field: "status", Message: "invalid status"})
		} else {
			task.Status = status
		}
	}
	if req.DueDate != nil {
		if *req.DueDate == "" {
			task.DueDate = nil
		} else if parsed, err := parseDueDate(*req.DueDate); err != nil {
			fields = append(fields, apperror.FieldError{Field: "due_date", Message: "must be a valid date"})
		} else {
			task.DueDate = parsed
		}
	}

	if len(fields) > 0 {
		return nil, apperror.Validation("validation failed", fields...)
	}

	if err := u.taskRepo.Update(task); err != nil {
		return nil, apperror.Internal(err)
	}
	return task, nil
}

func (u *taskUsecase) DeleteTask(ownerID, taskID string) error {
	task, err := u.findOwnedForWrite(ownerID, taskID)
	if err != nil {
		return err
	}
	if err := u.taskRepo.Delete(task.ID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// findOwnedForWrite implements the write-side policy: a missing task is "not
// found", an existing task owned by someone else is "forbidden". The caller
// already holds the identifier, so denying the write reveals nothing new.
func (u *taskUsecase) findOwnedForWrite(ownerID, taskID string) (*domain.Task, error) {
	task, err := u.taskRepo.FindByID(taskID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if task == nil {
		return nil, apperror.NotFound("task not found")
	}
	if task.OwnerID != ownerID {
		return nil, apperror.Authorization("you do not own this task")
	}
	return task, nil
}

func parseDueDate(value string) (*time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t, err = time.Parse("2006-01-02", value)
		if err != nil {
			return nil, err
		}
	}
	return &t, nil
}
