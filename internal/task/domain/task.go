package domain

import "time"

// Status represents the current state of a task
type Status string

const (
	StatusNotStarted Status = "not-started"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// ParseStatus maps a raw string onto the closed enum. Anything outside the
// three values is rejected, never coerced.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return Status(s), true
	default:
		return "", false
	}
}

// Task is a record exclusively owned by one user. OwnerID is set once from
// the authenticated principal and never accepted from client input.
type Task struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	OwnerID     string     `json:"owner_id" gorm:"index;not null"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description,omitempty"`
	Status      Status     `json:"status" gorm:"not null;default:not-started"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
