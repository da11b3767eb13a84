package models

import (
	"fmt"
	"time"
)

// Task represents a single to-do item.
type Task struct {
	ID          int        `json:"id"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"` // nil until the first completion
}

// NewTask creates a pending task stamped with the given creation time.
func NewTask(id int, description string, createdAt time.Time) *Task {
	return &Task{
		ID:          id,
		Description: description,
		CreatedAt:   createdAt,
	}
}

// Complete marks the task as completed. The completion time is recorded only
// on the first transition; later calls leave it untouched.
func (t *Task) Complete(now time.Time) {
	if t.Completed {
		return
	}
	t.Completed = true
	t.CompletedAt = &now
}

// Clone returns a copy that shares no memory with t.
func (t *Task) Clone() Task {
	c := *t
	if t.CompletedAt != nil {
		at := *t.CompletedAt
		c.CompletedAt = &at
	}
	return c
}

// StatusMark returns "X" for completed tasks and a blank otherwise.
func (t Task) StatusMark() string {
	if t.Completed {
		return "X"
	}
	return " "
}

// String formats the task as "[X] 1. description".
func (t Task) String() string {
	return fmt.Sprintf("[%s] %d. %s", t.StatusMark(), t.ID, t.Description)
}
