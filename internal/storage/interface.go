package storage

import (
	"errors"

	"github.com/tiwariParth/go-tasklist/internal/models"
)

// ErrTaskNotFound is returned by callers that turn a missing id into an error.
// Storage implementations themselves report absence through their results.
var ErrTaskNotFound = errors.New("task not found")

// Storage defines the task collection operations.
//
// Every method is total: a missing id yields false or an absent task, never
// an error. Returned tasks are copies owned by the caller.
type Storage interface {
	Add(description string) models.Task
	List(includeCompleted bool) []models.Task
	Get(id int) (models.Task, bool)
	Update(id int, description string) bool
	Delete(id int) bool
	Complete(id int) bool
}
