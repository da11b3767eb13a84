package app

import (
	"fmt"
	"log/slog"

	"github.com/tiwariParth/go-tasklist/internal/metrics"
	"github.com/tiwariParth/go-tasklist/internal/models"
	"github.com/tiwariParth/go-tasklist/internal/storage"
)

// NotFoundError reports an operation addressed to a missing task id.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task %d not found", e.ID)
}

// Unwrap lets errors.Is match storage.ErrTaskNotFound.
func (e *NotFoundError) Unwrap() error {
	return storage.ErrTaskNotFound
}

// Summary counts the tasks of a listing.
type Summary struct {
	Total     int
	Completed int
	Pending   int
}

// TodoApp is the application service used by the command dispatcher.
type TodoApp struct {
	store   storage.Storage
	metrics *metrics.Recorder
	log     *slog.Logger
}

func NewTodoApp(store storage.Storage, rec *metrics.Recorder, log *slog.Logger) *TodoApp {
	return &TodoApp{store: store, metrics: rec, log: log}
}

func (app *TodoApp) AddTask(description string) models.Task {
	task := app.store.Add(description)
	app.metrics.Operation("add", true)
	app.metrics.Description(description)
	app.metrics.TaskAdded()
	app.log.Debug("task added", "id", task.ID)
	return task
}

func (app *TodoApp) ListTasks(includeCompleted bool) []models.Task {
	tasks := app.store.List(includeCompleted)
	app.metrics.Operation("list", true)
	app.log.Debug("tasks listed", "all", includeCompleted, "count", len(tasks))
	return tasks
}

func (app *TodoApp) GetTask(id int) (models.Task, error) {
	task, ok := app.store.Get(id)
	app.record("get", id, ok)
	if !ok {
		return models.Task{}, &NotFoundError{ID: id}
	}
	return task, nil
}

func (app *TodoApp) UpdateTask(id int, description string) error {
	ok := app.store.Update(id, description)
	app.record("update", id, ok)
	if !ok {
		return &NotFoundError{ID: id}
	}
	app.metrics.Description(description)
	return nil
}

func (app *TodoApp) DeleteTask(id int) error {
	ok := app.store.Delete(id)
	app.record("delete", id, ok)
	if !ok {
		return &NotFoundError{ID: id}
	}
	app.metrics.TaskDeleted()
	return nil
}

func (app *TodoApp) CompleteTask(id int) error {
	ok := app.store.Complete(id)
	app.record("complete", id, ok)
	if !ok {
		return &NotFoundError{ID: id}
	}
	return nil
}

// Summarize counts completed and pending tasks.
func Summarize(tasks []models.Task) Summary {
	s := Summary{Total: len(tasks)}
	for _, task := range tasks {
		if task.Completed {
			s.Completed++
		}
	}
	s.Pending = s.Total - s.Completed
	return s
}

func (app *TodoApp) record(op string, id int, found bool) {
	app.metrics.Operation(op, found)
	if !found {
		app.log.Info("task not found", "op", op, "id", id)
		return
	}
	app.log.Debug("task "+op, "id", id)
}
