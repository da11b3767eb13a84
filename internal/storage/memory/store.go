package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/tiwariParth/go-tasklist/internal/models"
	"github.com/tiwariParth/go-tasklist/internal/storage"
)

var _ storage.Storage = (*MemoryStore)(nil)

// MemoryStore implements storage.Storage in memory. It is the sole owner of
// its tasks; callers only ever see copies.
type MemoryStore struct {
	tasks  map[int]*models.Task
	nextID int
	now    func() time.Time
	mu     sync.Mutex
}

// Option configures a MemoryStore.
type Option func(*MemoryStore)

// WithClock replaces time.Now as the source of task timestamps.
func WithClock(now func() time.Time) Option {
	return func(m *MemoryStore) {
		m.now = now
	}
}

// NewMemoryStore creates an empty store whose first id is 1.
func NewMemoryStore(opts ...Option) *MemoryStore {
	m := &MemoryStore{
		tasks:  make(map[int]*models.Task),
		nextID: 1,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Add stores a new pending task and returns it.
func (m *MemoryStore) Add(description string) models.Task {
	m.mu.Lock()
	defer m.mu.Unlock()

	task := models.NewTask(m.nextID, description, m.now())
	m.tasks[task.ID] = task
	m.nextID++
	return task.Clone()
}

// List returns tasks sorted by id. Completed tasks are left out unless
// includeCompleted is set.
func (m *MemoryStore) List(includeCompleted bool) []models.Task {
	m.mu.Lock()
	defer m.mu.Unlock()

	tasks := make([]models.Task, 0, len(m.tasks))
	for _, task := range m.tasks {
		if !includeCompleted && task.Completed {
			continue
		}
		tasks = append(tasks, task.Clone())
	}

	sort.Sort(byID(tasks))
	return tasks
}

// Get retrieves a task by id.
func (m *MemoryStore) Get(id int) (models.Task, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	task, exists := m.tasks[id]
	if !exists {
		return models.Task{}, false
	}
	return task.Clone(), true
}

// Update replaces the description of an existing task.
func (m *MemoryStore) Update(id int, description string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	task, exists := m.tasks[id]
	if !exists {
		return false
	}
	task.Description = description
	return true
}

// Delete removes a task. Its id is never handed out again.
func (m *MemoryStore) Delete(id int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.tasks[id]; !exists {
		return false
	}
	delete(m.tasks, id)
	return true
}

// Complete marks a task as completed. Completing it again is a no-op that
// still reports success.
func (m *MemoryStore) Complete(id int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	task, exists := m.tasks[id]
	if !exists {
		return false
	}
	task.Complete(m.now())
	return true
}

// byID implements sort.Interface for []models.Task
type byID []models.Task

func (s byID) Len() int           { return len(s) }
func (s byID) Less(i, j int) bool { return s[i].ID < s[j].ID }
func (s byID) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
