package task

import (
	"fmt"
	"sync"

	domain "github.com/example/tareas-api/domain/task"
)

// TaskRepository provides in-memory task storage: an ordered sequence
// of tasks plus a monotonically increasing id counter. Fiber handlers
// run concurrently, so every mutation takes the write lock.
type TaskRepository struct {
	mu     sync.RWMutex
	tasks  []domain.Task
	nextID int
}

// NewTaskRepository creates an empty repository with ids starting at 1.
func NewTaskRepository() *TaskRepository {
	return &TaskRepository{nextID: 1}
}

// Insert assigns the next id to the task, appends it preserving
// insertion order, and returns the stored task.
func (r *TaskRepository) Insert(t domain.Task) domain.Task {
	r.mu.Lock()
	defer r.mu.Unlock()

	t.ID = r.nextID
	r.nextID++
	r.tasks = append(r.tasks, t)
	return t
}

// FindByID returns the task with the given id, or ErrTaskNotFound.
func (r *TaskRepository) FindByID(id int) (domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.Task{}, fmt.Errorf("%w: id %d", ErrTaskNotFound, id)
}

// ReplaceByID overwrites the task with the given id in place,
// preserving its position in the sequence.
func (r *TaskRepository) ReplaceByID(id int, t domain.Task) (domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.tasks {
		if r.tasks[i].ID == id {
			t.ID = id
			r.tasks[i] = t
			return t, nil
		}
	}
	return domain.Task{}, fmt.Errorf("%w: id %d", ErrTaskNotFound, id)
}

// DeleteByID removes the task with the given id.
func (r *TaskRepository) DeleteByID(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.tasks {
		if r.tasks[i].ID == id {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: id %d", ErrTaskNotFound, id)
}

// FindAll returns a copy of the full ordered sequence.
func (r *TaskRepository) FindAll() []domain.Task {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Task, len(r.tasks))
	copy(result, r.tasks)
	return result
}
