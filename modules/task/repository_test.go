package task

import (
	"errors"
	"testing"
	"time"

	domain "github.com/example/tareas-api/domain/task"
)

func newTask(title string) domain.Task {
	return domain.Task{
		Title:     title,
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestRepositoryInsert(t *testing.T) {
	repo := NewTaskRepository()

	a := repo.Insert(newTask("Task A"))
	b := repo.Insert(newTask("Task B"))

	if a.ID != 1 || b.ID != 2 {
		t.Errorf("ids = %d, %d, expected 1, 2", a.ID, b.ID)
	}

	all := repo.FindAll()
	if len(all) != 2 {
		t.Fatalf("FindAll() returned %d tasks, expected 2", len(all))
	}
	if all[0].Title != "Task A" || all[1].Title != "Task B" {
		t.Errorf("insertion order not preserved: %q, %q", all[0].Title, all[1].Title)
	}
}

func TestRepositoryFindByID(t *testing.T) {
	repo := NewTaskRepository()
	stored := repo.Insert(newTask("Task A"))

	t.Run("existing task", func(t *testing.T) {
		found, err := repo.FindByID(stored.ID)
		if err != nil {
			t.Fatalf("FindByID() error = %v", err)
		}
		if found.Title != "Task A" {
			t.Errorf("Title = %q, expected %q", found.Title, "Task A")
		}
	})

	t.Run("missing task", func(t *testing.T) {
		_, err := repo.FindByID(99)
		if !errors.Is(err, ErrTaskNotFound) {
			t.Errorf("FindByID() error = %v, expected ErrTaskNotFound", err)
		}
	})
}

func TestRepositoryDeleteByID(t *testing.T) {
	repo := NewTaskRepository()
	a := repo.Insert(newTask("Task A"))
	b := repo.Insert(newTask("Task B"))

	if err := repo.DeleteByID(a.ID); err != nil {
		t.Fatalf("DeleteByID() error = %v", err)
	}

	all := repo.FindAll()
	if len(all) != 1 || all[0].ID != b.ID {
		t.Errorf("FindAll() = %+v, expected exactly task %d", all, b.ID)
	}

	if _, err := repo.FindByID(a.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("FindByID(deleted) error = %v, expected ErrTaskNotFound", err)
	}

	if err := repo.DeleteByID(a.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("DeleteByID(missing) error = %v, expected ErrTaskNotFound", err)
	}
}

// Deleted ids are never reused: the counter only moves forward.
func TestRepositoryIDsAreMonotonic(t *testing.T) {
	repo := NewTaskRepository()
	a := repo.Insert(newTask("Task A"))
	if err := repo.DeleteByID(a.ID); err != nil {
		t.Fatalf("DeleteByID() error = %v", err)
	}

	b := repo.Insert(newTask("Task B"))
	if b.ID != 2 {
		t.Errorf("id after delete = %d, expected 2", b.ID)
	}
}

func TestRepositoryReplaceByID(t *testing.T) {
	repo := NewTaskRepository()
	repo.Insert(newTask("Task A"))
	b := repo.Insert(newTask("Task B"))
	repo.Insert(newTask("Task C"))

	t.Run("replace preserves position and id", func(t *testing.T) {
		replacement := newTask("Task B updated")
		stored, err := repo.ReplaceByID(b.ID, replacement)
		if err != nil {
			t.Fatalf("ReplaceByID() error = %v", err)
		}
		if stored.ID != b.ID {
			t.Errorf("ID = %d, expected %d", stored.ID, b.ID)
		}

		all := repo.FindAll()
		titles := []string{all[0].Title, all[1].Title, all[2].Title}
		want := []string{"Task A", "Task B updated", "Task C"}
		for i := range want {
			if titles[i] != want[i] {
				t.Errorf("position %d = %q, expected %q", i, titles[i], want[i])
			}
		}
	})

	t.Run("missing task", func(t *testing.T) {
		_, err := repo.ReplaceByID(99, newTask("nope"))
		if !errors.Is(err, ErrTaskNotFound) {
			t.Errorf("ReplaceByID() error = %v, expected ErrTaskNotFound", err)
		}
	})
}

func TestRepositoryFindAllReturnsCopy(t *testing.T) {
	repo := NewTaskRepository()
	repo.Insert(newTask("Task A"))

	all := repo.FindAll()
	all[0].Title = "mutated"

	fresh := repo.FindAll()
	if fresh[0].Title != "Task A" {
		t.Error("FindAll() exposed internal state")
	}
}
