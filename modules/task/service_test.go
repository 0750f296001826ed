package task

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "github.com/example/tareas-api/domain/task"
	"github.com/example/tareas-api/pkg/jsontime"
)

func newTestModule() *TaskModule {
	return &TaskModule{repo: NewTaskRepository()}
}

func boolPtr(b bool) *bool { return &b }

func strPtr(s string) *string { return &s }

func utcPtr(t time.Time) *jsontime.UTCTime {
	v := jsontime.New(t)
	return &v
}

func TestCreateTask(t *testing.T) {
	m := newTestModule()
	ctx := context.Background()

	t.Run("pending task", func(t *testing.T) {
		resp, err := m.createTask(ctx, CreateTaskRequest{Title: "Buy milk"}, nil)
		if err != nil {
			t.Fatalf("createTask() error = %v", err)
		}
		if resp.ID != 1 {
			t.Errorf("ID = %d, expected 1", resp.ID)
		}
		if resp.CompletedAt != nil {
			t.Errorf("CompletedAt = %v, expected nil", resp.CompletedAt)
		}
	})

	t.Run("validation failure stores nothing", func(t *testing.T) {
		before := len(m.repo.FindAll())
		_, err := m.createTask(ctx, CreateTaskRequest{
			Title:              "Buy milk",
			ProposedCompletion: utcPtr(time.Now().Add(-time.Hour)),
		}, nil)
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("createTask() error = %v, expected *ValidationError", err)
		}
		if got := len(m.repo.FindAll()); got != before {
			t.Errorf("store grew from %d to %d on a rejected request", before, got)
		}
	})

	t.Run("future proposal", func(t *testing.T) {
		future := time.Now().Add(time.Hour)
		resp, err := m.createTask(ctx, CreateTaskRequest{
			Title:              "Scheduled",
			ProposedCompletion: utcPtr(future),
		}, nil)
		if err != nil {
			t.Fatalf("createTask() error = %v", err)
		}
		if resp.CompletedAt == nil || !resp.CompletedAt.Equal(future) {
			t.Errorf("CompletedAt = %v, expected %v", resp.CompletedAt, future.UTC())
		}
	})
}

func TestGetTask(t *testing.T) {
	m := newTestModule()
	ctx := context.Background()
	created, _ := m.createTask(ctx, CreateTaskRequest{Title: "Buy milk"}, nil)

	t.Run("existing", func(t *testing.T) {
		resp, err := m.getTask(ctx, GetTaskRequest{TaskID: created.ID}, nil)
		if err != nil {
			t.Fatalf("getTask() error = %v", err)
		}
		if resp.Title != "Buy milk" {
			t.Errorf("Title = %q, expected %q", resp.Title, "Buy milk")
		}
	})

	t.Run("missing", func(t *testing.T) {
		_, err := m.getTask(ctx, GetTaskRequest{TaskID: 42}, nil)
		if !errors.Is(err, ErrTaskNotFound) {
			t.Errorf("getTask() error = %v, expected ErrTaskNotFound", err)
		}
	})
}

func TestUpdateTask(t *testing.T) {
	ctx := context.Background()

	t.Run("complete without timestamp stamps now", func(t *testing.T) {
		m := newTestModule()
		created, _ := m.createTask(ctx, CreateTaskRequest{Title: "Buy milk"}, nil)

		before := time.Now()
		resp, err := m.updateTask(ctx, UpdateTaskRequest{
			TaskID:          created.ID,
			HasSetCompleted: true,
			SetCompleted:    boolPtr(true),
		}, nil)
		after := time.Now()
		if err != nil {
			t.Fatalf("updateTask() error = %v", err)
		}
		if resp.CompletedAt == nil {
			t.Fatal("CompletedAt = nil, expected the processing time")
		}
		if resp.CompletedAt.Before(before.UTC()) || resp.CompletedAt.After(after.UTC()) {
			t.Errorf("CompletedAt = %v, expected within [%v, %v]", resp.CompletedAt, before, after)
		}
	})

	t.Run("contradictory update leaves record unchanged", func(t *testing.T) {
		m := newTestModule()
		created, _ := m.createTask(ctx, CreateTaskRequest{Title: "Buy milk"}, nil)

		_, err := m.updateTask(ctx, UpdateTaskRequest{
			TaskID:           created.ID,
			HasTitle:         true,
			Title:            strPtr("Changed title"),
			HasSetCompleted:  true,
			SetCompleted:     boolPtr(false),
			HasNewCompletion: true,
			NewCompletion:    utcPtr(time.Now().Add(time.Hour)),
		}, nil)
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("updateTask() error = %v, expected *ValidationError", err)
		}

		stored, _ := m.getTask(ctx, GetTaskRequest{TaskID: created.ID}, nil)
		if stored.Title != "Buy milk" {
			t.Errorf("Title = %q, rejected update mutated the record", stored.Title)
		}
	})

	t.Run("clear description with explicit null", func(t *testing.T) {
		m := newTestModule()
		created, _ := m.createTask(ctx, CreateTaskRequest{
			Title:       "Buy milk",
			Description: strPtr("2 liters"),
		}, nil)

		resp, err := m.updateTask(ctx, UpdateTaskRequest{
			TaskID:         created.ID,
			HasDescription: true,
		}, nil)
		if err != nil {
			t.Fatalf("updateTask() error = %v", err)
		}
		if resp.Description != nil {
			t.Errorf("Description = %q, expected nil", *resp.Description)
		}
	})

	t.Run("missing task", func(t *testing.T) {
		m := newTestModule()
		_, err := m.updateTask(ctx, UpdateTaskRequest{TaskID: 42}, nil)
		if !errors.Is(err, ErrTaskNotFound) {
			t.Errorf("updateTask() error = %v, expected ErrTaskNotFound", err)
		}
	})
}

func TestDeleteTask(t *testing.T) {
	m := newTestModule()
	ctx := context.Background()
	a, _ := m.createTask(ctx, CreateTaskRequest{Title: "Task A"}, nil)
	b, _ := m.createTask(ctx, CreateTaskRequest{Title: "Task B"}, nil)

	resp, err := m.deleteTask(ctx, DeleteTaskRequest{TaskID: a.ID}, nil)
	if err != nil {
		t.Fatalf("deleteTask() error = %v", err)
	}
	if !resp.Deleted {
		t.Error("Deleted = false, expected true")
	}

	list, err := m.listTasks(ctx, ListTasksRequest{}, nil)
	if err != nil {
		t.Fatalf("listTasks() error = %v", err)
	}
	if list.Total != 1 || list.Tasks[0].ID != b.ID {
		t.Errorf("listTasks() = %+v, expected exactly task %d", list, b.ID)
	}

	if _, err := m.deleteTask(ctx, DeleteTaskRequest{TaskID: a.ID}, nil); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("deleteTask(missing) error = %v, expected ErrTaskNotFound", err)
	}
}

func TestListTasksOrder(t *testing.T) {
	m := newTestModule()
	ctx := context.Background()
	for _, title := range []string{"First task", "Second task", "Third task"} {
		if _, err := m.createTask(ctx, CreateTaskRequest{Title: title}, nil); err != nil {
			t.Fatalf("createTask(%q) error = %v", title, err)
		}
	}

	list, err := m.listTasks(ctx, ListTasksRequest{}, nil)
	if err != nil {
		t.Fatalf("listTasks() error = %v", err)
	}
	if list.Total != 3 {
		t.Fatalf("Total = %d, expected 3", list.Total)
	}
	for i, want := range []string{"First task", "Second task", "Third task"} {
		if list.Tasks[i].Title != want {
			t.Errorf("position %d = %q, expected %q", i, list.Tasks[i].Title, want)
		}
	}
}
