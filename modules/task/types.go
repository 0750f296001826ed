package task

import (
	"context"
	"time"

	"github.com/example/tareas-api/pkg/jsontime"
)

// CreateTaskRequest is the request for creating a task.
type CreateTaskRequest struct {
	Title              string            `json:"title"`
	Description        *string           `json:"description,omitempty"`
	ProposedCompletion *jsontime.UTCTime `json:"proposed_completion,omitempty"`
}

// GetTaskRequest is the request for getting a task.
type GetTaskRequest struct {
	TaskID int `json:"task_id"`
}

// UpdateTaskRequest is the request for a partial update. Each optional
// field travels as a presence flag plus a nullable value, so "not
// sent" stays distinguishable from "sent as null" across the service
// boundary.
type UpdateTaskRequest struct {
	TaskID           int               `json:"task_id"`
	HasTitle         bool              `json:"has_title,omitempty"`
	Title            *string           `json:"title,omitempty"`
	HasDescription   bool              `json:"has_description,omitempty"`
	Description      *string           `json:"description,omitempty"`
	HasSetCompleted  bool              `json:"has_set_completed,omitempty"`
	SetCompleted     *bool             `json:"set_completed,omitempty"`
	HasNewCompletion bool              `json:"has_new_completion,omitempty"`
	NewCompletion    *jsontime.UTCTime `json:"new_completion,omitempty"`
}

// DeleteTaskRequest is the request for deleting a task.
type DeleteTaskRequest struct {
	TaskID int `json:"task_id"`
}

// DeleteTaskResponse is the response for deleting a task.
type DeleteTaskResponse struct {
	Deleted bool `json:"deleted"`
}

// ListTasksRequest is the request for listing tasks.
type ListTasksRequest struct{}

// ListTasksResponse is the response for listing tasks, in insertion
// order.
type ListTasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Total int            `json:"total"`
}

// TaskResponse is the response for a single task. It carries the raw
// timestamps; the derived completion flag is computed at the
// serialization boundary.
type TaskResponse struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// TaskPort defines the interface for task operations (hexagonal port).
// This is the contract that driving adapters (like the HTTP API) use
// to interact with the core domain.
type TaskPort interface {
	CreateTask(ctx context.Context, req *CreateTaskRequest) (*TaskResponse, error)
	GetTask(ctx context.Context, taskID int) (*TaskResponse, error)
	UpdateTask(ctx context.Context, req *UpdateTaskRequest) (*TaskResponse, error)
	DeleteTask(ctx context.Context, taskID int) error
	ListTasks(ctx context.Context) (*ListTasksResponse, error)
}
