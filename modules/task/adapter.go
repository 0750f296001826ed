package task

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	domain "github.com/example/tareas-api/domain/task"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// taskAdapter wraps ServiceContainer for type-safe cross-module
// communication. This is the adapter that implements the TaskPort
// interface.
type taskAdapter struct {
	container mono.ServiceContainer
}

// NewTaskAdapter creates a new adapter for task services.
// container is the ServiceContainer from the task module received via
// SetDependencyServiceContainer.
func NewTaskAdapter(container mono.ServiceContainer) TaskPort {
	if container == nil {
		panic("task adapter requires non-nil ServiceContainer")
	}
	return &taskAdapter{container: container}
}

// mapServiceError restores typed errors after the request-reply
// boundary flattened them to strings, so callers can keep using
// errors.Is and errors.As. Callers need not-found and validation
// failures distinguished on the same call, hence the message match.
func mapServiceError(err error) error {
	msg := err.Error()
	if i := strings.Index(msg, ErrTaskNotFound.Error()); i >= 0 {
		return fmt.Errorf("%w%s", ErrTaskNotFound, msg[i+len(ErrTaskNotFound.Error()):])
	}
	const prefix = "validation: "
	if i := strings.Index(msg, prefix); i >= 0 {
		return domain.NewValidationError(msg[i+len(prefix):])
	}
	return err
}

// CreateTask creates a new task via the create-task service.
func (a *taskAdapter) CreateTask(ctx context.Context, req *CreateTaskRequest) (*TaskResponse, error) {
	var resp TaskResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "create-task", json.Marshal, json.Unmarshal, req, &resp,
	); err != nil {
		return nil, mapServiceError(err)
	}
	return &resp, nil
}

// GetTask retrieves a task by id via the get-task service.
func (a *taskAdapter) GetTask(ctx context.Context, taskID int) (*TaskResponse, error) {
	req := GetTaskRequest{TaskID: taskID}
	var resp TaskResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "get-task", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, mapServiceError(err)
	}
	return &resp, nil
}

// UpdateTask applies a partial update via the update-task service.
func (a *taskAdapter) UpdateTask(ctx context.Context, req *UpdateTaskRequest) (*TaskResponse, error) {
	var resp TaskResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "update-task", json.Marshal, json.Unmarshal, req, &resp,
	); err != nil {
		return nil, mapServiceError(err)
	}
	return &resp, nil
}

// DeleteTask deletes a task via the delete-task service.
func (a *taskAdapter) DeleteTask(ctx context.Context, taskID int) error {
	req := DeleteTaskRequest{TaskID: taskID}
	var resp DeleteTaskResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "delete-task", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return mapServiceError(err)
	}
	if !resp.Deleted {
		return fmt.Errorf("%w: id %d", ErrTaskNotFound, taskID)
	}
	return nil
}

// ListTasks lists all tasks in insertion order via the list-tasks
// service.
func (a *taskAdapter) ListTasks(ctx context.Context) (*ListTasksResponse, error) {
	req := ListTasksRequest{}
	var resp ListTasksResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "list-tasks", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, mapServiceError(err)
	}
	return &resp, nil
}
