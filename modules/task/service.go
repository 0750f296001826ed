package task

import (
	"context"
	"log"
	"time"

	domain "github.com/example/tareas-api/domain/task"
	"github.com/example/tareas-api/events"
	"github.com/example/tareas-api/pkg/jsontime"
	"github.com/example/tareas-api/pkg/optional"
	"github.com/go-monolith/mono"
)

// createTask handles the create-task service request.
func (m *TaskModule) createTask(_ context.Context, req CreateTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	in := domain.CreateInput{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.ProposedCompletion != nil {
		in.ProposedCompletion = &req.ProposedCompletion.Time
	}

	newTask, err := domain.Construct(in, time.Now())
	if err != nil {
		return TaskResponse{}, err
	}

	stored := m.repo.Insert(newTask)

	if m.eventBus != nil {
		event := events.TaskCreatedEvent{
			TaskID:    stored.ID,
			Title:     stored.Title,
			CreatedAt: stored.CreatedAt,
		}
		if err := events.TaskCreatedV1.Publish(m.eventBus, event, nil); err != nil {
			// Event publishing is best-effort; log but don't fail the operation
			log.Printf("[task] Warning: failed to publish TaskCreated event for task %d: %v", stored.ID, err)
		}
	}

	return toTaskResponse(stored), nil
}

// getTask handles the get-task service request.
func (m *TaskModule) getTask(_ context.Context, req GetTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	found, err := m.repo.FindByID(req.TaskID)
	if err != nil {
		return TaskResponse{}, err
	}
	return toTaskResponse(found), nil
}

// updateTask handles the update-task service request. The update is
// applied to a copy and persisted only after full revalidation, so a
// rejected update leaves the stored record unchanged.
func (m *TaskModule) updateTask(_ context.Context, req UpdateTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	existing, err := m.repo.FindByID(req.TaskID)
	if err != nil {
		return TaskResponse{}, err
	}

	now := time.Now()
	in := domain.UpdateInput{
		Title:         optional.FromPtr(req.HasTitle, req.Title),
		Description:   optional.FromPtr(req.HasDescription, req.Description),
		SetCompleted:  optional.FromPtr(req.HasSetCompleted, req.SetCompleted),
		NewCompletion: completionValue(req.HasNewCompletion, req.NewCompletion),
	}

	updated, err := domain.ApplyUpdate(existing, in, now)
	if err != nil {
		return TaskResponse{}, err
	}

	stored, err := m.repo.ReplaceByID(req.TaskID, updated)
	if err != nil {
		return TaskResponse{}, err
	}

	// The completion transition is observable only here: a task counts
	// as newly completed when the update moved it from no timestamp to
	// one that is already due.
	if m.eventBus != nil && existing.CompletedAt == nil && stored.IsCompleted(now) {
		event := events.TaskCompletedEvent{
			TaskID:      stored.ID,
			CompletedAt: *stored.CompletedAt,
		}
		if err := events.TaskCompletedV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[task] Warning: failed to publish TaskCompleted event for task %d: %v", stored.ID, err)
		}
	}

	return toTaskResponse(stored), nil
}

// deleteTask handles the delete-task service request.
func (m *TaskModule) deleteTask(_ context.Context, req DeleteTaskRequest, _ *mono.Msg) (DeleteTaskResponse, error) {
	if err := m.repo.DeleteByID(req.TaskID); err != nil {
		return DeleteTaskResponse{Deleted: false}, err
	}

	if m.eventBus != nil {
		event := events.TaskDeletedEvent{
			TaskID:    req.TaskID,
			DeletedAt: time.Now(),
		}
		if err := events.TaskDeletedV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[task] Warning: failed to publish TaskDeleted event for task %d: %v", req.TaskID, err)
		}
	}

	return DeleteTaskResponse{Deleted: true}, nil
}

// listTasks handles the list-tasks service request.
func (m *TaskModule) listTasks(_ context.Context, _ ListTasksRequest, _ *mono.Msg) (ListTasksResponse, error) {
	tasks := m.repo.FindAll()

	response := ListTasksResponse{
		Tasks: make([]TaskResponse, 0, len(tasks)),
		Total: len(tasks),
	}
	for _, t := range tasks {
		response.Tasks = append(response.Tasks, toTaskResponse(t))
	}
	return response, nil
}

// completionValue rebuilds the tri-state new-completion field from its
// wire representation.
func completionValue(set bool, t *jsontime.UTCTime) optional.Value[time.Time] {
	if !set {
		return optional.Value[time.Time]{}
	}
	if t == nil {
		return optional.Null[time.Time]()
	}
	return optional.Of(t.Time)
}

// toTaskResponse converts a domain Task to a TaskResponse.
func toTaskResponse(t domain.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		CompletedAt: t.CompletedAt,
	}
}
