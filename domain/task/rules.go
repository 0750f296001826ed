package task

import (
	"time"

	"github.com/example/tareas-api/pkg/optional"
)

// CreateInput carries the fields accepted when creating a task.
// A ProposedCompletion makes the task completed as of that instant.
type CreateInput struct {
	Title              string
	Description        *string
	ProposedCompletion *time.Time
}

// UpdateInput carries a partial update. Every field is tri-state:
// absent fields leave the task untouched.
type UpdateInput struct {
	Title         optional.Value[string]
	Description   optional.Value[string]
	SetCompleted  optional.Value[bool]
	NewCompletion optional.Value[time.Time]
}

// Construct builds a new Task from a creation request. The id is
// assigned later by the repository. now becomes the creation time; a
// proposed completion earlier than now is rejected up front, before
// the entity invariant gets its independent check.
func Construct(in CreateInput, now time.Time) (Task, error) {
	now = now.UTC()

	var completedAt *time.Time
	if in.ProposedCompletion != nil {
		proposed := in.ProposedCompletion.UTC()
		if proposed.Before(now) {
			return Task{}, NewValidationError("proposed completion time cannot precede the creation time")
		}
		completedAt = &proposed
	}

	t := Task{
		Title:       in.Title,
		Description: in.Description,
		CreatedAt:   now,
		CompletedAt: completedAt,
	}
	if err := t.Validate(); err != nil {
		return Task{}, err
	}
	return t, nil
}

// ApplyUpdate returns a copy of t with the partial update applied and
// fully revalidated. t itself is never mutated, so a failed update
// leaves the stored record untouched; the caller persists the result.
//
// Completion state resolves in precedence order:
//  1. SetCompleted true: a pending task gets NewCompletion if supplied,
//     else now; an already-completed task is re-stamped only when
//     NewCompletion is sent (null clears it), otherwise unchanged.
//  2. SetCompleted false: the task reverts to pending.
//  3. SetCompleted absent, NewCompletion sent: the stored timestamp is
//     overwritten directly (null clears it).
//  4. Otherwise completion state is untouched.
func ApplyUpdate(t Task, in UpdateInput, now time.Time) (Task, error) {
	if set, ok := in.SetCompleted.Get(); ok && !set && in.NewCompletion.Valid {
		return Task{}, NewValidationError("cannot supply a new completion time while marking the task as pending")
	}

	updated := t
	if t.Description != nil {
		d := *t.Description
		updated.Description = &d
	}
	if t.CompletedAt != nil {
		c := *t.CompletedAt
		updated.CompletedAt = &c
	}

	if in.Title.Set {
		title, ok := in.Title.Get()
		if !ok {
			return Task{}, NewValidationError("title cannot be null")
		}
		updated.Title = title
	}
	if in.Description.Set {
		updated.Description = in.Description.Ptr()
	}

	switch {
	case in.SetCompleted.Valid && in.SetCompleted.V:
		if updated.CompletedAt == nil {
			if v, ok := in.NewCompletion.Get(); ok {
				updated.CompletedAt = utcPtr(v)
			} else {
				n := now.UTC()
				updated.CompletedAt = &n
			}
		} else if in.NewCompletion.Set {
			// Re-stamping an already-completed task is allowed.
			updated.CompletedAt = newCompletionPtr(in.NewCompletion)
		}
	case in.SetCompleted.Valid:
		updated.CompletedAt = nil
	case !in.SetCompleted.Set && in.NewCompletion.Set:
		updated.CompletedAt = newCompletionPtr(in.NewCompletion)
	}

	if err := updated.Validate(); err != nil {
		return Task{}, err
	}
	return updated, nil
}

func newCompletionPtr(v optional.Value[time.Time]) *time.Time {
	if t, ok := v.Get(); ok {
		return utcPtr(t)
	}
	return nil
}

func utcPtr(t time.Time) *time.Time {
	u := t.UTC()
	return &u
}
