package task

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Task is the core domain entity representing one todo item. Completion
// is not a stored flag: it is derived from CompletedAt at read time.
type Task struct {
	ID          int
	Title       string
	Description *string
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// CompletedBy reports whether a completion timestamp marks a task as
// done at the given instant. A nil or future timestamp means pending.
func CompletedBy(completedAt *time.Time, now time.Time) bool {
	return completedAt != nil && !completedAt.After(now)
}

// IsCompleted reports the derived completion state at the given
// instant. It is evaluated at serialization boundaries, never stored,
// so a task with a future CompletedAt flips to completed on its own
// once that instant passes.
func (t Task) IsCompleted(now time.Time) bool {
	return CompletedBy(t.CompletedAt, now)
}

// Validate checks all field constraints and the cross-field invariant.
// It is the single source of truth for entity validity: construction
// and every update run through it before anything is persisted.
func (t Task) Validate() error {
	if err := validate.Var(t.Title, "required,min=3,max=100"); err != nil {
		return NewValidationError("title must be between 3 and 100 characters")
	}
	if t.Description != nil {
		if err := validate.Var(*t.Description, "max=500"); err != nil {
			return NewValidationError("description must be at most 500 characters")
		}
	}
	if t.CompletedAt != nil && t.CompletedAt.Before(t.CreatedAt) {
		return NewValidationError("completion time cannot precede the creation time")
	}
	return nil
}
