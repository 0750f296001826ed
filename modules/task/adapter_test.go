package task

import (
	"errors"
	"fmt"
	"testing"

	domain "github.com/example/tareas-api/domain/task"
)

// The request-reply boundary flattens errors into strings; the adapter
// must restore something errors.Is / errors.As can work with.
func TestMapServiceError(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		wire := fmt.Errorf("service call failed: %s", "task not found: id 7")
		got := mapServiceError(wire)
		if !errors.Is(got, ErrTaskNotFound) {
			t.Errorf("mapServiceError() = %v, expected ErrTaskNotFound", got)
		}
		if got.Error() != "task not found: id 7" {
			t.Errorf("message = %q, expected the id preserved", got.Error())
		}
	})

	t.Run("validation", func(t *testing.T) {
		wire := fmt.Errorf("service call failed: %s", "validation: title must be between 3 and 100 characters")
		got := mapServiceError(wire)
		var verr *domain.ValidationError
		if !errors.As(got, &verr) {
			t.Fatalf("mapServiceError() = %v, expected *ValidationError", got)
		}
		if verr.Reason != "title must be between 3 and 100 characters" {
			t.Errorf("Reason = %q, expected the original reason", verr.Reason)
		}
	})

	t.Run("other errors pass through", func(t *testing.T) {
		wire := errors.New("connection reset")
		if got := mapServiceError(wire); got != wire {
			t.Errorf("mapServiceError() = %v, expected the original error", got)
		}
	})
}
