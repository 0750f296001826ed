package task

import "errors"

// ErrTaskNotFound is returned when the requested task id has no
// matching record. Lookups wrap it with the offending id.
var ErrTaskNotFound = errors.New("task not found")
