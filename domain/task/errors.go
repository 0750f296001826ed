package task

// ValidationError signals that input violated a field constraint or a
// cross-field invariant. It is a caller input error, never retried.
type ValidationError struct {
	Reason string
}

// NewValidationError creates a ValidationError with the given reason.
func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

// Error prefixes the reason so the error stays recognizable after
// crossing the service boundary as a plain string.
func (e *ValidationError) Error() string {
	return "validation: " + e.Reason
}
