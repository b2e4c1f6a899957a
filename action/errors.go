package action

import (
	"fmt"
	"strings"
)

// NotFoundError is returned when the target entity id does not resolve.
type NotFoundError struct {
	Entity string
	Id     int64
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.Id)
}

// ValidationError carries per-field messages so the transport layer can render
// a user-facing message. Distinct from ExecutionError.
type ValidationError struct {
	Errors map[string]string
}

func NewValidationError(key string, message string) ValidationError {
	return ValidationError{Errors: map[string]string{key: message}}
}

func (e ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for k, v := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", k, v))
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, ", "))
}

// ExecutionError wraps an unexpected collaborator failure. Fatal for the
// current request.
type ExecutionError struct {
	Cause error
}

func (e ExecutionError) Error() string {
	return fmt.Sprintf("execution failed: %v", e.Cause)
}

func (e ExecutionError) Unwrap() error {
	return e.Cause
}
