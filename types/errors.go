package types

import (
	"errors"
	"fmt"
)

// ValidationError indicates that an input failed a business rule, such as
// an empty title or an illegal status transition. It is always recoverable;
// callers are expected to re-prompt and retry.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with a formatted message.
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// TaskNotFoundError indicates that a referenced task ID does not exist in
// the store. It is always recoverable.
type TaskNotFoundError struct {
	ID int
}

func (e *TaskNotFoundError) Error() string {
	return fmt.Sprintf("Task ID %d not found", e.ID)
}

// NewTaskNotFoundError creates a TaskNotFoundError for the given ID.
func NewTaskNotFoundError(id int) *TaskNotFoundError {
	return &TaskNotFoundError{ID: id}
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsTaskNotFound reports whether err is (or wraps) a TaskNotFoundError.
func IsTaskNotFound(err error) bool {
	var nf *TaskNotFoundError
	return errors.As(err, &nf)
}
