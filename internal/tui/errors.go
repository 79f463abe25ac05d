package tui

import (
	"errors"
	"fmt"
)

// ErrInterrupted is returned by Run when WithInterruptAsError is set and the
// interrupt signal arrives before the task finishes.
var ErrInterrupted = errors.New("interrupted")

// TaskError wraps a failure of the background task: either the error it
// returned or a *PanicError if it panicked.
type TaskError struct {
	Err error
}

func (e *TaskError) Error() string {
	return fmt.Sprintf("background task failed: %v", e.Err)
}

func (e *TaskError) Unwrap() error {
	return e.Err
}

// PanicError records a panic recovered from the background task.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// IsTaskError reports whether err (or any error in its chain) came from the
// background task rather than from the terminal.
func IsTaskError(err error) bool {
	var taskErr *TaskError
	return errors.As(err, &taskErr)
}
