package app

import (
	"errors"
	"fmt"
)

var (
	// ErrQuit is returned by Run when the user quits.
	ErrQuit = errors.New("quit requested")

	// ErrAlreadyRunning is returned by a second concurrent Run.
	ErrAlreadyRunning = errors.New("application already running")

	// ErrNoBackend is returned when no terminal has been set.
	ErrNoBackend = errors.New("no backend")

	// ErrNothingSelected is reported by Copy with an empty selection.
	ErrNothingSelected = errors.New("nothing selected")
)

// OperationError records which startup or file operation failed.
type OperationError struct {
	Op     string // "load config", "open", "load script", ...
	Target string // usually a path
	Err    error
}

func (e *OperationError) Error() string {
	msg := e.Op
	if e.Target != "" {
		msg += " " + e.Target
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// RecoveredPanicError is a panic caught while handling a terminal event.
type RecoveredPanicError struct {
	Event string
	Value any
	Stack string
}

func (e *RecoveredPanicError) Error() string {
	msg := fmt.Sprintf("panic: %v", e.Value)
	if e.Event != "" {
		msg += " (handling " + e.Event + ")"
	}
	if e.Stack != "" {
		msg += "\n" + e.Stack
	}
	return msg
}
