package backend

import "errors"

var (
	// ErrEventQueueFull is returned when a synthetic event cannot be queued.
	ErrEventQueueFull = errors.New("event queue full")

	// ErrUnsupportedEvent is returned when posting an event type the
	// backend cannot synthesize.
	ErrUnsupportedEvent = errors.New("unsupported event type")
)
