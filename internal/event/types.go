package event

import "context"

// Handler processes events delivered by the bus.
type Handler interface {
	// Handle processes an event. The event is type-erased; handlers
	// type-assert to the Event[T] they expect.
	Handle(ctx context.Context, event any) error
}

// HandlerFunc is a function adapter for Handler.
type HandlerFunc func(ctx context.Context, event any) error

// Handle implements the Handler interface.
func (f HandlerFunc) Handle(ctx context.Context, event any) error {
	return f(ctx, event)
}

// Typed adapts a function taking Event[T] to a Handler. Events with any
// other payload type are ignored.
func Typed[T any](fn func(ctx context.Context, e Event[T]) error) Handler {
	return HandlerFunc(func(ctx context.Context, ev any) error {
		e, ok := ev.(Event[T])
		if !ok {
			return nil
		}
		return fn(ctx, e)
	})
}

// PanicHandler is told about every recovered handler panic.
type PanicHandler func(err *PanicError)
