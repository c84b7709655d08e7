package lua

import "errors"

// Errors for Lua state operations.
var (
	// ErrStateClosed is returned when operating on a closed state.
	ErrStateClosed = errors.New("lua state is closed")

	// ErrFunctionNotFound is returned when calling an undefined global.
	ErrFunctionNotFound = errors.New("lua function not found")

	// ErrScriptLoad is returned when a hook script fails to load or run.
	ErrScriptLoad = errors.New("lua script load failed")
)
