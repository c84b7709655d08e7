package lua

import (
	"context"
	"fmt"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// DefaultExecutionTimeout bounds every chunk and call. Hooks run inside
// a mouse press, so a looping script must not freeze the editor.
const DefaultExecutionTimeout = 200 * time.Millisecond

// State is a sandboxed Lua state. Only base, table, string and math are
// opened. LState is not goroutine-safe, so every method locks.
type State struct {
	L *lua.LState

	mu      sync.Mutex
	closed  bool
	timeout time.Duration
	print   func(string)
}

// StateOption configures a State.
type StateOption func(*State)

// WithExecutionTimeout sets the limit for each chunk and call. Zero
// disables it.
func WithExecutionTimeout(d time.Duration) StateOption {
	return func(s *State) {
		if d >= 0 {
			s.timeout = d
		}
	}
}

// WithPrintFunc receives the output of the script's print calls.
func WithPrintFunc(fn func(string)) StateOption {
	return func(s *State) {
		s.print = fn
	}
}

// NewState creates a sandboxed state.
func NewState(opts ...StateOption) *State {
	s := &State{
		timeout: DefaultExecutionTimeout,
		print:   func(string) {},
	}
	for _, opt := range opts {
		opt(s)
	}

	s.L = lua.NewState(lua.Options{SkipOpenLibs: true})
	lua.OpenBase(s.L)
	lua.OpenTable(s.L)
	lua.OpenString(s.L)
	lua.OpenMath(s.L)
	NewSandbox(s.L, s.print).Install()
	return s
}

// locked runs fn with the state held. It fails once the state is closed.
func (s *State) locked(fn func(L *lua.LState) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStateClosed
	}
	return fn(s.L)
}

// exec runs fn under the execution timeout. A Go panic raised by a
// builtin comes back as an error.
func (s *State) exec(fn func() error) (err error) {
	if s.timeout > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		s.L.SetContext(ctx)
		defer s.L.RemoveContext()
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn()
}

// DoFile executes the script at path.
func (s *State) DoFile(path string) error {
	return s.locked(func(L *lua.LState) error {
		return s.exec(func() error { return L.DoFile(path) })
	})
}

// DoString executes a chunk.
func (s *State) DoString(code string) error {
	return s.locked(func(L *lua.LState) error {
		return s.exec(func() error { return L.DoString(code) })
	})
}

// HasFunction reports whether the global name is a function.
func (s *State) HasFunction(name string) bool {
	found := false
	_ = s.locked(func(L *lua.LState) error {
		found = L.GetGlobal(name).Type() == lua.LTFunction
		return nil
	})
	return found
}

// Call calls the global function fn. It returns every value the function
// returned, or an empty slice.
func (s *State) Call(fn string, args ...lua.LValue) ([]lua.LValue, error) {
	var results []lua.LValue
	err := s.locked(func(L *lua.LState) error {
		f := L.GetGlobal(fn)
		switch {
		case f == lua.LNil:
			return fmt.Errorf("%w: %s", ErrFunctionNotFound, fn)
		case f.Type() != lua.LTFunction:
			return fmt.Errorf("%q is not a function (got %s)", fn, f.Type())
		}

		base := L.GetTop()
		L.Push(f)
		for _, arg := range args {
			L.Push(arg)
		}
		if err := s.exec(func() error { return L.PCall(len(args), lua.MultRet, nil) }); err != nil {
			L.SetTop(base)
			return err
		}

		n := L.GetTop() - base
		results = make([]lua.LValue, 0, max(n, 0))
		for i := 1; i <= n; i++ {
			results = append(results, L.Get(base+i))
		}
		L.SetTop(base)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// GetGlobal returns a global, or nil once the state is closed.
func (s *State) GetGlobal(name string) lua.LValue {
	v := lua.LValue(lua.LNil)
	_ = s.locked(func(L *lua.LState) error {
		v = L.GetGlobal(name)
		return nil
	})
	return v
}

// SetGlobal sets a global.
func (s *State) SetGlobal(name string, value lua.LValue) {
	_ = s.locked(func(L *lua.LState) error {
		L.SetGlobal(name, value)
		return nil
	})
}

// RegisterModule installs a global table holding funcs and fields.
func (s *State) RegisterModule(name string, funcs map[string]lua.LGFunction, fields map[string]lua.LValue) {
	_ = s.locked(func(L *lua.LState) error {
		mod := L.SetFuncs(L.NewTable(), funcs)
		for k, v := range fields {
			mod.RawSetString(k, v)
		}
		L.SetGlobal(name, mod)
		return nil
	})
}

// IsClosed reports whether Close has been called.
func (s *State) IsClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Close releases the state. Later calls return ErrStateClosed.
func (s *State) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.L.Close()
		s.closed = true
	}
	return nil
}
