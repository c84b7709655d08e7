package lua

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/gesture/internal/input/mouse"
)

// Global functions a hook script may define.
const (
	FuncSyncRectangularSelection = "sync_rectangular_selection"
	FuncPositionChanging         = "position_changing"
	FuncPopupTrigger             = "popup_trigger"
)

// Logger receives diagnostics. *app.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}

// Hooks implements mouse.Hooks by calling functions in a Lua script.
type Hooks struct {
	state  *State
	bridge *Bridge
	logger Logger
}

var _ mouse.Hooks = (*Hooks)(nil)

// NewHooks creates hooks calling into state. Hooks owns state after this
// call.
func NewHooks(state *State, logger Logger) *Hooks {
	if logger == nil {
		logger = nopLogger{}
	}
	return &Hooks{
		state:  state,
		bridge: NewBridge(state.L),
		logger: logger,
	}
}

// ModuleName is the global table LoadHooks gives every script.
const ModuleName = "gesture"

// LoadHooks runs the script at path in a new sandboxed state. Its print
// output goes to logger at debug level. The script also sees a gesture
// table with log and warn functions and the scope names passed to hooks.
func LoadHooks(path string, logger Logger, opts ...StateOption) (*Hooks, error) {
	if logger == nil {
		logger = nopLogger{}
	}

	printer := WithPrintFunc(func(s string) {
		logger.Debug("lua: %s", s)
	})
	state := NewState(append([]StateOption{printer}, opts...)...)
	state.RegisterModule(ModuleName, map[string]lua.LGFunction{
		"log": func(L *lua.LState) int {
			logger.Debug("lua: %s", L.CheckString(1))
			return 0
		},
		"warn": func(L *lua.LState) int {
			logger.Warn("lua: %s", L.CheckString(1))
			return 0
		},
	}, map[string]lua.LValue{
		"SCOPE_TEXTAREA": lua.LString(mouse.ScopeTextArea.String()),
		"SCOPE_MOUSE":    lua.LString(mouse.ScopeMouseHandler.String()),
	})

	if err := state.DoFile(path); err != nil {
		_ = state.Close()
		return nil, fmt.Errorf("%w: %s: %v", ErrScriptLoad, path, err)
	}
	return NewHooks(state, logger), nil
}

// State returns the script's Lua state.
func (h *Hooks) State() *State {
	return h.state
}

// Close releases the Lua state.
func (h *Hooks) Close() error {
	return h.state.Close()
}

// SyncRectangularSelection calls
// sync_rectangular_selection(scope, ctrl_for_rect, control). A boolean
// result replaces st.CtrlForRectangularSelection.
func (h *Hooks) SyncRectangularSelection(scope mouse.HookScope, _ mouse.Host, st *mouse.State) {
	ret, ok := h.call(FuncSyncRectangularSelection,
		lua.LString(scope.String()),
		lua.LBool(st.CtrlForRectangularSelection),
		lua.LBool(st.Control),
	)
	if !ok || len(ret) == 0 || ret[0] == lua.LNil {
		return
	}

	b, isBool := ret[0].(lua.LBool)
	if !isBool {
		h.logger.Warn("lua hook %s returned %v, want boolean or nil",
			FuncSyncRectangularSelection, h.bridge.ToGoValue(ret[0]))
		return
	}
	st.CtrlForRectangularSelection = bool(b)
}

// NotifyPositionChanging calls position_changing(line) with the caret
// line before the press moves it.
func (h *Hooks) NotifyPositionChanging(host mouse.Host) {
	h.call(FuncPositionChanging, lua.LNumber(host.CaretLine()))
}

// HandlePopupTrigger calls popup_trigger(scope, ev).
func (h *Hooks) HandlePopupTrigger(scope mouse.HookScope, _ mouse.Host, ev mouse.Event) {
	h.call(FuncPopupTrigger, lua.LString(scope.String()), h.eventTable(ev))
}

func (h *Hooks) eventTable(ev mouse.Event) lua.LValue {
	return h.bridge.ToLuaValue(map[string]any{
		"x":         ev.Position.X,
		"y":         ev.Position.Y,
		"clicks":    ev.ClickCount,
		"buttons":   ev.Buttons.String(),
		"modifiers": ev.Modifiers.String(),
		"shift":     ev.Modifiers.HasShift(),
		"ctrl":      ev.Modifiers.HasCtrl(),
		"alt":       ev.Modifiers.HasAlt(),
		"meta":      ev.Modifiers.HasMeta(),
	})
}

// call invokes fn when the script defines it. Errors are logged.
func (h *Hooks) call(fn string, args ...lua.LValue) ([]lua.LValue, bool) {
	if !h.state.HasFunction(fn) {
		return nil, false
	}
	ret, err := h.state.Call(fn, args...)
	if err != nil {
		h.logger.Warn("lua hook %s: %v", fn, err)
		return nil, false
	}
	return ret, true
}
