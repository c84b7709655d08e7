package mouse

// HookScope tells a hook which layer is calling. The text area layer runs
// first for rectangular sync; the mouse handler layer runs first for
// popups.
type HookScope uint8

const (
	// ScopeTextArea is the text area layer.
	ScopeTextArea HookScope = iota
	// ScopeMouseHandler is the mouse handler layer.
	ScopeMouseHandler
)

// String returns a string representation of the scope.
func (s HookScope) String() string {
	if s == ScopeMouseHandler {
		return "mouse"
	}
	return "textarea"
}

// Hooks are extension points invoked during OnPress.
type Hooks interface {
	// SyncRectangularSelection may update st.CtrlForRectangularSelection
	// from the owner's preferences. Called once per scope on every press.
	SyncRectangularSelection(scope HookScope, h Host, st *State)

	// NotifyPositionChanging announces that the caret is about to move.
	NotifyPositionChanging(h Host)

	// HandlePopupTrigger shows the popup menu for ev. Called once per
	// scope when a press is a popup trigger and the host has a popup.
	HandlePopupTrigger(scope HookScope, h Host, ev Event)
}

// NopHooks implements Hooks with no-ops.
type NopHooks struct{}

func (NopHooks) SyncRectangularSelection(HookScope, Host, *State) {}
func (NopHooks) NotifyPositionChanging(Host)                      {}
func (NopHooks) HandlePopupTrigger(HookScope, Host, Event)        {}

// MultiHooks calls each hook set in order.
type MultiHooks []Hooks

func (m MultiHooks) SyncRectangularSelection(scope HookScope, h Host, st *State) {
	for _, hk := range m {
		hk.SyncRectangularSelection(scope, h, st)
	}
}

func (m MultiHooks) NotifyPositionChanging(h Host) {
	for _, hk := range m {
		hk.NotifyPositionChanging(h)
	}
}

func (m MultiHooks) HandlePopupTrigger(scope HookScope, h Host, ev Event) {
	for _, hk := range m {
		hk.HandlePopupTrigger(scope, h, ev)
	}
}
