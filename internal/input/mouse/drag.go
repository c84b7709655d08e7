package mouse

// dragTracker tracks the pointer between a press and its release.
type dragTracker struct {
	active   bool
	buttons  ButtonMask
	startPos Position
	lastPos  Position
}

func (t *dragTracker) start(pos Position, buttons ButtonMask) {
	t.active = true
	t.buttons = buttons
	t.startPos = pos
	t.lastPos = pos
}

func (t *dragTracker) update(pos Position) {
	if t.active {
		t.lastPos = pos
	}
}

func (t *dragTracker) end() {
	*t = dragTracker{}
}

// DragState is a snapshot of the drag in progress.
type DragState struct {
	Active   bool
	Buttons  ButtonMask
	StartPos Position
	LastPos  Position
}

func (t *dragTracker) snapshot() DragState {
	return DragState{
		Active:   t.active,
		Buttons:  t.buttons,
		StartPos: t.startPos,
		LastPos:  t.lastPos,
	}
}
