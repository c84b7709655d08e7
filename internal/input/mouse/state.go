package mouse

// State is the gesture state of the current press. It is reset by every
// OnPress and stays readable until the next one, so drag and release
// handling can see how the press was interpreted.
type State struct {
	// DragStart is the offset the press resolved to.
	DragStart int

	// DragStartLine is the buffer line of DragStart.
	DragStartLine int

	// DragStartOffset is the column of DragStart within its line.
	DragStartOffset int

	// ClickCount is the click count of the press.
	ClickCount int

	// Dragged is set once the gesture has changed the selection.
	Dragged bool

	// QuickCopyDrag marks a middle-button press with quick copy on.
	QuickCopyDrag bool

	// Control is the platform control key (Command on macOS).
	Control bool

	// CtrlForRectangularSelection makes Control select rectangles.
	CtrlForRectangularSelection bool

	// MaybeDragAndDrop marks a press inside a selection that may become
	// a drag-and-drop; the drag decides.
	MaybeDragAndDrop bool
}

// Rectangular reports whether the gesture selects rectangles, either
// through Control or through the host's global toggle.
func (s State) Rectangular(f Features) bool {
	return (s.Control && s.CtrlForRectangularSelection) || f.RectangularSelectionEnabled()
}
