package textarea

// Features are the user preferences that change how gestures behave.
type Features struct {
	// QuickCopy makes the middle button select without moving the caret.
	QuickCopy bool

	// DragAndDrop keeps a selection on a press inside it so the text can
	// be dragged.
	DragAndDrop bool

	// MultipleSelection adds new selections instead of replacing.
	MultipleSelection bool

	// RectangularSelection makes every selection a column selection.
	RectangularSelection bool

	// CtrlForRectangularSelection makes control-drag select columns.
	CtrlForRectangularSelection bool

	// BlockCaret draws the caret as a block over a character.
	BlockCaret bool

	// Overwrite replaces characters instead of inserting.
	Overwrite bool

	// JoinNonWordChars treats runs of symbols as one word.
	JoinNonWordChars bool

	// RightClickPopup enables the context menu.
	RightClickPopup bool
}

// DefaultFeatures returns the preferences of a fresh text area.
func DefaultFeatures() Features {
	return Features{
		QuickCopy:                   true,
		DragAndDrop:                 true,
		CtrlForRectangularSelection: true,
		RightClickPopup:             true,
	}
}
