package mouse

import "github.com/dshills/gesture/internal/engine/selection"

// CursorShape is the pointer shape the painter shows over the text.
type CursorShape uint8

const (
	// CursorDefault is the toolkit's default pointer.
	CursorDefault CursorShape = iota
	// CursorText is the I-beam shown over editable text.
	CursorText
)

// LineInfo describes one screen line of the layout.
type LineInfo struct {
	// Line is the buffer line the screen line belongs to.
	Line int

	// LastSubregion is true when the screen line is the last (or only)
	// piece of a soft-wrapped buffer line. Only last subregions have
	// virtual space after them.
	LastSubregion bool
}

// Document is the text shown by the host.
type Document interface {
	IsLoading() bool
	IsEditable() bool

	LineCount() int
	LineOfOffset(offset int) int
	LineStartOffset(line int) int

	// LineEndOffset returns the offset just past the line's newline. The
	// last line has a virtual newline, so its end is one past the buffer
	// length.
	LineEndOffset(line int) int

	LineLength(line int) int
	LineText(line int) string

	// NoWordSep lists non-alphanumeric characters that belong to words.
	NoWordSep() string

	Insert(offset int, text string) error
}

// Layout maps between text area pixels and buffer offsets.
type Layout interface {
	// XYToOffset returns the offset nearest to a point. With round set the
	// column is rounded to the nearest boundary, otherwise it is
	// truncated. Points below the text clamp to the last screen line.
	XYToOffset(x, y int, round bool) int

	// OffsetToXY returns the top-left pixel of the offset's column.
	OffsetToXY(offset int) Position

	ScreenLineOfOffset(offset int) int

	// ScreenLineEndOffset returns the offset where the next screen line
	// starts. For a last subregion that includes the newline.
	ScreenLineEndOffset(screenLine int) int

	ScreenLineInfo(screenLine int) LineInfo
	LastScreenLine() int

	CharWidth() int
	LineHeight() int
	HorizontalOffset() int
}

// Selector edits the host's selections.
type Selector interface {
	// InsideSelection reports whether a point lies on selected text.
	InsideSelection(x, y int) bool

	SetSelection(sel selection.Selection)
	AddToSelection(sel selection.Selection)

	// ResizeSelection replaces the selection containing anchor with one
	// spanning anchor to end. extraEndVirt extends a rectangle into
	// virtual space at the end side.
	ResizeSelection(anchor, end, extraEndVirt int, rect bool)

	SelectNone()

	// MarkPosition returns the fixed end of the selection at the caret, or
	// the caret itself when nothing is selected there.
	MarkPosition() int
	MarkLine() int
}

// Caret is the insertion point and its painter state.
type Caret interface {
	CaretLine() int

	// MoveCaretPosition moves the caret without touching selections.
	MoveCaretPosition(offset int, doElectricScroll bool)

	SetBlink(on bool)
	InvalidateLine(line int)
	SetCursorShape(shape CursorShape)
}

// Features are the host's gesture-related settings.
type Features interface {
	QuickCopyEnabled() bool
	DragEnabled() bool
	MultipleSelectionEnabled() bool
	RectangularSelectionEnabled() bool
	CtrlForRectangularSelection() bool
	BlockCaretEnabled() bool
	OverwriteEnabled() bool
	JoinNonWordChars() bool
	HasRightClickPopup() bool
}

// Host is the text widget the interpreter drives.
type Host interface {
	Document
	Layout
	Selector
	Caret
	Features

	RequestFocus()

	// ResetLastActionCount breaks keyboard repeat chains so that a click
	// between two identical key presses does not count as a repeat.
	ResetLastActionCount()
}
