package mouse

import (
	"unicode/utf8"

	"github.com/dshills/gesture/internal/engine/selection"
	"github.com/dshills/gesture/internal/textutil"
)

// Interpreter turns presses into caret and selection changes on a Host.
type Interpreter struct {
	host     Host
	hooks    Hooks
	platform Platform

	state State
	drag  dragTracker
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithHooks sets the extension hooks. Nil restores NopHooks.
func WithHooks(h Hooks) Option {
	return func(in *Interpreter) {
		if h == nil {
			h = NopHooks{}
		}
		in.hooks = h
	}
}

// WithPlatform overrides platform detection.
func WithPlatform(p Platform) Option {
	return func(in *Interpreter) {
		in.platform = p
	}
}

// NewInterpreter creates an interpreter driving host.
func NewInterpreter(host Host, opts ...Option) *Interpreter {
	in := &Interpreter{
		host:     host,
		hooks:    NopHooks{},
		platform: DetectPlatform(),
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Host returns the text area the interpreter drives.
func (in *Interpreter) Host() Host {
	return in.host
}

// Platform returns the platform used for classification.
func (in *Interpreter) Platform() Platform {
	return in.platform
}

// State returns the gesture state left by the last press.
func (in *Interpreter) State() State {
	return in.state
}

// Drag returns the drag in progress.
func (in *Interpreter) Drag() DragState {
	return in.drag.snapshot()
}

// IsPopupTrigger reports whether ev should open the popup menu on this
// interpreter's platform.
func (in *Interpreter) IsPopupTrigger(ev Event) bool {
	return IsPopupTrigger(in.platform, ev)
}

// roundToNearest reports whether pixel to offset conversion rounds to the
// nearest column. Block and overwrite carets cover a whole character, so
// they truncate.
func (in *Interpreter) roundToNearest() bool {
	return !(in.host.BlockCaretEnabled() || in.host.OverwriteEnabled())
}

// OnPress handles a button press.
func (in *Interpreter) OnPress(ev Event) {
	h := in.host
	in.state = State{}
	in.drag.end()
	st := &in.state

	h.SetCursorShape(CursorText)

	st.Control = in.platform.ControlDown(ev.Modifiers)
	in.hooks.SyncRectangularSelection(ScopeTextArea, h, st)
	in.hooks.SyncRectangularSelection(ScopeMouseHandler, h, st)

	h.ResetLastActionCount()

	st.QuickCopyDrag = h.QuickCopyEnabled() &&
		IsMiddleButton(in.platform, ev.Buttons, ev.Modifiers)

	if !st.QuickCopyDrag {
		h.RequestFocus()
		SetFocused(h)
	}

	if h.IsLoading() {
		return
	}

	in.hooks.NotifyPositionChanging(h)

	x, y := ev.Position.X, ev.Position.Y
	st.DragStart = h.XYToOffset(x, y, in.roundToNearest())
	st.DragStartLine = h.LineOfOffset(st.DragStart)
	st.DragStartOffset = st.DragStart - h.LineStartOffset(st.DragStartLine)

	if in.IsPopupTrigger(ev) && h.HasRightClickPopup() {
		in.hooks.HandlePopupTrigger(ScopeMouseHandler, h, ev)
		in.hooks.HandlePopupTrigger(ScopeTextArea, h, ev)
		return
	}

	st.Dragged = false
	h.SetBlink(true)
	h.InvalidateLine(h.CaretLine())

	st.ClickCount = ev.ClickCount
	in.drag.start(ev.Position, ev.Buttons)

	// A press inside a selection keeps it so a following drag can move
	// the text; the drag handler decides.
	if h.DragEnabled() && h.InsideSelection(x, y) &&
		st.ClickCount == 1 && !ev.Modifiers.HasShift() {
		st.MaybeDragAndDrop = true
		h.MoveCaretPosition(st.DragStart, false)
		return
	}
	st.MaybeDragAndDrop = false

	if st.QuickCopyDrag {
		// middle button ignores multi-clicks
		in.singleClick(st, ev)
		return
	}

	// counts other than 1 and 2, including 0, select the line
	switch st.ClickCount {
	case 1:
		in.singleClick(st, ev)
	case 2:
		in.doubleClick(st)
	default:
		in.tripleClick(st)
	}
}

// submit adds sel to the selections when multiple selection is on and
// replaces them otherwise.
func (in *Interpreter) submit(sel selection.Selection) {
	if in.host.MultipleSelectionEnabled() {
		in.host.AddToSelection(sel)
	} else {
		in.host.SetSelection(sel)
	}
}

func (in *Interpreter) doubleClick(st *State) {
	h := in.host

	lineLen := h.LineLength(st.DragStartLine)
	if lineLen == 0 {
		return
	}

	line := []rune(h.LineText(st.DragStartLine))
	if st.DragStartOffset == lineLen {
		st.DragStartOffset--
	}

	noWordSep := h.NoWordSep()
	join := h.JoinNonWordChars()
	wordStart := textutil.FindWordStart(line, st.DragStartOffset, noWordSep, join)
	wordEnd := textutil.FindWordEnd(line, st.DragStartOffset+1, noWordSep, join)

	lineStart := h.LineStartOffset(st.DragStartLine)
	in.submit(selection.NewRange(lineStart+wordStart, lineStart+wordEnd))

	st.QuickCopyDrag = false
	h.MoveCaretPosition(lineStart+wordEnd, false)
	st.Dragged = true
}

func (in *Interpreter) tripleClick(st *State) {
	h := in.host

	newCaret := h.LineEndOffset(st.DragStartLine)
	if st.DragStartLine == h.LineCount()-1 {
		// the last line ends in a virtual newline
		newCaret--
	}

	in.submit(selection.NewRange(h.LineStartOffset(st.DragStartLine), newCaret))

	st.QuickCopyDrag = false
	h.MoveCaretPosition(newCaret, false)
	st.Dragged = true
}

func (in *Interpreter) singleClick(st *State, ev Event) {
	h := in.host
	x, y := ev.Position.X, ev.Position.Y
	round := in.roundToNearest()

	extraEndVirt := in.virtualColumns(x, y, round)

	rect := st.Rectangular(h)
	if rect && h.IsEditable() {
		screenLine := y / positive(h.LineHeight())
		if last := h.LastScreenLine(); screenLine > last {
			screenLine = last
		}
		if h.ScreenLineInfo(screenLine).LastSubregion && extraEndVirt != 0 {
			// a rectangular click in virtual space materializes the
			// columns so the caret can sit there
			ws := textutil.CreateWhiteSpace(extraEndVirt, 0)
			if err := h.Insert(st.DragStart, ws); err == nil {
				st.DragStart += utf8.RuneCountInString(ws)
			}
		}
	}

	if ev.Modifiers.HasShift() {
		h.ResizeSelection(h.MarkPosition(), st.DragStart, extraEndVirt, rect)

		if !st.QuickCopyDrag {
			h.MoveCaretPosition(st.DragStart, false)
		}

		// continue a shift-drag from the mark
		st.DragStartLine = h.MarkLine()
		st.DragStart = h.MarkPosition()
		st.DragStartOffset = st.DragStart - h.LineStartOffset(st.DragStartLine)

		st.Dragged = true
		return
	}

	if !st.QuickCopyDrag {
		h.MoveCaretPosition(st.DragStart, false)
	}

	if !(h.MultipleSelectionEnabled() || st.QuickCopyDrag) {
		h.SelectNone()
	}
}

// virtualColumns returns how many columns past the end of its screen line
// the point (x, y) lies. Virtual space exists only after the last
// subregion of a line, and only when the viewport ends on one.
func (in *Interpreter) virtualColumns(x, y int, round bool) int {
	h := in.host
	if !h.ScreenLineInfo(h.LastScreenLine()).LastSubregion {
		return 0
	}

	offset := h.XYToOffset(x, y, round)
	screenLine := h.ScreenLineOfOffset(offset)
	if screenLine < 0 {
		return 0
	}
	info := h.ScreenLineInfo(screenLine)
	end := h.ScreenLineEndOffset(screenLine)
	if end-offset != 1 || info.LastSubregion {
		end--
	}

	lineX := h.OffsetToXY(end).X
	if x <= lineX {
		return 0
	}

	charWidth := positive(h.CharWidth())
	extra := (x - lineX) / charWidth
	if round && (x-h.HorizontalOffset())%charWidth > charWidth/2 {
		extra++
	}
	return extra
}

// OnDrag extends the selection of the current press to the pointer. A
// press that kept a selection for drag-and-drop turns into a fresh
// selection from the press point.
func (in *Interpreter) OnDrag(ev Event) {
	if !in.drag.active {
		return
	}
	in.drag.update(ev.Position)

	h := in.host
	st := &in.state
	if st.MaybeDragAndDrop {
		st.MaybeDragAndDrop = false
		h.SelectNone()
	}

	end := h.XYToOffset(ev.Position.X, ev.Position.Y, in.roundToNearest())
	h.ResizeSelection(st.DragStart, end, 0, st.Rectangular(h))
	if !st.QuickCopyDrag {
		h.MoveCaretPosition(end, false)
	}
	st.Dragged = true
}

// OnRelease ends the current drag. A press inside a selection that was
// never dragged collapses the selection at the caret.
func (in *Interpreter) OnRelease(ev Event) {
	if !in.drag.active {
		return
	}
	in.drag.end()

	st := &in.state
	if st.MaybeDragAndDrop {
		st.MaybeDragAndDrop = false
		if !in.host.MultipleSelectionEnabled() {
			in.host.SelectNone()
		}
	}
}

func positive(n int) int {
	if n <= 0 {
		return 1
	}
	return n
}
