package mouse

import (
	"github.com/dshills/gesture/internal/engine/buffer"
	"github.com/dshills/gesture/internal/engine/selection"
)

// fakeHost is an unwrapped monospace text area: one screen line per
// buffer line, every screen line a last subregion.
type fakeHost struct {
	buf   *buffer.Buffer
	sels  *selection.Manager
	caret int

	charWidth  int
	lineHeight int

	quickCopy, drag, multi bool
	rect, ctrlRect         bool
	block, overwrite, join bool
	readOnly, popup        bool
	noWordSep              string

	focusRequests int
	actionResets  int
	blink         bool
	shape         CursorShape
	invalidated   []int
}

func newFakeHost(text string) *fakeHost {
	h := &fakeHost{
		buf:        buffer.NewBufferFromString(text),
		sels:       selection.NewManager(),
		charWidth:  10,
		lineHeight: 20,
	}
	h.buf.AddListener(h.sels)
	return h
}

// xy returns the pixel at the left edge of the column of offset.
func (h *fakeHost) xy(offset int) (int, int) {
	p := h.OffsetToXY(offset)
	return p.X, p.Y
}

func (h *fakeHost) IsLoading() bool {
	return h.buf.IsLoading()
}

func (h *fakeHost) IsEditable() bool {
	return !h.readOnly
}

func (h *fakeHost) LineCount() int {
	return h.buf.LineCount()
}

func (h *fakeHost) LineOfOffset(offset int) int {
	return h.buf.LineOfOffset(offset)
}

func (h *fakeHost) LineStartOffset(line int) int {
	return h.buf.LineStartOffset(line)
}

func (h *fakeHost) LineEndOffset(line int) int {
	return h.buf.LineEndOffset(line)
}

func (h *fakeHost) LineLength(line int) int {
	return h.buf.LineLength(line)
}

func (h *fakeHost) LineText(line int) string {
	return h.buf.LineText(line)
}

func (h *fakeHost) NoWordSep() string {
	return h.noWordSep
}

func (h *fakeHost) Insert(offset int, s string) error {
	return h.buf.Insert(offset, s)
}

func (h *fakeHost) XYToOffset(x, y int, round bool) int {
	line := y / h.lineHeight
	if last := h.buf.LineCount() - 1; line > last {
		line = last
	}
	if line < 0 {
		line = 0
	}
	if round {
		x += h.charWidth / 2
	}
	col := x / h.charWidth
	if col < 0 {
		col = 0
	}
	if n := h.buf.LineLength(line); col > n {
		col = n
	}
	return h.buf.LineStartOffset(line) + col
}

func (h *fakeHost) OffsetToXY(offset int) Position {
	line := h.buf.LineOfOffset(offset)
	col := offset - h.buf.LineStartOffset(line)
	return Position{X: col * h.charWidth, Y: line * h.lineHeight}
}

func (h *fakeHost) ScreenLineOfOffset(offset int) int {
	return h.buf.LineOfOffset(offset)
}

func (h *fakeHost) ScreenLineEndOffset(sl int) int {
	return h.buf.LineEndOffset(sl)
}

func (h *fakeHost) ScreenLineInfo(sl int) LineInfo {
	return LineInfo{Line: sl, LastSubregion: true}
}

func (h *fakeHost) LastScreenLine() int {
	return h.buf.LineCount() - 1
}

func (h *fakeHost) CharWidth() int {
	return h.charWidth
}

func (h *fakeHost) LineHeight() int {
	return h.lineHeight
}

func (h *fakeHost) HorizontalOffset() int {
	return 0
}

func (h *fakeHost) InsideSelection(x, y int) bool {
	off := h.XYToOffset(x, y, false)
	for _, s := range h.sels.All() {
		if off >= s.Start && off < s.End {
			return true
		}
	}
	return false
}

func (h *fakeHost) SetSelection(sel selection.Selection) {
	h.sels.Set(sel)
}

func (h *fakeHost) AddToSelection(sel selection.Selection) {
	h.sels.Add(sel)
}

func (h *fakeHost) SelectNone() {
	h.sels.Clear()
}

func (h *fakeHost) ResizeSelection(anchor, end, extraEndVirt int, rect bool) {
	if s, ok := h.sels.At(anchor); ok {
		h.sels.Remove(s)
	}
	var sel selection.Selection
	if rect {
		sel = selection.NewRect(anchor, end)
		if end < anchor {
			sel.ExtraStartVirt = extraEndVirt
		} else {
			sel.ExtraEndVirt = extraEndVirt
		}
	} else {
		sel = selection.NewRange(anchor, end)
	}
	h.sels.Add(sel)
}

func (h *fakeHost) MarkPosition() int {
	s, ok := h.sels.At(h.caret)
	switch {
	case !ok:
		return h.caret
	case s.Start == h.caret:
		return s.End
	case s.End == h.caret:
		return s.Start
	default:
		return h.caret
	}
}

func (h *fakeHost) MarkLine() int {
	return h.buf.LineOfOffset(h.MarkPosition())
}

func (h *fakeHost) CaretLine() int {
	return h.buf.LineOfOffset(h.caret)
}

func (h *fakeHost) MoveCaretPosition(offset int, _ bool) {
	h.caret = offset
}

func (h *fakeHost) SetBlink(on bool) {
	h.blink = on
}

func (h *fakeHost) InvalidateLine(line int) {
	h.invalidated = append(h.invalidated, line)
}

func (h *fakeHost) SetCursorShape(shape CursorShape) {
	h.shape = shape
}

func (h *fakeHost) QuickCopyEnabled() bool {
	return h.quickCopy
}

func (h *fakeHost) DragEnabled() bool {
	return h.drag
}

func (h *fakeHost) MultipleSelectionEnabled() bool {
	return h.multi
}

func (h *fakeHost) RectangularSelectionEnabled() bool {
	return h.rect
}

func (h *fakeHost) CtrlForRectangularSelection() bool {
	return h.ctrlRect
}

func (h *fakeHost) BlockCaretEnabled() bool {
	return h.block
}

func (h *fakeHost) OverwriteEnabled() bool {
	return h.overwrite
}

func (h *fakeHost) JoinNonWordChars() bool {
	return h.join
}

func (h *fakeHost) HasRightClickPopup() bool {
	return h.popup
}

func (h *fakeHost) RequestFocus() {
	h.focusRequests++
}

func (h *fakeHost) ResetLastActionCount() {
	h.actionResets++
}

// hookCall records one hook invocation.
type hookCall struct {
	name  string
	scope HookScope
}

type recordingHooks struct {
	calls    []hookCall
	ctrlRect bool
}

func (r *recordingHooks) SyncRectangularSelection(scope HookScope, _ Host, st *State) {
	r.calls = append(r.calls, hookCall{"sync", scope})
	st.CtrlForRectangularSelection = r.ctrlRect
}

func (r *recordingHooks) NotifyPositionChanging(Host) {
	r.calls = append(r.calls, hookCall{"position", ScopeTextArea})
}

func (r *recordingHooks) HandlePopupTrigger(scope HookScope, _ Host, _ Event) {
	r.calls = append(r.calls, hookCall{"popup", scope})
}
