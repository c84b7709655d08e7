package textarea

import (
	"sort"
	"strconv"

	"github.com/dshills/gesture/internal/engine/buffer"
	"github.com/dshills/gesture/internal/engine/selection"
	"github.com/dshills/gesture/internal/input/mouse"
)

// Logger receives text area diagnostics.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}

const (
	defaultTabSize        = 8
	defaultElectricScroll = 3
)

// TextArea is an editable view of a buffer.
type TextArea struct {
	buf    *buffer.Buffer
	sels   *selection.Manager
	logger Logger

	features  Features
	noWordSep string
	tabSize   int

	charWidth      int
	lineHeight     int
	wrapColumn     int
	rows           int
	scrollTop      int
	hOffset        int
	electricScroll int

	caret       int
	focused     bool
	blink       bool
	cursor      mouse.CursorShape
	actionCount int
	dirty       map[int]struct{}

	layout      []screenLine
	layoutValid bool
	layoutRev   uint64
}

var _ mouse.Host = (*TextArea)(nil)

// New creates a text area over buf. The text area registers its selection
// manager as a buffer listener so selections follow edits.
func New(buf *buffer.Buffer, opts ...Option) *TextArea {
	t := &TextArea{
		buf:            buf,
		sels:           selection.NewManager(),
		logger:         nopLogger{},
		features:       DefaultFeatures(),
		tabSize:        defaultTabSize,
		charWidth:      1,
		lineHeight:     1,
		electricScroll: defaultElectricScroll,
		dirty:          make(map[int]struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}
	buf.AddListener(t.sels)
	return t
}

// Buffer returns the underlying buffer.
func (t *TextArea) Buffer() *buffer.Buffer {
	return t.buf
}

// Features returns the current gesture preferences.
func (t *TextArea) Features() Features {
	return t.features
}

// SetFeatures replaces the gesture preferences.
func (t *TextArea) SetFeatures(f Features) {
	t.features = f
	t.InvalidateAll()
}

// Document

// IsLoading reports whether the buffer is still being read.
func (t *TextArea) IsLoading() bool {
	return t.buf.IsLoading()
}

// IsEditable reports whether the buffer accepts edits.
func (t *TextArea) IsEditable() bool {
	return !t.buf.IsReadOnly()
}

func (t *TextArea) LineCount() int {
	return t.buf.LineCount()
}

func (t *TextArea) LineOfOffset(offset int) int {
	return t.buf.LineOfOffset(offset)
}

func (t *TextArea) LineStartOffset(line int) int {
	return t.buf.LineStartOffset(line)
}

func (t *TextArea) LineEndOffset(line int) int {
	return t.buf.LineEndOffset(line)
}

func (t *TextArea) LineLength(line int) int {
	return t.buf.LineLength(line)
}

func (t *TextArea) LineText(line int) string {
	return t.buf.LineText(line)
}

// NoWordSep returns the buffer's noWordSep property, or the text area
// default when the buffer has none.
func (t *TextArea) NoWordSep() string {
	if s := t.buf.Property(buffer.PropNoWordSep); s != "" {
		return s
	}
	return t.noWordSep
}

// TabSize returns the buffer's tabSize property, or the text area default.
func (t *TextArea) TabSize() int {
	if s := t.buf.Property(buffer.PropTabSize); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return t.tabSize
}

// Insert inserts s at offset. Failures are logged and returned.
func (t *TextArea) Insert(offset int, s string) error {
	if err := t.buf.Insert(offset, s); err != nil {
		t.logger.Warn("insert at %d failed: %v", offset, err)
		return err
	}
	t.InvalidateLine(t.buf.LineOfOffset(offset))
	return nil
}

// Caret

// Caret returns the caret offset.
func (t *TextArea) Caret() int {
	return t.caret
}

// CaretLine returns the line holding the caret.
func (t *TextArea) CaretLine() int {
	return t.buf.LineOfOffset(t.caret)
}

// MoveCaretPosition moves the caret without touching the selection and
// scrolls it into view. doElectricScroll keeps context lines around it.
func (t *TextArea) MoveCaretPosition(offset int, doElectricScroll bool) {
	offset = clamp(offset, 0, t.buf.Len())
	t.InvalidateLine(t.CaretLine())
	t.caret = offset
	t.blink = true
	t.InvalidateLine(t.CaretLine())
	t.scrollToCaret(doElectricScroll)
}

// SetBlink turns the caret on or off.
func (t *TextArea) SetBlink(on bool) {
	t.blink = on
}

// Blink reports whether the caret is currently drawn.
func (t *TextArea) Blink() bool {
	return t.blink
}

// InvalidateLine marks a buffer line for repainting.
func (t *TextArea) InvalidateLine(line int) {
	t.dirty[line] = struct{}{}
}

// InvalidateLineRange marks the lines first through last for repainting.
func (t *TextArea) InvalidateLineRange(first, last int) {
	if first > last {
		first, last = last, first
	}
	for l := first; l <= last; l++ {
		t.dirty[l] = struct{}{}
	}
}

// InvalidateAll marks every line for repainting.
func (t *TextArea) InvalidateAll() {
	t.InvalidateLineRange(0, t.buf.LineCount()-1)
}

// TakeInvalidLines returns the lines marked since the last call, in
// order, and clears the marks.
func (t *TextArea) TakeInvalidLines() []int {
	lines := make([]int, 0, len(t.dirty))
	for l := range t.dirty {
		lines = append(lines, l)
	}
	sort.Ints(lines)
	t.dirty = make(map[int]struct{})
	return lines
}

// SetCursorShape sets the pointer shape over the text.
func (t *TextArea) SetCursorShape(shape mouse.CursorShape) {
	t.cursor = shape
}

// CursorShape returns the pointer shape over the text.
func (t *TextArea) CursorShape() mouse.CursorShape {
	return t.cursor
}

// Features

func (t *TextArea) QuickCopyEnabled() bool {
	return t.features.QuickCopy
}

func (t *TextArea) DragEnabled() bool {
	return t.features.DragAndDrop
}

func (t *TextArea) MultipleSelectionEnabled() bool {
	return t.features.MultipleSelection
}

func (t *TextArea) RectangularSelectionEnabled() bool {
	return t.features.RectangularSelection
}

func (t *TextArea) CtrlForRectangularSelection() bool {
	return t.features.CtrlForRectangularSelection
}

func (t *TextArea) BlockCaretEnabled() bool {
	return t.features.BlockCaret
}

func (t *TextArea) OverwriteEnabled() bool {
	return t.features.Overwrite
}

func (t *TextArea) JoinNonWordChars() bool {
	return t.features.JoinNonWordChars
}

func (t *TextArea) HasRightClickPopup() bool {
	return t.features.RightClickPopup
}

// Focus and input

// RequestFocus gives the text area keyboard focus.
func (t *TextArea) RequestFocus() {
	t.focused = true
}

// Blur removes keyboard focus.
func (t *TextArea) Blur() {
	t.focused = false
}

// HasFocus reports whether the text area has keyboard focus.
func (t *TextArea) HasFocus() bool {
	return t.focused
}

// RecordAction counts a repeat of the last keyboard action.
func (t *TextArea) RecordAction() int {
	t.actionCount++
	return t.actionCount
}

// LastActionCount returns how many times the last action repeated.
func (t *TextArea) LastActionCount() int {
	return t.actionCount
}

// ResetLastActionCount starts a new action sequence.
func (t *TextArea) ResetLastActionCount() {
	t.actionCount = 0
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
