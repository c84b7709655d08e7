package textarea

import (
	"math"
	"strings"

	"github.com/dshills/gesture/internal/engine/selection"
)

// Selections returns the current selections in offset order.
func (t *TextArea) Selections() []selection.Selection {
	return t.sels.All()
}

// SelectionAt returns the selection containing offset, ends included.
func (t *TextArea) SelectionAt(offset int) (selection.Selection, bool) {
	return t.sels.At(offset)
}

func (t *TextArea) invalidateSelection(s selection.Selection) {
	t.InvalidateLineRange(t.buf.LineOfOffset(s.Start), t.buf.LineOfOffset(s.End))
}

func (t *TextArea) invalidateSelections() {
	for _, s := range t.sels.All() {
		t.invalidateSelection(s)
	}
}

// SetSelection replaces every selection with sel.
func (t *TextArea) SetSelection(sel selection.Selection) {
	t.invalidateSelections()
	t.sels.Set(sel)
	t.invalidateSelection(sel)
}

// AddToSelection adds sel, replacing selections it overlaps.
func (t *TextArea) AddToSelection(sel selection.Selection) {
	t.sels.Add(sel)
	t.invalidateSelection(sel)
}

// SelectNone clears every selection.
func (t *TextArea) SelectNone() {
	t.invalidateSelections()
	t.sels.Clear()
}

// SelectAll selects the whole buffer and moves the caret to its end.
func (t *TextArea) SelectAll() {
	t.SetSelection(selection.NewRange(0, t.buf.Len()))
	t.MoveCaretPosition(t.buf.Len(), false)
}

// ResizeSelection replaces the selection at anchor with one from anchor to
// end. A rectangle records extraEndVirt on whichever side end lands.
func (t *TextArea) ResizeSelection(anchor, end, extraEndVirt int, rect bool) {
	if s, ok := t.sels.At(anchor); ok {
		t.invalidateSelection(s)
		t.sels.Remove(s)
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
	t.sels.Add(sel)
	t.invalidateSelection(sel)
}

// MarkPosition returns the end of the selection at the caret that the
// caret is not on, or the caret itself.
func (t *TextArea) MarkPosition() int {
	s, ok := t.sels.At(t.caret)
	switch {
	case !ok:
		return t.caret
	case s.Start == t.caret:
		return s.End
	case s.End == t.caret:
		return s.Start
	default:
		return t.caret
	}
}

// MarkLine returns the line of MarkPosition.
func (t *TextArea) MarkLine() int {
	return t.buf.LineOfOffset(t.MarkPosition())
}

// InsideSelection reports whether the pixel (x, y) is over selected text.
func (t *TextArea) InsideSelection(x, y int) bool {
	offset := t.XYToOffset(x, y, true)
	s, ok := t.sels.At(offset)
	if !ok {
		return false
	}
	sl := t.ScreenLineOfOffset(offset)
	if sl == -1 {
		return false
	}
	x0, x1, ok := t.selectionSpan(sl, s)
	return ok && x >= x0 && x <= x1
}

// selectionSpan returns the pixel extent of s on visible screen line sl.
func (t *TextArea) selectionSpan(sl int, s selection.Selection) (int, int, bool) {
	lines := t.screenLines()
	i := t.scrollTop + sl
	if i < 0 || i >= len(lines) {
		return 0, 0, false
	}
	row := lines[i]

	if s.Rect {
		first, last := t.buf.LineOfOffset(s.Start), t.buf.LineOfOffset(s.End)
		if row.line < first || row.line > last {
			return 0, 0, false
		}
		c0 := t.lineColumn(s.Start) + s.ExtraStartVirt
		c1 := t.lineColumn(s.End) + s.ExtraEndVirt
		if c0 > c1 {
			c0, c1 = c1, c0
		}
		return c0*t.charWidth + t.hOffset, c1*t.charWidth + t.hOffset, true
	}

	if s.End < row.start || s.Start > row.end {
		return 0, 0, false
	}
	x0 := t.hOffset
	if s.Start >= row.start {
		x0 = t.columnOf(row, s.Start)*t.charWidth + t.hOffset
	}
	x1 := math.MaxInt
	if s.End <= row.end {
		x1 = t.columnOf(row, s.End)*t.charWidth + t.hOffset
	}
	return x0, x1, true
}

// IsSelected reports whether the character at offset is painted as
// selected.
func (t *TextArea) IsSelected(offset int) bool {
	for _, s := range t.sels.All() {
		if !s.Rect {
			if offset >= s.Start && offset < s.End {
				return true
			}
			continue
		}
		line := t.buf.LineOfOffset(offset)
		if line < t.buf.LineOfOffset(s.Start) || line > t.buf.LineOfOffset(s.End) {
			continue
		}
		c0 := t.lineColumn(s.Start) + s.ExtraStartVirt
		c1 := t.lineColumn(s.End) + s.ExtraEndVirt
		if c0 > c1 {
			c0, c1 = c1, c0
		}
		if col := t.lineColumn(offset); col >= c0 && col < c1 {
			return true
		}
	}
	return false
}

// SelectedText returns the text of every selection, joined by newlines.
// Rectangles contribute the columns they cover on each line.
func (t *TextArea) SelectedText() string {
	var parts []string
	for _, s := range t.sels.All() {
		if !s.Rect {
			text, err := t.buf.TextRange(s.Start, s.End)
			if err != nil {
				t.logger.Warn("reading selection %s: %v", s, err)
				continue
			}
			parts = append(parts, text)
			continue
		}
		parts = append(parts, t.rectText(s))
	}
	return strings.Join(parts, "\n")
}

func (t *TextArea) rectText(s selection.Selection) string {
	c0 := t.lineColumn(s.Start) + s.ExtraStartVirt
	c1 := t.lineColumn(s.End) + s.ExtraEndVirt
	if c0 > c1 {
		c0, c1 = c1, c0
	}

	first, last := t.buf.LineOfOffset(s.Start), t.buf.LineOfOffset(s.End)
	rows := make([]string, 0, last-first+1)
	for line := first; line <= last; line++ {
		var sb strings.Builder
		col := 0
		for _, r := range t.buf.LineText(line) {
			if col >= c0 && col < c1 {
				sb.WriteRune(r)
			}
			col += t.cells(r, col)
		}
		rows = append(rows, sb.String())
	}
	return strings.Join(rows, "\n")
}
