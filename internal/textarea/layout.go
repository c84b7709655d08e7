package textarea

import (
	"sort"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/gesture/internal/input/mouse"
)

// screenLine is one row of the layout: a buffer line, or the part of one
// that fits the wrap column.
type screenLine struct {
	line  int
	start int
	end   int // excludes the newline
	last  bool
}

// ScreenLine describes a visible row for painting.
type ScreenLine struct {
	// Line is the buffer line, or -1 past the end of the buffer.
	Line int

	// Start and End delimit the row's text. End excludes the newline.
	Start int
	End   int

	// LastSubregion is set on the final row of a buffer line.
	LastSubregion bool
}

// Cell is one rune of a row and the cells it covers.
type Cell struct {
	Offset int
	Rune   rune
	Col    int
	Width  int
}

// cells returns how many cells r covers when it starts at col.
func (t *TextArea) cells(r rune, col int) int {
	if r == '\t' {
		ts := t.TabSize()
		return ts - col%ts
	}
	return runewidth.RuneWidth(r)
}

func (t *TextArea) screenLines() []screenLine {
	if t.layoutValid && t.layoutRev == t.buf.Revision() {
		return t.layout
	}

	t.layout = t.layout[:0]
	for line := 0; line < t.buf.LineCount(); line++ {
		start := t.buf.LineStartOffset(line)
		text := []rune(t.buf.LineText(line))

		sub, col := 0, 0
		for i, r := range text {
			w := t.cells(r, col)
			if t.wrapColumn > 0 && i > sub && col+w > t.wrapColumn {
				t.layout = append(t.layout, screenLine{line: line, start: start + sub, end: start + i})
				sub, col = i, 0
				w = t.cells(r, 0)
			}
			col += w
		}
		t.layout = append(t.layout, screenLine{line: line, start: start + sub, end: start + len(text), last: true})
	}

	t.layoutRev = t.buf.Revision()
	t.layoutValid = true
	return t.layout
}

func (t *TextArea) invalidateLayout() {
	t.layoutValid = false
	t.InvalidateAll()
}

// indexOfOffset returns the layout row holding offset. The offset at the
// end of a wrapped row belongs to the row after it.
func indexOfOffset(lines []screenLine, offset int) int {
	i := sort.Search(len(lines), func(i int) bool {
		return lines[i].start > offset
	})
	if i == 0 {
		return 0
	}
	return i - 1
}

// rowCells walks the runes of row, calling fn with each rune's offset and
// cell span until fn returns false.
func (t *TextArea) rowCells(row screenLine, fn func(off int, r rune, col, w int) bool) {
	text := []rune(t.buf.LineText(row.line))
	lineStart := t.buf.LineStartOffset(row.line)
	col := 0
	for off := row.start; off < row.end; off++ {
		r := text[off-lineStart]
		w := t.cells(r, col)
		if !fn(off, r, col, w) {
			return
		}
		col += w
	}
}

// columnOf returns the cell column of offset within row.
func (t *TextArea) columnOf(row screenLine, offset int) int {
	col := 0
	t.rowCells(row, func(off int, _ rune, c, w int) bool {
		if off >= offset {
			col = c
			return false
		}
		col = c + w
		return true
	})
	return col
}

// lineColumn returns the cell column of offset from the start of its
// buffer line, ignoring wrapping.
func (t *TextArea) lineColumn(offset int) int {
	line := t.buf.LineOfOffset(offset)
	start := t.buf.LineStartOffset(line)
	col := 0
	for i, r := range []rune(t.buf.LineText(line)) {
		if start+i >= offset {
			break
		}
		col += t.cells(r, col)
	}
	return col
}

// XYToOffset returns the offset under the pixel (x, y). With round the
// nearest character boundary wins; otherwise the character under x. Points
// above or below the viewport clamp to its first or last screen line.
func (t *TextArea) XYToOffset(x, y int, round bool) int {
	lines := t.screenLines()
	sl := y / t.lineHeight
	if y < 0 {
		sl = 0
	}
	if t.rows > 0 {
		sl = min(sl, t.LastScreenLine())
	}
	row := lines[clamp(t.scrollTop+sl, 0, len(lines)-1)]

	px := x - t.hOffset
	result := -1
	t.rowCells(row, func(off int, _ rune, col, w int) bool {
		left := col * t.charWidth
		right := (col + w) * t.charWidth
		if round {
			if 2*px < left+right {
				result = off
			}
		} else if px < right {
			result = off
		}
		return result < 0
	})
	if result >= 0 {
		return result
	}
	if !row.last && row.end > row.start {
		// stay on this row
		return row.end - 1
	}
	return row.end
}

// OffsetToXY returns the pixel at the left edge of the character at
// offset. Rows above the viewport have negative y.
func (t *TextArea) OffsetToXY(offset int) mouse.Position {
	lines := t.screenLines()
	offset = clamp(offset, 0, t.buf.Len())
	i := indexOfOffset(lines, offset)
	return mouse.Position{
		X: t.columnOf(lines[i], offset)*t.charWidth + t.hOffset,
		Y: (i - t.scrollTop) * t.lineHeight,
	}
}

// ScreenLineOfOffset returns the visible screen line holding offset, or
// -1 when it is scrolled out of view.
func (t *TextArea) ScreenLineOfOffset(offset int) int {
	lines := t.screenLines()
	sl := indexOfOffset(lines, clamp(offset, 0, t.buf.Len())) - t.scrollTop
	if sl < 0 || sl > t.LastScreenLine() {
		return -1
	}
	return sl
}

// ScreenLineEndOffset returns the offset just past screen line sl. For the
// last subregion of a line this is past the newline. It returns -1 for
// rows without text.
func (t *TextArea) ScreenLineEndOffset(sl int) int {
	lines := t.screenLines()
	i := t.scrollTop + sl
	if sl < 0 || i >= len(lines) {
		return -1
	}
	if lines[i].last {
		return t.buf.LineEndOffset(lines[i].line)
	}
	return lines[i].end
}

// ScreenLineInfo describes visible screen line sl. Rows past the end of
// the buffer have Line -1 and count as last subregions.
func (t *TextArea) ScreenLineInfo(sl int) mouse.LineInfo {
	lines := t.screenLines()
	i := t.scrollTop + sl
	switch {
	case sl < 0:
		return mouse.LineInfo{Line: -1}
	case i >= len(lines):
		return mouse.LineInfo{Line: -1, LastSubregion: true}
	default:
		return mouse.LineInfo{Line: lines[i].line, LastSubregion: lines[i].last}
	}
}

// LastScreenLine returns the index of the last visible screen line.
func (t *TextArea) LastScreenLine() int {
	if t.rows > 0 {
		return t.rows - 1
	}
	if n := len(t.screenLines()) - t.scrollTop - 1; n > 0 {
		return n
	}
	return 0
}

// ScreenLineCount returns the number of rows in the whole layout.
func (t *TextArea) ScreenLineCount() int {
	return len(t.screenLines())
}

func (t *TextArea) CharWidth() int {
	return t.charWidth
}

func (t *TextArea) LineHeight() int {
	return t.lineHeight
}

// HorizontalOffset returns the horizontal scroll in pixels. It is zero or
// negative.
func (t *TextArea) HorizontalOffset() int {
	return t.hOffset
}

// SetHorizontalOffset scrolls horizontally. Positive values are clamped
// to zero.
func (t *TextArea) SetHorizontalOffset(px int) {
	if px > 0 {
		px = 0
	}
	if px != t.hOffset {
		t.hOffset = px
		t.InvalidateAll()
	}
}

// FirstScreenLine returns the layout row shown at the top.
func (t *TextArea) FirstScreenLine() int {
	return t.scrollTop
}

// ScrollTo makes layout row first the top row.
func (t *TextArea) ScrollTo(first int) {
	first = clamp(first, 0, len(t.screenLines())-1)
	if first != t.scrollTop {
		t.scrollTop = first
		t.InvalidateAll()
	}
}

// ScrollBy scrolls by n rows.
func (t *TextArea) ScrollBy(n int) {
	t.ScrollTo(t.scrollTop + n)
}

// SetRows changes the number of visible rows.
func (t *TextArea) SetRows(rows int) {
	if rows < 0 {
		rows = 0
	}
	t.rows = rows
	t.InvalidateAll()
}

// SetWrapColumn changes the soft wrap column. Zero disables wrapping.
func (t *TextArea) SetWrapColumn(cols int) {
	if cols < 0 {
		cols = 0
	}
	if cols != t.wrapColumn {
		t.wrapColumn = cols
		t.invalidateLayout()
	}
}

// WrapColumn returns the soft wrap column.
func (t *TextArea) WrapColumn() int {
	return t.wrapColumn
}

func (t *TextArea) scrollToCaret(electric bool) {
	if t.rows <= 0 {
		return
	}
	lines := t.screenLines()
	i := indexOfOffset(lines, t.caret)

	margin := 0
	if electric {
		margin = min(t.electricScroll, (t.rows-1)/2)
	}
	switch {
	case i < t.scrollTop+margin:
		t.ScrollTo(max(i-margin, 0))
	case i > t.scrollTop+t.rows-1-margin:
		t.ScrollTo(i - (t.rows - 1 - margin))
	}
}

// VisibleScreenLines returns the rows in the viewport, top to bottom.
// Rows past the end of the buffer are included when the viewport has a
// fixed height.
func (t *TextArea) VisibleScreenLines() []ScreenLine {
	lines := t.screenLines()
	n := t.LastScreenLine() + 1
	out := make([]ScreenLine, 0, n)
	for sl := 0; sl < n; sl++ {
		i := t.scrollTop + sl
		if i >= len(lines) {
			out = append(out, ScreenLine{Line: -1, Start: -1, End: -1, LastSubregion: true})
			continue
		}
		row := lines[i]
		out = append(out, ScreenLine{Line: row.line, Start: row.start, End: row.end, LastSubregion: row.last})
	}
	return out
}

// Cells returns the runes of a visible row with their cell columns.
func (t *TextArea) Cells(sl ScreenLine) []Cell {
	if sl.Line < 0 {
		return nil
	}
	row := screenLine{line: sl.Line, start: sl.Start, end: sl.End, last: sl.LastSubregion}
	var out []Cell
	t.rowCells(row, func(off int, r rune, col, w int) bool {
		out = append(out, Cell{Offset: off, Rune: r, Col: col, Width: w})
		return true
	})
	return out
}
