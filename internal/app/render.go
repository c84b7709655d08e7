package app

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/gesture/internal/renderer/backend"
)

var (
	statusStyle   = backend.Style{Attrs: backend.AttrReverse}
	menuStyle     = backend.Style{Attrs: backend.AttrReverse}
	menuSelStyle  = backend.Style{Attrs: backend.AttrBold}
	selectedStyle = backend.DefaultStyle.Reverse()
)

// render redraws the whole screen.
func (app *Application) render() {
	start := time.Now()
	b := app.backend
	width, height := b.Size()
	ta := app.textArea

	rows := app.textRows()
	for y, row := range ta.VisibleScreenLines() {
		if y >= rows || y >= height {
			break
		}
		app.clearRow(y, width)
		for _, c := range ta.Cells(row) {
			style := backend.DefaultStyle
			if ta.IsSelected(c.Offset) {
				style = selectedStyle
			}
			x := c.Col + ta.HorizontalOffset()
			if c.Rune == '\t' {
				for i := 0; i < c.Width; i++ {
					b.SetCell(x+i, y, backend.Cell{Rune: ' ', Style: style})
				}
				continue
			}
			b.SetCell(x, y, backend.Cell{Rune: c.Rune, Style: style})
		}
	}

	if rows < height {
		app.drawStatus(rows, width)
	}
	if app.popup.IsOpen() {
		app.drawPopup()
	}
	app.placeCursor(rows)

	ta.TakeInvalidLines()
	b.Show()
	app.metrics.RecordRender(time.Since(start))
}

func (app *Application) clearRow(y, width int) {
	for x := 0; x < width; x++ {
		app.backend.SetCell(x, y, backend.EmptyCell)
	}
}

// drawText writes s from (x, y) and returns the column after it.
func (app *Application) drawText(x, y int, s string, style backend.Style) int {
	for _, r := range s {
		app.backend.SetCell(x, y, backend.Cell{Rune: r, Style: style})
		x += runewidth.RuneWidth(r)
	}
	return x
}

// statusLeft describes the file and caret position.
func (app *Application) statusLeft() string {
	ta := app.textArea
	name := "[scratch]"
	if app.opts.File != "" {
		name = filepath.Base(app.opts.File)
	}

	line := ta.CaretLine()
	col := ta.Caret() - ta.LineStartOffset(line)
	s := fmt.Sprintf(" %s  %d:%d", name, line+1, col+1)
	if n := len(ta.Selections()); n > 0 {
		s += fmt.Sprintf("  %d sel", n)
	}
	if app.interp.State().Rectangular(ta) {
		s += "  rect"
	}
	return s
}

func (app *Application) drawStatus(y, width int) {
	for x := 0; x < width; x++ {
		app.backend.SetCell(x, y, backend.Cell{Rune: ' ', Style: statusStyle})
	}
	x := app.drawText(0, y, app.statusLeft(), statusStyle)

	if app.status == "" {
		return
	}
	msg := app.status + " "
	start := width - runewidth.StringWidth(msg)
	if start <= x {
		start = x + 1
	}
	app.drawText(start, y, msg, statusStyle)
}

func (app *Application) drawPopup() {
	p := app.popup
	w := p.width()
	for i, it := range p.items {
		style := menuStyle
		if i == p.selected {
			style = menuSelStyle
		}
		y := p.y + i
		for x := p.x; x < p.x+w; x++ {
			app.backend.SetCell(x, y, backend.Cell{Rune: ' ', Style: style})
		}
		app.drawText(p.x+1, y, it.label, style)
	}
}

// placeCursor shows the caret when it is in view.
func (app *Application) placeCursor(rows int) {
	ta := app.textArea
	b := app.backend

	pos := ta.OffsetToXY(ta.Caret())
	if pos.X < 0 || pos.Y < 0 || pos.Y >= rows || app.popup.IsOpen() {
		b.HideCursor()
		return
	}

	style := backend.CursorBar
	switch {
	case ta.BlockCaretEnabled():
		style = backend.CursorBlock
	case ta.OverwriteEnabled():
		style = backend.CursorUnderline
	}
	b.SetCursorStyle(style)
	b.ShowCursor(pos.X, pos.Y)
}
