package app

import (
	"unicode/utf8"

	"github.com/dshills/gesture/internal/input/mouse"
	"github.com/dshills/gesture/internal/renderer/backend"
)

// wheelLines is how many rows one wheel notch scrolls.
const wheelLines = 3

// handleMouse feeds decoded gestures to the interpreter. While the popup
// menu is open a press picks an item, or closes the menu and then acts on
// the text as usual.
func (app *Application) handleMouse(ev backend.Event) error {
	m := ev.Mouse
	app.metrics.RecordMouse(m)

	if app.popup.IsOpen() {
		if m.Action != mouse.ActionPress {
			return nil
		}
		if i, ok := app.popup.ItemAt(m.Position.X, m.Position.Y); ok {
			app.activate(i)
			return nil
		}
		app.popup.Close()
		app.textArea.InvalidateAll()
	}

	switch m.Action {
	case mouse.ActionPress:
		if m.Position.Y >= app.textRows() {
			return nil
		}
		app.interp.OnPress(m)
	case mouse.ActionDrag:
		app.interp.OnDrag(m)
	case mouse.ActionRelease:
		app.interp.OnRelease(m)
	}
	return nil
}

// handleKey processes keyboard input.
func (app *Application) handleKey(ev backend.Event) error {
	if ev.Key == backend.KeyCtrlQ {
		return ErrQuit
	}
	if app.popup.IsOpen() {
		app.handlePopupKey(ev)
		return nil
	}

	ta := app.textArea
	switch ev.Key {
	case backend.KeyCtrlC:
		app.runAction("Copy", app.copySelection)
	case backend.KeyCtrlV:
		app.runAction("Paste", app.paste)
	case backend.KeyCtrlA:
		app.runAction("Select All", app.selectAll)
	case backend.KeyF10:
		pos := ta.OffsetToXY(ta.Caret())
		app.openPopup(pos.X, pos.Y)
	case backend.KeyEscape:
		ta.SelectNone()
	case backend.KeyLeft:
		app.moveCaret(ta.Caret() - 1)
	case backend.KeyRight:
		app.moveCaret(ta.Caret() + 1)
	case backend.KeyUp, backend.KeyDown:
		app.moveCaretVertically(ev.Key == backend.KeyDown)
	case backend.KeyHome:
		app.moveCaret(ta.LineStartOffset(ta.CaretLine()))
	case backend.KeyEnd:
		line := ta.CaretLine()
		app.moveCaret(ta.LineStartOffset(line) + ta.LineLength(line))
	case backend.KeyPageUp:
		ta.ScrollBy(-app.textRows())
	case backend.KeyPageDown:
		ta.ScrollBy(app.textRows())
	case backend.KeyEnter:
		return app.insertOrReport("\n")
	case backend.KeyTab:
		return app.insertOrReport("\t")
	case backend.KeyBackspace:
		app.removeOrReport(ta.Caret()-1, ta.Caret())
	case backend.KeyDelete:
		app.removeOrReport(ta.Caret(), ta.Caret()+1)
	case backend.KeyRune:
		if ev.Mod.HasCtrl() || ev.Mod.HasAlt() {
			return nil
		}
		return app.insertOrReport(string(ev.Rune))
	}
	return nil
}

func (app *Application) handlePopupKey(ev backend.Event) {
	switch ev.Key {
	case backend.KeyUp:
		app.popup.Move(-1)
	case backend.KeyDown:
		app.popup.Move(1)
	case backend.KeyEnter:
		app.activate(app.popup.selected)
	default:
		app.popup.Close()
	}
	app.textArea.InvalidateAll()
}

// openPopup shows the popup menu next to the pixel (x, y).
func (app *Application) openPopup(x, y int) {
	w, h := 80, 24
	if app.backend != nil {
		w, h = app.backend.Size()
	}
	app.popup.Open(x, y+1, w, h)
	app.metrics.RecordPopup()
	app.textArea.InvalidateAll()
}

// runAction runs a popup action from the keyboard.
func (app *Application) runAction(label string, fn func() error) {
	if err := fn(); err != nil {
		app.setStatus("%s: %v", label, err)
	}
}

// moveCaret moves the caret and drops the selection, like a plain click.
func (app *Application) moveCaret(offset int) {
	app.textArea.SelectNone()
	app.textArea.MoveCaretPosition(offset, true)
}

func (app *Application) moveCaretVertically(down bool) {
	ta := app.textArea
	pos := ta.OffsetToXY(ta.Caret())
	y := pos.Y - ta.LineHeight()
	if down {
		y = pos.Y + ta.LineHeight()
	}
	if y < 0 && ta.FirstScreenLine() > 0 {
		ta.ScrollBy(-1)
		y = 0
	}
	app.moveCaret(ta.XYToOffset(pos.X, y, false))
}

// insertAtCaret inserts text at the caret and moves the caret past it.
func (app *Application) insertAtCaret(text string) error {
	ta := app.textArea
	caret := ta.Caret()
	if err := ta.Insert(caret, text); err != nil {
		return err
	}
	ta.MoveCaretPosition(caret+utf8.RuneCountInString(text), true)
	return nil
}

func (app *Application) insertOrReport(text string) error {
	if err := app.insertAtCaret(text); err != nil {
		app.setStatus("insert: %v", err)
		app.backend.Beep()
	}
	return nil
}

// removeOrReport removes [start, end) and leaves the caret at start.
func (app *Application) removeOrReport(start, end int) {
	ta := app.textArea
	if start < 0 || end > ta.Buffer().Len() {
		app.backend.Beep()
		return
	}
	if err := ta.Buffer().Remove(start, end); err != nil {
		app.setStatus("delete: %v", err)
		app.backend.Beep()
		return
	}
	ta.InvalidateAll()
	ta.MoveCaretPosition(start, true)
}
