package app

import (
	"sync"
	"unicode/utf8"

	"github.com/atotto/clipboard"
)

// Clipboard is the text clipboard the popup menu copies to and pastes
// from.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// systemClipboard uses the desktop clipboard.
type systemClipboard struct{}

func (systemClipboard) ReadAll() (string, error) { return clipboard.ReadAll() }
func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// memoryClipboard keeps text in process. It stands in when no clipboard
// utility is installed.
type memoryClipboard struct {
	mu   sync.Mutex
	text string
}

func (c *memoryClipboard) ReadAll() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text, nil
}

func (c *memoryClipboard) WriteAll(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = text
	return nil
}

// defaultClipboard returns the system clipboard, or an in-process one
// when the platform has no clipboard support.
func defaultClipboard() Clipboard {
	if clipboard.Unsupported {
		return &memoryClipboard{}
	}
	return systemClipboard{}
}

// menuItem is one entry of the popup menu.
type menuItem struct {
	label  string
	action func(app *Application) error
}

// popupMenu is the context menu opened by a popup trigger.
type popupMenu struct {
	items    []menuItem
	x, y     int
	selected int
	open     bool
}

func newPopupMenu() *popupMenu {
	return &popupMenu{
		items: []menuItem{
			{label: "Copy", action: (*Application).copySelection},
			{label: "Paste", action: (*Application).paste},
			{label: "Select All", action: (*Application).selectAll},
		},
	}
}

// width is the box width: the longest label plus a space on each side.
func (p *popupMenu) width() int {
	w := 0
	for _, it := range p.items {
		if n := utf8.RuneCountInString(it.label); n > w {
			w = n
		}
	}
	return w + 2
}

// Open shows the menu with its corner at (x, y), shifted so it fits a
// screen of the given size.
func (p *popupMenu) Open(x, y, screenW, screenH int) {
	if x+p.width() > screenW {
		x = screenW - p.width()
	}
	if y+len(p.items) > screenH {
		y = screenH - len(p.items)
	}
	p.x, p.y = max(x, 0), max(y, 0)
	p.selected = 0
	p.open = true
}

// Close hides the menu.
func (p *popupMenu) Close() {
	p.open = false
}

// IsOpen reports whether the menu is shown.
func (p *popupMenu) IsOpen() bool {
	return p.open
}

// ItemAt returns the item under screen cell (x, y).
func (p *popupMenu) ItemAt(x, y int) (int, bool) {
	if !p.open || x < p.x || x >= p.x+p.width() {
		return 0, false
	}
	i := y - p.y
	if i < 0 || i >= len(p.items) {
		return 0, false
	}
	return i, true
}

// Move changes the highlighted item, wrapping at either end.
func (p *popupMenu) Move(delta int) {
	n := len(p.items)
	p.selected = ((p.selected+delta)%n + n) % n
}

// activate closes the menu and runs item i.
func (app *Application) activate(i int) {
	item := app.popup.items[i]
	app.popup.Close()
	app.textArea.InvalidateAll()

	if err := item.action(app); err != nil {
		app.setStatus("%s: %v", item.label, err)
		app.logger.Warn("popup %s: %v", item.label, err)
		return
	}
	app.logger.Debug("popup %s", item.label)
}

func (app *Application) copySelection() error {
	text := app.textArea.SelectedText()
	if text == "" {
		return ErrNothingSelected
	}
	if err := app.clipboard.WriteAll(text); err != nil {
		return err
	}
	app.setStatus("copied %d characters", utf8.RuneCountInString(text))
	return nil
}

func (app *Application) paste() error {
	text, err := app.clipboard.ReadAll()
	if err != nil {
		return err
	}
	if text == "" {
		return nil
	}
	return app.insertAtCaret(text)
}

func (app *Application) selectAll() error {
	app.textArea.SelectAll()
	return nil
}
