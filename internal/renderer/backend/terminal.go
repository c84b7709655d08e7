package backend

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Terminal implements Backend using tcell for terminal output.
type Terminal struct {
	screen  tcell.Screen
	decoder *MouseDecoder
	mu      sync.Mutex
}

// TerminalOption configures a Terminal.
type TerminalOption func(*Terminal)

// WithScreen uses screen instead of the real terminal. Tests pass a
// tcell.SimulationScreen.
func WithScreen(screen tcell.Screen) TerminalOption {
	return func(t *Terminal) {
		t.screen = screen
	}
}

// WithClickTiming sets the multi-click interval and distance in cells.
func WithClickTiming(interval time.Duration, distance int) TerminalOption {
	return func(t *Terminal) {
		t.decoder = NewMouseDecoder(interval, distance)
	}
}

// NewTerminal creates a new terminal backend.
func NewTerminal(opts ...TerminalOption) (*Terminal, error) {
	t := &Terminal{}
	for _, opt := range opts {
		opt(t)
	}
	if t.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, err
		}
		t.screen = screen
	}
	if t.decoder == nil {
		t.decoder = NewMouseDecoder(DefaultClickInterval, DefaultClickDistance)
	}
	return t, nil
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}

	// Button and drag reports are enough to recognize gestures; plain
	// motion would only be filtered out again.
	t.screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	return nil
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.DisableMouse()
	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

func (t *Terminal) SetCell(x, y int, cell Cell) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.SetContent(x, y, cell.Rune, nil, convertStyle(cell.Style))
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

func (t *Terminal) Sync() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Sync()
}

func (t *Terminal) ShowCursor(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.ShowCursor(x, y)
}

func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.HideCursor()
}

func (t *Terminal) SetCursorStyle(style CursorStyle) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var tcellStyle tcell.CursorStyle
	switch style {
	case CursorBlock:
		tcellStyle = tcell.CursorStyleSteadyBlock
	case CursorUnderline:
		tcellStyle = tcell.CursorStyleSteadyUnderline
	case CursorBar:
		tcellStyle = tcell.CursorStyleSteadyBar
	case CursorHidden:
		t.screen.HideCursor()
		return
	}
	t.screen.SetCursorStyle(tcellStyle)
}

// PollEvent waits for the next event. Mouse reports that carry no gesture
// are returned as EventNone.
func (t *Terminal) PollEvent() Event {
	ev := t.screen.PollEvent()
	if ev == nil {
		return Event{Type: EventClosed}
	}
	return t.convertEvent(ev)
}

func (t *Terminal) PostEvent(event Event) error {
	var ev tcell.Event
	switch event.Type {
	case EventKey:
		ev = tcell.NewEventKey(convertToTcellKey(event.Key), event.Rune, convertToTcellMod(event.Mod))
	case EventInterrupt:
		ev = tcell.NewEventInterrupt(event.Data)
	default:
		return ErrUnsupportedEvent
	}
	if err := t.screen.PostEvent(ev); err != nil {
		return ErrEventQueueFull
	}
	return nil
}

func (t *Terminal) Beep() {
	t.mu.Lock()
	defer t.mu.Unlock()

	_ = t.screen.Beep() // best-effort; terminal may not support beep
}

// convertEvent converts tcell events to our Event type. The mouse decoder
// is only touched from the polling goroutine.
func (t *Terminal) convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return Event{
			Type: EventKey,
			Key:  convertKey(e.Key()),
			Rune: e.Rune(),
			Mod:  convertMod(e.Modifiers()),
		}

	case *tcell.EventMouse:
		if delta := wheelDelta(e.Buttons()); delta != 0 {
			return Event{Type: EventWheel, WheelDelta: delta, Mod: convertMod(e.Modifiers())}
		}
		m, ok := t.decoder.Decode(e)
		if !ok {
			return Event{Type: EventNone}
		}
		return Event{Type: EventMouse, Mouse: m, Mod: m.Modifiers}

	case *tcell.EventResize:
		w, h := e.Size()
		return Event{
			Type:   EventResize,
			Width:  w,
			Height: h,
		}

	case *tcell.EventInterrupt:
		return Event{Type: EventInterrupt, Data: e.Data()}

	default:
		return Event{Type: EventNone}
	}
}

// convertStyle converts our Style to tcell.Style.
func convertStyle(s Style) tcell.Style {
	style := tcell.StyleDefault

	if s.Fg != ColorDefault {
		style = style.Foreground(tcell.PaletteColor(s.Fg.Index()))
	}
	if s.Bg != ColorDefault {
		style = style.Background(tcell.PaletteColor(s.Bg.Index()))
	}

	if s.Attrs.Has(AttrBold) {
		style = style.Bold(true)
	}
	if s.Attrs.Has(AttrDim) {
		style = style.Dim(true)
	}
	if s.Attrs.Has(AttrUnderline) {
		style = style.Underline(true)
	}
	if s.Attrs.Has(AttrReverse) {
		style = style.Reverse(true)
	}

	return style
}
