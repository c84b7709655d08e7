package backend

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/gesture/internal/input/mouse"
)

// Default click timing used when no other is configured.
const (
	DefaultClickInterval = 400 * time.Millisecond
	DefaultClickDistance = 1
)

// MouseDecoder turns tcell's button-state reports into press, drag and
// release gestures. Terminals only report which buttons are held, so a
// press is a transition from fewer buttons to more, a release is a
// transition to none, and a drag is movement while the set is unchanged.
type MouseDecoder struct {
	clicks  *mouse.ClickCounter
	buttons mouse.ButtonMask
	last    mouse.Position
}

// NewMouseDecoder creates a decoder. Presses of the same button within
// interval and distance cells of each other count as multi-clicks.
func NewMouseDecoder(interval time.Duration, distance int) *MouseDecoder {
	return &MouseDecoder{clicks: mouse.NewClickCounter(interval, distance)}
}

// Held returns the buttons currently held.
func (d *MouseDecoder) Held() mouse.ButtonMask {
	return d.buttons
}

// Decode converts a tcell mouse report. ok is false when the report carries
// no gesture: motion with no buttons held, wheel motion, or a repeated
// report at the same cell.
func (d *MouseDecoder) Decode(ev *tcell.EventMouse) (out mouse.Event, ok bool) {
	x, y := ev.Position()
	pos := mouse.Position{X: x, Y: y}
	held := convertButtons(ev.Buttons())

	out = mouse.Event{
		Position:  pos,
		Modifiers: convertMod(ev.Modifiers()),
		Timestamp: ev.When(),
	}

	prev := d.buttons
	d.buttons = held

	switch {
	case prev == mouse.ButtonNone && held == mouse.ButtonNone:
		return out, false

	case held&^prev != 0:
		out.Action = mouse.ActionPress
		out.Buttons = held
		out.ClickCount = d.clicks.Record(pos, held&^prev, out.Timestamp)

	case held == mouse.ButtonNone:
		out.Action = mouse.ActionRelease
		out.Buttons = prev

	default:
		if pos == d.last && held == prev {
			return out, false
		}
		out.Action = mouse.ActionDrag
		out.Buttons = held
	}

	d.last = pos
	return out, true
}

// Reset forgets held buttons and the click sequence.
func (d *MouseDecoder) Reset() {
	d.buttons = mouse.ButtonNone
	d.clicks.Reset()
}

// convertButtons maps tcell buttons to gesture buttons. tcell numbers the
// secondary button 2 and the middle button 3.
func convertButtons(b tcell.ButtonMask) mouse.ButtonMask {
	var m mouse.ButtonMask
	if b&tcell.Button1 != 0 {
		m |= mouse.Button1
	}
	if b&tcell.Button3 != 0 {
		m |= mouse.Button2
	}
	if b&tcell.Button2 != 0 {
		m |= mouse.Button3
	}
	return m
}

// wheelDelta returns -1 for wheel up, 1 for wheel down and 0 otherwise.
func wheelDelta(b tcell.ButtonMask) int {
	switch {
	case b&tcell.WheelUp != 0:
		return -1
	case b&tcell.WheelDown != 0:
		return 1
	default:
		return 0
	}
}
