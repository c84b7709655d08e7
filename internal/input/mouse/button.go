package mouse

import (
	"strings"

	"github.com/dshills/gesture/internal/input/key"
)

// ButtonMask is the set of physical buttons held during an event.
type ButtonMask uint8

const (
	// Button1 is the primary button.
	Button1 ButtonMask = 1 << iota
	// Button2 is the middle button (wheel click).
	Button2
	// Button3 is the secondary button.
	Button3
)

// ButtonNone indicates no button.
const ButtonNone ButtonMask = 0

// Has returns true if every button in b is held.
func (m ButtonMask) Has(b ButtonMask) bool {
	return b != 0 && m&b == b
}

// String returns a representation like "1+3".
func (m ButtonMask) String() string {
	if m == ButtonNone {
		return "none"
	}
	var parts []string
	if m.Has(Button1) {
		parts = append(parts, "1")
	}
	if m.Has(Button2) {
		parts = append(parts, "2")
	}
	if m.Has(Button3) {
		parts = append(parts, "3")
	}
	return strings.Join(parts, "+")
}

// Class is the logical button a press stands for once platform
// conventions are applied.
type Class uint8

const (
	// ClassNone indicates no button.
	ClassNone Class = iota
	// ClassLeft is a primary click.
	ClassLeft
	// ClassMiddle is a middle click (quick copy).
	ClassMiddle
	// ClassRight is a secondary click (popup trigger).
	ClassRight
)

// String returns a string representation of the class.
func (c Class) String() string {
	switch c {
	case ClassLeft:
		return "left"
	case ClassMiddle:
		return "middle"
	case ClassRight:
		return "right"
	default:
		return "none"
	}
}

// IsMiddleButton reports whether the buttons and modifiers amount to a
// middle click. On macOS a held Button1 counts as middle only with Alt;
// without Button1 the physical Button2 decides. Elsewhere only Button2
// counts.
func IsMiddleButton(p Platform, b ButtonMask, m key.Modifier) bool {
	if p == PlatformMac && b.Has(Button1) {
		return m.HasAlt()
	}
	return b.Has(Button2)
}

// IsRightButton reports whether the buttons and modifiers amount to a
// right click. On macOS a held Button1 counts as right only with Ctrl;
// without Button1 the physical Button3 decides. Elsewhere only Button3
// counts.
func IsRightButton(p Platform, b ButtonMask, m key.Modifier) bool {
	if p == PlatformMac && b.Has(Button1) {
		return m.HasCtrl()
	}
	return b.Has(Button3)
}

// IsPopupTrigger reports whether ev should open the popup menu. This is
// exactly IsRightButton, independent of whatever the toolkit calls a popup
// trigger.
func IsPopupTrigger(p Platform, ev Event) bool {
	return IsRightButton(p, ev.Buttons, ev.Modifiers)
}

// Classify maps buttons and modifiers to a logical button. Right wins over
// middle when both apply.
func Classify(p Platform, b ButtonMask, m key.Modifier) Class {
	switch {
	case b == ButtonNone:
		return ClassNone
	case IsRightButton(p, b, m):
		return ClassRight
	case IsMiddleButton(p, b, m):
		return ClassMiddle
	default:
		return ClassLeft
	}
}
