package key

import "strings"

// Modifier is the set of modifier keys held during an input event.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt  // Option on macOS
	ModMeta // Command on macOS
)

// ModNone is the empty set.
const ModNone Modifier = 0

// Has reports whether every key in mod is held.
func (m Modifier) Has(mod Modifier) bool {
	return mod != ModNone && m&mod == mod
}

func (m Modifier) HasShift() bool { return m&ModShift != 0 }
func (m Modifier) HasCtrl() bool  { return m&ModCtrl != 0 }
func (m Modifier) HasAlt() bool   { return m&ModAlt != 0 }
func (m Modifier) HasMeta() bool  { return m&ModMeta != 0 }

// Names in display order: Ctrl, Alt, Shift, Meta.
var names = [...]struct {
	mod         Modifier
	long, short string
}{
	{ModCtrl, "Ctrl", "C"},
	{ModAlt, "Alt", "A"},
	{ModShift, "Shift", "S"},
	{ModMeta, "Meta", "M"},
}

// String returns the held keys joined with "+", as in "Ctrl+Shift".
func (m Modifier) String() string {
	var parts []string
	for _, n := range names {
		if m&n.mod != 0 {
			parts = append(parts, n.long)
		}
	}
	return strings.Join(parts, "+")
}

// ShortString returns the compact form used in test names, as in "C-S".
func (m Modifier) ShortString() string {
	var b strings.Builder
	for _, n := range names {
		if m&n.mod == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('-')
		}
		b.WriteString(n.short)
	}
	return b.String()
}
