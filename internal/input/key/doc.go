// Package key defines the keyboard modifier state carried by pointer events.
//
// Modifier is a bitset of Shift, Ctrl, Alt and Meta. Mouse events carry
// one so gesture handling can ask which modifiers were held when a button
// went down:
//
//	if ev.Modifiers.HasShift() {
//	    // extend the selection
//	}
//
// On macOS, Alt is the Option key and Meta is the Command key.
package key
