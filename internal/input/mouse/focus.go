package mouse

// focused is the widget that last took focus from a press. Written on
// every non-quick-copy press, last writer wins.
var focused Host

// Focused returns the widget that most recently took focus through a
// press, or nil.
//
// Not safe for concurrent use; call it from the UI goroutine only.
func Focused() Host {
	return focused
}

// SetFocused records h as the focused widget.
//
// Not safe for concurrent use; call it from the UI goroutine only.
func SetFocused(h Host) {
	focused = h
}
