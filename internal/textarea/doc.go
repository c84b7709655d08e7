// Package textarea implements the text area that mouse gestures drive.
//
// A TextArea couples a buffer.Buffer with a selection.Manager, a caret and
// a monospace layout. It implements mouse.Host, so a mouse.Interpreter can
// move its caret and edit its selections directly.
//
// # Layout
//
// Every rune occupies a whole number of cells: go-runewidth decides the
// width of printable runes and tabs advance to the next tab stop. A cell
// is CharWidth pixels wide and LineHeight pixels tall; a terminal uses
// 1x1. When a wrap column is set, buffer lines longer than it are split
// into several screen lines ("subregions"). Only the last subregion of a
// line is followed by virtual space.
//
// Screen line numbers passed to and returned from the layout methods are
// relative to the first visible screen line, like pixel coordinates.
//
// # Concurrency
//
// A TextArea belongs to the UI goroutine and is not safe for concurrent
// use. The underlying buffer may be shared.
package textarea
