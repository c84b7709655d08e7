// Package buffer provides the text buffer behind a text area.
//
// Offsets are rune indexes into the whole text, which is what pointer
// handling works in: a click resolves to a column on a screen line, and a
// column counts runes, not bytes.
//
// Line ends follow the text area convention: LineEndOffset returns the
// offset just past the line's newline. The last line has no real newline,
// so its end offset is Len()+1, one past the end of the buffer.
//
//	buf := buffer.NewBufferFromString("one\ntwo")
//	buf.LineStartOffset(1) // 4
//	buf.LineEndOffset(0)   // 4
//	buf.LineEndOffset(1)   // 8
//
// All methods are safe for concurrent use; a buffer may be filled by a
// loader goroutine while the UI goroutine polls IsLoading.
package buffer
