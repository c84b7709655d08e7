package buffer

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
)

// Errors returned by buffer operations.
var (
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrRangeInvalid     = errors.New("invalid range")
	ErrReadOnly         = errors.New("buffer is read-only")
	ErrLoading          = errors.New("buffer is loading")
)

// Listener is notified after the buffer content changes. Calls happen on
// the goroutine that made the change, after the buffer lock is released.
type Listener interface {
	ContentInserted(offset, length int)
	ContentRemoved(offset, length int)
}

// Buffer holds text as runes with a line start index.
type Buffer struct {
	mu sync.RWMutex

	text       []rune
	lineStarts []int

	loading  bool
	readOnly bool
	revision uint64

	props     map[string]string
	listeners []Listener
}

// NewBuffer creates a new empty buffer.
func NewBuffer(opts ...Option) *Buffer {
	b := &Buffer{
		lineStarts: []int{0},
		props:      make(map[string]string),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewBufferFromString creates a buffer with initial content.
func NewBufferFromString(s string, opts ...Option) *Buffer {
	b := NewBuffer(opts...)
	b.setText(normalizeLineEndings(s))
	return b
}

// Load replaces the buffer content with everything read from r. The buffer
// reports IsLoading for the duration of the read.
func (b *Buffer) Load(r io.Reader) error {
	b.SetLoading(true)
	defer b.SetLoading(false)

	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("loading buffer: %w", err)
	}

	b.mu.Lock()
	old := len(b.text)
	b.setText(normalizeLineEndings(string(data)))
	n := len(b.text)
	b.revision++
	listeners := b.listeners
	b.mu.Unlock()

	for _, l := range listeners {
		l.ContentRemoved(0, old)
		l.ContentInserted(0, n)
	}
	return nil
}

func normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// setText replaces the content. Caller holds the write lock or owns b.
func (b *Buffer) setText(s string) {
	b.text = []rune(s)
	b.reindex()
}

func (b *Buffer) reindex() {
	b.lineStarts = b.lineStarts[:0]
	b.lineStarts = append(b.lineStarts, 0)
	for i, r := range b.text {
		if r == '\n' {
			b.lineStarts = append(b.lineStarts, i+1)
		}
	}
}

// AddListener registers a change listener.
func (b *Buffer) AddListener(l Listener) {
	if l == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners = append(b.listeners, l)
}

// IsLoading reports whether a Load is in progress.
func (b *Buffer) IsLoading() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.loading
}

// SetLoading sets the loading state.
func (b *Buffer) SetLoading(loading bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.loading = loading
}

// IsReadOnly reports whether edits are rejected.
func (b *Buffer) IsReadOnly() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.readOnly
}

// SetReadOnly sets the read-only flag.
func (b *Buffer) SetReadOnly(readOnly bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.readOnly = readOnly
}

// Property returns a string property, or "" when unset.
func (b *Buffer) Property(name string) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.props[name]
}

// SetProperty sets a string property.
func (b *Buffer) SetProperty(name, value string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.props[name] = value
}

// Revision returns a counter bumped by every change.
func (b *Buffer) Revision() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revision
}

// Text returns the full buffer content.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return string(b.text)
}

// TextRange returns the text between two offsets.
func (b *Buffer) TextRange(start, end int) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if start < 0 || end > len(b.text) {
		return "", ErrOffsetOutOfRange
	}
	if start > end {
		return "", ErrRangeInvalid
	}
	return string(b.text[start:end]), nil
}

// Len returns the number of runes in the buffer.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.text)
}

// IsEmpty returns true if the buffer holds no text.
func (b *Buffer) IsEmpty() bool {
	return b.Len() == 0
}

// LineCount returns the number of lines. An empty buffer has one line.
func (b *Buffer) LineCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.lineStarts)
}

// LineOfOffset returns the line containing offset. Offsets outside the
// buffer are clamped.
func (b *Buffer) LineOfOffset(offset int) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lineOfOffset(offset)
}

func (b *Buffer) lineOfOffset(offset int) int {
	if offset <= 0 {
		return 0
	}
	// first line starting after offset, minus one
	i := sort.Search(len(b.lineStarts), func(i int) bool {
		return b.lineStarts[i] > offset
	})
	return i - 1
}

func (b *Buffer) clampLine(line int) int {
	if line < 0 {
		return 0
	}
	if line >= len(b.lineStarts) {
		return len(b.lineStarts) - 1
	}
	return line
}

// LineStartOffset returns the offset of the first rune of line.
func (b *Buffer) LineStartOffset(line int) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lineStarts[b.clampLine(line)]
}

// LineEndOffset returns the offset just past the newline ending line. For
// the last line this is Len()+1.
func (b *Buffer) LineEndOffset(line int) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lineEnd(b.clampLine(line))
}

func (b *Buffer) lineEnd(line int) int {
	if line+1 < len(b.lineStarts) {
		return b.lineStarts[line+1]
	}
	return len(b.text) + 1
}

// LineLength returns the number of runes on line, excluding the newline.
func (b *Buffer) LineLength(line int) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	line = b.clampLine(line)
	return b.lineEnd(line) - b.lineStarts[line] - 1
}

// LineText returns the text of line without its newline.
func (b *Buffer) LineText(line int) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	line = b.clampLine(line)
	start := b.lineStarts[line]
	return string(b.text[start : b.lineEnd(line)-1])
}

// Insert inserts text at offset.
func (b *Buffer) Insert(offset int, text string) error {
	runes := []rune(normalizeLineEndings(text))

	b.mu.Lock()
	if err := b.checkEditable(); err != nil {
		b.mu.Unlock()
		return err
	}
	if offset < 0 || offset > len(b.text) {
		b.mu.Unlock()
		return fmt.Errorf("insert at %d: %w", offset, ErrOffsetOutOfRange)
	}
	if len(runes) == 0 {
		b.mu.Unlock()
		return nil
	}

	next := make([]rune, 0, len(b.text)+len(runes))
	next = append(next, b.text[:offset]...)
	next = append(next, runes...)
	next = append(next, b.text[offset:]...)
	b.text = next
	b.reindex()
	b.revision++
	listeners := b.listeners
	b.mu.Unlock()

	for _, l := range listeners {
		l.ContentInserted(offset, len(runes))
	}
	return nil
}

// Remove deletes the text between start and end.
func (b *Buffer) Remove(start, end int) error {
	b.mu.Lock()
	if err := b.checkEditable(); err != nil {
		b.mu.Unlock()
		return err
	}
	if start < 0 || end > len(b.text) {
		b.mu.Unlock()
		return fmt.Errorf("remove [%d,%d): %w", start, end, ErrOffsetOutOfRange)
	}
	if start > end {
		b.mu.Unlock()
		return ErrRangeInvalid
	}
	if start == end {
		b.mu.Unlock()
		return nil
	}

	b.text = append(b.text[:start:start], b.text[end:]...)
	b.reindex()
	b.revision++
	listeners := b.listeners
	b.mu.Unlock()

	for _, l := range listeners {
		l.ContentRemoved(start, end-start)
	}
	return nil
}

func (b *Buffer) checkEditable() error {
	if b.readOnly {
		return ErrReadOnly
	}
	if b.loading {
		return ErrLoading
	}
	return nil
}
