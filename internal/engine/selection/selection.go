// Package selection models the text selections of a text area.
//
// A Selection is either a contiguous range of offsets or a rectangle of
// columns spanning the lines between its start and end offsets. Rectangles
// may reach past the end of their lines into virtual space; ExtraStartVirt
// and ExtraEndVirt count those virtual columns.
package selection

import "fmt"

// Selection is an immutable selected region. Start <= End always holds.
type Selection struct {
	Start int
	End   int

	// Rect marks a rectangular (column) selection.
	Rect bool

	// ExtraStartVirt and ExtraEndVirt are virtual columns beyond the end
	// of the start and end lines. Only meaningful for rectangles.
	ExtraStartVirt int
	ExtraEndVirt   int
}

// NewRange creates a contiguous selection between two offsets in either
// order.
func NewRange(a, b int) Selection {
	if a > b {
		a, b = b, a
	}
	return Selection{Start: a, End: b}
}

// NewRect creates a rectangular selection with corners at two offsets.
func NewRect(a, b int) Selection {
	s := NewRange(a, b)
	s.Rect = true
	return s
}

// Len returns the number of offsets covered.
func (s Selection) Len() int {
	return s.End - s.Start
}

// IsEmpty reports whether the selection covers nothing. A rectangle with
// virtual columns is not empty even when its offsets coincide.
func (s Selection) IsEmpty() bool {
	if s.Rect && (s.ExtraStartVirt != 0 || s.ExtraEndVirt != 0) {
		return false
	}
	return s.Start == s.End
}

// Contains reports whether offset lies within the selection, ends included.
func (s Selection) Contains(offset int) bool {
	return offset >= s.Start && offset <= s.End
}

// Overlaps reports whether two selections share any offset.
func (s Selection) Overlaps(o Selection) bool {
	return s.Start < o.End && o.Start < s.End
}

// Shifted returns the selection adjusted for length runes inserted at
// offset. Ends at or after offset move with the insertion.
func (s Selection) Shifted(offset, length int) Selection {
	if s.Start >= offset {
		s.Start += length
	}
	if s.End >= offset {
		s.End += length
	}
	return s
}

// Trimmed returns the selection adjusted for length runes removed at
// offset.
func (s Selection) Trimmed(offset, length int) Selection {
	end := offset + length
	adjust := func(p int) int {
		switch {
		case p >= end:
			return p - length
		case p > offset:
			return offset
		default:
			return p
		}
	}
	s.Start = adjust(s.Start)
	s.End = adjust(s.End)
	return s
}

// String returns a debug representation like "[3,9)" or "rect[3,9)+2".
func (s Selection) String() string {
	if !s.Rect {
		return fmt.Sprintf("[%d,%d)", s.Start, s.End)
	}
	out := fmt.Sprintf("rect[%d,%d)", s.Start, s.End)
	if s.ExtraStartVirt != 0 {
		out += fmt.Sprintf("-%d", s.ExtraStartVirt)
	}
	if s.ExtraEndVirt != 0 {
		out += fmt.Sprintf("+%d", s.ExtraEndVirt)
	}
	return out
}
