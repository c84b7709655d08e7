package textutil

import "strings"

// CreateWhiteSpace returns a run of whitespace spanning width columns.
// With tabSize <= 0 the run is all spaces; otherwise it uses as many tabs
// as fit and pads the remainder with spaces.
func CreateWhiteSpace(width, tabSize int) string {
	if width <= 0 {
		return ""
	}
	if tabSize <= 0 {
		return strings.Repeat(" ", width)
	}
	return strings.Repeat("\t", width/tabSize) + strings.Repeat(" ", width%tabSize)
}
