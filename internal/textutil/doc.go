// Package textutil holds the line-level text scanning used by mouse
// selection: word boundaries for double-click and whitespace runs for
// virtual-space insertion.
//
// Offsets are rune indexes into a single line.
package textutil
