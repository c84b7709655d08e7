package textutil

import (
	"strings"
	"unicode"
)

type charClass uint8

const (
	classWhitespace charClass = iota
	classWord
	classSymbol
)

// classify reports the class of r. Runes listed in noWordSep count as word
// characters even though they are not letters or digits.
func classify(r rune, noWordSep string) charClass {
	switch {
	case unicode.IsSpace(r):
		return classWhitespace
	case unicode.IsLetter(r), unicode.IsDigit(r), strings.ContainsRune(noWordSep, r):
		return classWord
	default:
		return classSymbol
	}
}

// FindWordStart returns the offset at which the word containing pos starts.
//
// A word is a run of runes of the same class as line[pos]. Symbols only
// form runs when joinNonWordChars is set; otherwise each symbol is a word
// of its own.
func FindWordStart(line []rune, pos int, noWordSep string, joinNonWordChars bool) int {
	if len(line) == 0 {
		return 0
	}
	pos = clamp(pos, 0, len(line)-1)

	class := classify(line[pos], noWordSep)
	for i := pos; i >= 0; i-- {
		c := classify(line[i], noWordSep)
		switch class {
		case classWhitespace, classWord:
			if c != class {
				return i + 1
			}
		case classSymbol:
			if !joinNonWordChars && i != pos {
				return i + 1
			}
			if c != classSymbol {
				return i + 1
			}
		}
	}
	return 0
}

// FindWordEnd returns the offset just past the end of the word containing
// pos-1. Callers pass the offset one past the clicked rune, mirroring
// FindWordStart which takes the clicked rune itself.
func FindWordEnd(line []rune, pos int, noWordSep string, joinNonWordChars bool) int {
	if len(line) == 0 {
		return 0
	}
	if pos != 0 {
		pos--
	}
	pos = clamp(pos, 0, len(line)-1)

	class := classify(line[pos], noWordSep)
	for i := pos; i < len(line); i++ {
		c := classify(line[i], noWordSep)
		switch class {
		case classWhitespace, classWord:
			if c != class {
				return i
			}
		case classSymbol:
			if !joinNonWordChars && i != pos {
				return i
			}
			if c != classSymbol {
				return i
			}
		}
	}
	return len(line)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
