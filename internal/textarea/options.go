package textarea

// Option configures a TextArea.
type Option func(*TextArea)

// WithFeatures sets the gesture preferences.
func WithFeatures(f Features) Option {
	return func(t *TextArea) {
		t.features = f
	}
}

// WithCharMetrics sets the size of a cell in pixels. Non-positive values
// are ignored.
func WithCharMetrics(charWidth, lineHeight int) Option {
	return func(t *TextArea) {
		if charWidth > 0 {
			t.charWidth = charWidth
		}
		if lineHeight > 0 {
			t.lineHeight = lineHeight
		}
	}
}

// WithWrapColumn soft-wraps lines wider than cols cells. Zero disables
// wrapping.
func WithWrapColumn(cols int) Option {
	return func(t *TextArea) {
		if cols >= 0 {
			t.wrapColumn = cols
		}
	}
}

// WithRows sets the number of visible screen lines. Zero shows every line.
func WithRows(rows int) Option {
	return func(t *TextArea) {
		if rows >= 0 {
			t.rows = rows
		}
	}
}

// WithTabSize sets the tab width used when the buffer has no tabSize
// property.
func WithTabSize(n int) Option {
	return func(t *TextArea) {
		if n > 0 {
			t.tabSize = n
		}
	}
}

// WithNoWordSep sets the extra word characters used when the buffer has
// no noWordSep property.
func WithNoWordSep(chars string) Option {
	return func(t *TextArea) {
		t.noWordSep = chars
	}
}

// WithElectricScroll keeps n lines of context around the caret when it
// scrolls into view.
func WithElectricScroll(n int) Option {
	return func(t *TextArea) {
		if n >= 0 {
			t.electricScroll = n
		}
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(l Logger) Option {
	return func(t *TextArea) {
		if l != nil {
			t.logger = l
		}
	}
}
