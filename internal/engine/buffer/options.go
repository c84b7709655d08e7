package buffer

// Property names understood by the text area.
const (
	// PropNoWordSep lists non-alphanumeric characters that count as part
	// of a word for double-click selection.
	PropNoWordSep = "noWordSep"

	// PropTabSize is the display width of a tab character.
	PropTabSize = "tabSize"
)

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithReadOnly marks the buffer read-only.
func WithReadOnly(readOnly bool) Option {
	return func(b *Buffer) {
		b.readOnly = readOnly
	}
}

// WithProperty sets a string property on the buffer.
func WithProperty(name, value string) Option {
	return func(b *Buffer) {
		b.props[name] = value
	}
}

// WithListener registers a change listener at construction time.
func WithListener(l Listener) Option {
	return func(b *Buffer) {
		if l != nil {
			b.listeners = append(b.listeners, l)
		}
	}
}
