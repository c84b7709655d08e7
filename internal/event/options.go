package event

// BusOption configures a Bus.
type BusOption func(*Bus)

// WithPanicHandler sets the function told about recovered handler panics.
func WithPanicHandler(h PanicHandler) BusOption {
	return func(b *Bus) {
		b.panicHandler = h
	}
}
