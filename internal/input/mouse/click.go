package mouse

import "time"

// ClickCounter derives click counts for toolkits that only report raw
// presses. A press continues the current sequence when it uses the same
// button, lands within maxDistance of the previous press and follows it
// within maxTime. The count stops at 3, so further fast clicks keep
// selecting the line.
type ClickCounter struct {
	maxTime     time.Duration
	maxDistance int

	lastPos    Position
	lastButton ButtonMask
	lastTime   time.Time
	lastCount  int
}

// NewClickCounter creates a click counter.
func NewClickCounter(maxTime time.Duration, maxDistance int) *ClickCounter {
	return &ClickCounter{
		maxTime:     maxTime,
		maxDistance: maxDistance,
	}
}

// Record records a press and returns its click count (1, 2 or 3). A zero
// timestamp is replaced with time.Now().
func (c *ClickCounter) Record(pos Position, button ButtonMask, timestamp time.Time) int {
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	if c.continues(pos, button, timestamp) {
		c.lastCount = min(c.lastCount+1, 3)
	} else {
		c.lastCount = 1
	}

	c.lastPos = pos
	c.lastButton = button
	c.lastTime = timestamp

	return c.lastCount
}

func (c *ClickCounter) continues(pos Position, button ButtonMask, timestamp time.Time) bool {
	if c.lastCount == 0 || c.lastTime.IsZero() {
		return false
	}
	if button != c.lastButton {
		return false
	}

	// negative elapsed means clock skew; start over
	elapsed := timestamp.Sub(c.lastTime)
	if elapsed < 0 || elapsed > c.maxTime {
		return false
	}

	return pos.Distance(c.lastPos) <= c.maxDistance
}

// Reset clears the click sequence.
func (c *ClickCounter) Reset() {
	c.lastCount = 0
	c.lastTime = time.Time{}
	c.lastPos = Position{}
	c.lastButton = ButtonNone
}

// Count returns the last recorded click count.
func (c *ClickCounter) Count() int {
	return c.lastCount
}
