package event

import (
	"sync/atomic"

	"github.com/dshills/gesture/internal/event/topic"
)

// Subscription is a registered handler for a topic pattern.
type Subscription struct {
	id      string
	pattern topic.Topic
	handler Handler
	active  atomic.Bool
}

func newSubscription(id string, pattern topic.Topic, h Handler) *Subscription {
	s := &Subscription{
		id:      id,
		pattern: pattern,
		handler: h,
	}
	s.active.Store(true)
	return s
}

// ID returns the unique subscription identifier.
func (s *Subscription) ID() string {
	return s.id
}

// Topic returns the subscribed topic pattern.
func (s *Subscription) Topic() topic.Topic {
	return s.pattern
}

// IsActive reports whether the subscription still receives events.
func (s *Subscription) IsActive() bool {
	return s.active.Load()
}

func (s *Subscription) cancel() {
	s.active.Store(false)
}
