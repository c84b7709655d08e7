package event

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dshills/gesture/internal/event/topic"
)

// Bus delivers events synchronously to matching subscriptions. It is safe
// for concurrent use; handlers may subscribe and unsubscribe while an
// event is being delivered.
type Bus struct {
	mu   sync.RWMutex
	subs []*Subscription

	panicHandler PanicHandler

	published atomic.Uint64
	delivered atomic.Uint64
	failed    atomic.Uint64
	panicked  atomic.Uint64
}

// Stats are delivery counters.
type Stats struct {
	EventsPublished   uint64
	EventsDelivered   uint64
	HandlerErrors     uint64
	HandlerPanics     uint64
	ActiveSubscribers int
}

// NewBus creates an event bus.
func NewBus(opts ...BusOption) *Bus {
	b := &Bus{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Subscribe registers handler for events whose topic matches pattern.
func (b *Bus) Subscribe(pattern topic.Topic, handler Handler) (*Subscription, error) {
	if handler == nil {
		return nil, ErrNilHandler
	}
	if !pattern.IsValid() {
		return nil, fmt.Errorf("subscribe %q: %w", pattern, ErrInvalidTopic)
	}

	sub := newSubscription(uuid.NewString(), pattern, handler)
	b.mu.Lock()
	b.subs = append(b.subs, sub)
	b.mu.Unlock()
	return sub, nil
}

// SubscribeFunc is Subscribe for a plain function.
func (b *Bus) SubscribeFunc(pattern topic.Topic, fn HandlerFunc) (*Subscription, error) {
	if fn == nil {
		return nil, ErrNilHandler
	}
	return b.Subscribe(pattern, fn)
}

// Unsubscribe removes a subscription. Events already being delivered may
// still reach it.
func (b *Bus) Unsubscribe(sub *Subscription) error {
	if sub == nil {
		return ErrInvalidSubscription
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for i, s := range b.subs {
		if s == sub {
			sub.cancel()
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return nil
		}
	}
	return ErrSubscriptionNotFound
}

// Publish delivers event to every matching subscription on the calling
// goroutine. All handlers run even when some fail; their errors are
// returned joined. A cancelled context stops delivery before the next
// handler.
func (b *Bus) Publish(ctx context.Context, event any) error {
	tp, ok := event.(TopicProvider)
	if !ok || tp.EventTopic() == "" {
		return ErrInvalidEvent
	}
	t := tp.EventTopic()
	if t.IsWildcard() || !t.IsValid() {
		return fmt.Errorf("publish %q: %w", t, ErrInvalidTopic)
	}

	b.mu.RLock()
	var matched []*Subscription
	for _, s := range b.subs {
		if t.Matches(s.pattern) {
			matched = append(matched, s)
		}
	}
	b.mu.RUnlock()

	b.published.Add(1)

	var errs []error
	for _, s := range matched {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if !s.IsActive() {
			continue
		}
		if err := b.deliver(ctx, s, t, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (b *Bus) deliver(ctx context.Context, s *Subscription, t topic.Topic, event any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			b.panicked.Add(1)
			perr := &PanicError{
				SubscriptionID: s.id,
				Topic:          t.String(),
				Value:          r,
				Stack:          string(debug.Stack()),
			}
			if b.panicHandler != nil {
				b.panicHandler(perr)
			}
			err = perr
		}
	}()

	if herr := s.handler.Handle(ctx, event); herr != nil {
		b.failed.Add(1)
		return &HandlerError{SubscriptionID: s.id, Topic: t.String(), Err: herr}
	}
	b.delivered.Add(1)
	return nil
}

// Stats returns the current counters.
func (b *Bus) Stats() Stats {
	b.mu.RLock()
	n := len(b.subs)
	b.mu.RUnlock()

	return Stats{
		EventsPublished:   b.published.Load(),
		EventsDelivered:   b.delivered.Load(),
		HandlerErrors:     b.failed.Load(),
		HandlerPanics:     b.panicked.Load(),
		ActiveSubscribers: n,
	}
}
