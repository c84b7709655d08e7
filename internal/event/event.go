package event

import (
	"time"

	"github.com/google/uuid"

	"github.com/dshills/gesture/internal/event/topic"
)

// Event is a typed payload published on a topic. Events are passed by
// value and never modified after publication.
type Event[T any] struct {
	Topic   topic.Topic
	Payload T

	ID     string    // uuid, unique per NewEvent call
	Time   time.Time // when NewEvent ran
	Source string    // publishing component
}

// NewEvent stamps payload with a fresh ID and the current time.
func NewEvent[T any](t topic.Topic, payload T, source string) Event[T] {
	return Event[T]{
		Topic:   t,
		Payload: payload,
		ID:      uuid.NewString(),
		Time:    time.Now(),
		Source:  source,
	}
}

// EventTopic lets the bus route an Event without knowing T.
func (e Event[T]) EventTopic() topic.Topic {
	return e.Topic
}

// TopicProvider is anything the bus can publish.
type TopicProvider interface {
	EventTopic() topic.Topic
}
