package textarea

import (
	"context"

	"github.com/dshills/gesture/internal/event"
	"github.com/dshills/gesture/internal/event/topic"
	"github.com/dshills/gesture/internal/input/mouse"
)

// Topics published by BusHooks.
const (
	TopicPositionChanging topic.Topic = "textarea.position.changing"
	TopicPopupTrigger     topic.Topic = "textarea.popup.trigger"
)

const eventSource = "textarea"

// PositionChanging is published before a press moves the caret.
type PositionChanging struct {
	Host      mouse.Host
	CaretLine int
}

// PopupTrigger is published when a press asks for the context menu.
type PopupTrigger struct {
	Host     mouse.Host
	Position mouse.Position
	Offset   int
}

// BusHooks connects the mouse interpreter to the event bus and applies
// the text area's control-for-rectangle preference.
type BusHooks struct {
	bus    *event.Bus
	logger Logger
}

// NewBusHooks creates hooks publishing on bus. A nil logger discards.
func NewBusHooks(bus *event.Bus, logger Logger) *BusHooks {
	if logger == nil {
		logger = nopLogger{}
	}
	return &BusHooks{bus: bus, logger: logger}
}

// SyncRectangularSelection copies the host preference into the press
// state. Only the text area layer has that preference.
func (b *BusHooks) SyncRectangularSelection(scope mouse.HookScope, h mouse.Host, st *mouse.State) {
	if scope == mouse.ScopeTextArea {
		st.CtrlForRectangularSelection = h.CtrlForRectangularSelection()
	}
}

// NotifyPositionChanging publishes TopicPositionChanging.
func (b *BusHooks) NotifyPositionChanging(h mouse.Host) {
	b.publish(event.NewEvent(TopicPositionChanging, PositionChanging{
		Host:      h,
		CaretLine: h.CaretLine(),
	}, eventSource))
}

// HandlePopupTrigger publishes TopicPopupTrigger once per press, from the
// mouse handler layer.
func (b *BusHooks) HandlePopupTrigger(scope mouse.HookScope, h mouse.Host, ev mouse.Event) {
	if scope != mouse.ScopeMouseHandler {
		return
	}
	b.publish(event.NewEvent(TopicPopupTrigger, PopupTrigger{
		Host:     h,
		Position: ev.Position,
		Offset:   h.XYToOffset(ev.Position.X, ev.Position.Y, true),
	}, eventSource))
}

func (b *BusHooks) publish(ev event.TopicProvider) {
	if b.bus == nil {
		return
	}
	if err := b.bus.Publish(context.Background(), ev); err != nil {
		b.logger.Warn("publish %s: %v", ev.EventTopic(), err)
	}
}
