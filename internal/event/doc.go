// Package event provides the synchronous topic bus that connects the text
// area to the rest of the application.
//
// Publishers wrap a payload in an Event and call Bus.Publish. Every
// subscription whose pattern matches the event topic runs on the caller's
// goroutine, in subscription order, before Publish returns:
//
//	bus := event.NewBus()
//	sub, _ := bus.SubscribeFunc("textarea.popup.*", func(ctx context.Context, ev any) error {
//	    e := ev.(event.Event[PopupTrigger])
//	    ...
//	})
//	defer bus.Unsubscribe(sub)
//
//	err := bus.Publish(ctx, event.NewEvent("textarea.popup.trigger", payload, "textarea"))
//
// Handler errors do not stop delivery; Publish returns them joined. A
// panicking handler is recovered and reported as a *PanicError.
package event
