// Package topic names event bus topics.
//
// Topics are dot separated paths such as "textarea.popup.trigger".
// Subscription patterns may use "*" for exactly one segment and "**" for
// any number of segments, including none:
//
//	textarea.*          matches textarea.focus, not textarea.popup.trigger
//	textarea.**         matches both, and textarea itself
//	**.trigger          matches textarea.popup.trigger
package topic
