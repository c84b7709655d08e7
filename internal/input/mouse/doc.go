// Package mouse interprets pointer gestures on a text area.
//
// The Interpreter turns a button press into caret placement, selection
// changes or a popup request by calling into a Host, the text widget that
// owns the buffer, layout and selections:
//
//	in := mouse.NewInterpreter(area, mouse.WithHooks(hooks))
//	in.OnPress(ev)
//
// # Buttons and platforms
//
// Events carry the physical buttons held (Button1, Button2, Button3) and
// the keyboard modifiers. Which logical button that is depends on the
// platform: on macOS a primary click with Option counts as a middle click
// and a primary click with Control counts as a right click. IsMiddleButton,
// IsRightButton and Classify are pure functions of the platform, buttons
// and modifiers.
//
// # Click counts
//
//   - Single click: positions the caret and clears selections
//   - Shift+click: extends the selection from the mark
//   - Double click: selects the word under the pointer
//   - Triple click: selects the line
//
// Toolkits that do not report click counts can derive them with a
// ClickCounter.
//
// # Hooks
//
// Hooks let the owner of the text area refresh the rectangular-selection
// preference, announce caret moves and show a popup menu. NopHooks does
// nothing.
//
// # Thread Safety
//
// An Interpreter is not safe for concurrent use. Feed it events from the
// UI goroutine only. The same holds for Focused and SetFocused.
package mouse
