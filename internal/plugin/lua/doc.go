// Package lua runs user scripts as mouse gesture hooks.
//
// A script is a Lua file that may define any of these globals:
//
//	-- scope is "textarea" or "mouse"; return a boolean to decide whether
//	-- control-drag selects columns, or nil to keep the current value.
//	function sync_rectangular_selection(scope, ctrl_for_rect, control) end
//
//	-- line is the zero-based caret line before the press moves it.
//	function position_changing(line) end
//
//	-- ev has x, y, clicks, buttons, modifiers and shift/ctrl/alt/meta.
//	function popup_trigger(scope, ev) end
//
// Missing functions are skipped. Script errors are logged and never
// interrupt the gesture.
//
// Scripts also see a gesture table: gesture.log(msg) and gesture.warn(msg)
// write to the editor log, and gesture.SCOPE_TEXTAREA and
// gesture.SCOPE_MOUSE hold the scope names.
//
// # Sandbox
//
// Scripts run with the base, string, table and math libraries only. The
// io, os, debug and package libraries are not opened, chunk loading
// functions are removed, and print writes to the debug log.
//
// # Usage
//
//	hooks, err := lua.LoadHooks("hooks.lua", logger)
//	if err != nil {
//	    return err
//	}
//	defer hooks.Close()
//	in := mouse.NewInterpreter(area, mouse.WithHooks(hooks))
package lua
