package lua

import (
	"testing"

	glua "github.com/yuin/gopher-lua"
)

func TestSandboxRemovesUnsafeGlobals(t *testing.T) {
	state := NewState()
	defer state.Close()

	for _, name := range append(removedGlobals, "io", "os", "debug", "package") {
		if v := state.GetGlobal(name); v != glua.LNil {
			t.Errorf("global %s = %v, want nil", name, v)
		}
	}
}

func TestSandboxKeepsSafeLibraries(t *testing.T) {
	state := NewState()
	defer state.Close()

	err := state.DoString(`
		a = string.upper("x")
		b = table.concat({"p", "q"}, ",")
		c = math.max(1, 7)
		d = tostring(pcall(function() error("e") end))
	`)
	if err != nil {
		t.Fatalf("DoString() error = %v", err)
	}

	want := map[string]string{"a": "X", "b": "p,q", "c": "7", "d": "false"}
	for name, w := range want {
		if got := state.GetGlobal(name).String(); got != w {
			t.Errorf("%s = %q, want %q", name, got, w)
		}
	}
}

func TestSandboxRequire(t *testing.T) {
	state := NewState()
	defer state.Close()

	if err := state.DoString(`s = require("string"); ok = s == string`); err != nil {
		t.Fatalf("require(string) error = %v", err)
	}
	if state.GetGlobal("ok") != glua.LTrue {
		t.Error("require(string) should return the string library")
	}

	for _, mod := range []string{"io", "os", "debug", "socket"} {
		if err := state.DoString(`require("` + mod + `")`); err == nil {
			t.Errorf("require(%q) should fail", mod)
		}
	}
}

func TestSandboxPrint(t *testing.T) {
	var lines []string
	state := NewState(WithPrintFunc(func(s string) {
		lines = append(lines, s)
	}))
	defer state.Close()

	if err := state.DoString(`print("a", 1, true, nil)`); err != nil {
		t.Fatalf("DoString() error = %v", err)
	}
	if len(lines) != 1 || lines[0] != "a\t1\ttrue\tnil" {
		t.Errorf("print output = %q", lines)
	}
}
