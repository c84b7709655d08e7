package lua

import (
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// removedGlobals load code or reach outside the sandbox.
var removedGlobals = []string{
	"dofile",
	"loadfile",
	"load",
	"loadstring",
	"module",
	"getfenv",
	"setfenv",
	"collectgarbage",
}

// requirable lists the modules require may return. They are the opened
// libraries, so require only hands back globals.
var requirable = map[string]bool{
	"string": true,
	"table":  true,
	"math":   true,
}

// Sandbox restricts a Lua state to pure computation.
type Sandbox struct {
	L     *lua.LState
	print func(string)
}

// NewSandbox creates a sandbox for L. printFn receives print output.
func NewSandbox(L *lua.LState, printFn func(string)) *Sandbox {
	if printFn == nil {
		printFn = func(string) {}
	}
	return &Sandbox{L: L, print: printFn}
}

// Install removes unsafe globals and replaces print and require.
func (s *Sandbox) Install() {
	for _, name := range removedGlobals {
		s.L.SetGlobal(name, lua.LNil)
	}
	s.L.SetGlobal("print", s.L.NewFunction(s.luaPrint))
	s.L.SetGlobal("require", s.L.NewFunction(s.luaRequire))
}

// luaPrint joins its arguments with tabs, like the stock print.
func (s *Sandbox) luaPrint(L *lua.LState) int {
	n := L.GetTop()
	parts := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		parts = append(parts, L.ToStringMeta(L.Get(i)).String())
	}
	s.print(strings.Join(parts, "\t"))
	return 0
}

func (s *Sandbox) luaRequire(L *lua.LState) int {
	name := L.CheckString(1)
	if !requirable[name] {
		L.RaiseError("module %q is not available", name)
		return 0
	}
	L.Push(L.GetGlobal(name))
	return 1
}
