package script

import (
	"fmt"
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// openSafeLibraries opens the libraries a drawing program may use. io, os,
// debug and package are left closed; files and commands go through the
// facile table instead.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes the base functions that load code from disk or strings
// and sends print to the runner's output.
func (r *Runner) sandbox() {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module"} {
		r.L.SetGlobal(name, lua.LNil)
	}
	r.L.SetGlobal("print", r.L.NewFunction(r.print))
}

// print mirrors the standard Lua print: arguments converted with tostring,
// separated by tabs, ended by a newline.
func (r *Runner) print(L *lua.LState) int {
	n := L.GetTop()
	parts := make([]string, n)
	for i := 1; i <= n; i++ {
		parts[i-1] = L.ToStringMeta(L.Get(i)).String()
	}
	fmt.Fprintln(r.out, strings.Join(parts, "\t"))
	return 0
}
