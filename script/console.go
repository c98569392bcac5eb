package script

import (
	"fmt"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/gogpu/facile/process"
	"github.com/gogpu/facile/textio"
)

// installConsole adds console, status, exec and file functions to mod.
func (r *Runner) installConsole(mod *lua.LTable) {
	L := r.L

	for _, s := range statuses() {
		L.SetField(mod, statusConstant(s), lua.LNumber(s))
	}

	r.register(mod, map[string]lua.LGFunction{
		"print":   r.write(false),
		"println": r.write(true),

		"readInt": func(L *lua.LState) int {
			L.Push(lua.LNumber(r.in.ReadInt()))
			return 1
		},
		"readLong": func(L *lua.LState) int {
			L.Push(lua.LNumber(r.in.ReadLong()))
			return 1
		},
		"readFloat": func(L *lua.LState) int {
			L.Push(lua.LNumber(r.in.ReadFloat()))
			return 1
		},
		"readDouble": func(L *lua.LState) int {
			L.Push(lua.LNumber(r.in.ReadDouble()))
			return 1
		},
		"readString": func(L *lua.LState) int {
			L.Push(lua.LString(r.in.ReadString()))
			return 1
		},
		"readLine": func(L *lua.LState) int {
			L.Push(lua.LString(r.in.ReadLine()))
			return 1
		},
		// readChar() -> one-character string, "" at end of input
		"readChar": func(L *lua.LState) int {
			c := r.in.ReadChar()
			if !r.in.Ok() {
				L.Push(lua.LString(""))
				return 1
			}
			L.Push(lua.LString(string(c)))
			return 1
		},

		"status": func(L *lua.LState) int {
			L.Push(lua.LNumber(r.in.Status()))
			return 1
		},
		"isOk": func(L *lua.LState) int {
			L.Push(lua.LBool(r.in.Ok()))
			return 1
		},

		"exec": r.exec,
	})

	L.SetField(mod, "file", r.fileTable())
}

func statuses() []textio.Status {
	return []textio.Status{
		textio.NoError, textio.StreamError, textio.FormatError,
		textio.ArgError, textio.OpenError, textio.WriteError,
	}
}

// statusConstant returns the Lua name of a status: FormatError becomes
// FORMAT_ERROR.
func statusConstant(s textio.Status) string {
	name := s.String()
	var b strings.Builder
	for i, c := range name {
		if i > 0 && c >= 'A' && c <= 'Z' {
			b.WriteByte('_')
		}
		b.WriteRune(c)
	}
	return strings.ToUpper(b.String())
}

// write binds print and println. Arguments are written back to back
// without separators.
func (r *Runner) write(newline bool) lua.LGFunction {
	return func(L *lua.LState) int {
		var b strings.Builder
		for i := 1; i <= L.GetTop(); i++ {
			b.WriteString(L.ToStringMeta(L.Get(i)).String())
		}
		if newline {
			b.WriteByte('\n')
		}
		fmt.Fprint(r.out, b.String())
		return 0
	}
}

// exec(command) or exec({name, arg1, ...}) runs a command, copies its
// output to the runner's output and returns its exit code.
func (r *Runner) exec(L *lua.LState) int {
	var code int
	switch v := L.CheckAny(1).(type) {
	case lua.LString:
		code = process.ExecLine(r.ctx, r.out, string(v))
	case *lua.LTable:
		args := make([]string, 0, v.Len())
		for i := 1; i <= v.Len(); i++ {
			args = append(args, L.ToStringMeta(v.RawGetInt(i)).String())
		}
		code = process.Exec(r.ctx, r.out, args...)
	default:
		L.TypeError(1, lua.LTString)
		return 0
	}
	L.Push(lua.LNumber(code))
	return 1
}

// fileTable builds facile.file: one file open for reading and one for
// writing at a time.
func (r *Runner) fileTable() *lua.LTable {
	tbl := r.L.NewTable()

	r.register(tbl, map[string]lua.LGFunction{
		// openRead(name) -> status
		"openRead": func(L *lua.LState) int {
			L.Push(lua.LNumber(r.reader.Open(L.CheckString(1))))
			return 1
		},
		// readLine() -> line, or nil at end of file
		"readLine": func(L *lua.LState) int {
			line, ok := r.reader.ReadLine()
			if !ok {
				L.Push(lua.LNil)
				return 1
			}
			L.Push(lua.LString(line))
			return 1
		},
		"closeRead": func(L *lua.LState) int {
			if err := r.reader.Close(); err != nil {
				L.RaiseError("closeRead: %v", err)
			}
			return 0
		},
		// openWrite(name) -> status
		"openWrite": func(L *lua.LState) int {
			L.Push(lua.LNumber(r.writer.Open(L.CheckString(1))))
			return 1
		},
		// writeLine(s) -> status
		"writeLine": func(L *lua.LState) int {
			L.Push(lua.LNumber(r.writer.WriteLine(L.CheckString(1))))
			return 1
		},
		"closeWrite": func(L *lua.LState) int {
			if err := r.writer.Close(); err != nil {
				L.RaiseError("closeWrite: %v", err)
			}
			return 0
		},
	})
	return tbl
}
