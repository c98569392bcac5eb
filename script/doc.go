// Package script runs Lua programs against the facile drawing API.
//
// A Runner owns a sandboxed gopher-lua state. Only the base, table, string
// and math libraries are opened; dofile, loadfile and load are removed.
// Everything else a program needs lives in the global facile table:
//
//	facile.start(200, 200)
//	for i = 0, 199, 4 do
//	  facile.setGray(i)
//	  facile.drawLine(0, i, 199, 199 - i)
//	end
//	local t = facile.turtle
//	t.jumpTo(100, 100)
//	for _ = 1, 4 do
//	  t.line(50)
//	  t.turnDegrees(90)
//	end
//	facile.sync()
//	facile.stop()
//
// Drawing before facile.start, reading a file that is not open and the
// other programming errors the Go packages report by panicking are turned
// into Lua errors carrying the Go error text. DoString and DoFile return
// them.
//
// Console reads come from the runner's standard input and set the status
// returned by facile.status(); facile.print, facile.println and the global
// print write to its standard output.
package script
