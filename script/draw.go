package script

import (
	"image"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/gogpu/facile"
)

// install builds the global facile table.
func (r *Runner) install() {
	L := r.L
	mod := L.NewTable()

	r.register(mod, map[string]lua.LGFunction{
		"start": r.start,
		"stop":  r.stop,
		"sync":  r.sync,
		"sleep": r.sleep,

		"setColor":    r.setColor,
		"setGray":     r.setGray,
		"setColorHex": r.setColorHex,

		"drawPoint":     r.drawPoint,
		"drawLine":      r.drawLine,
		"drawRect":      r.box((*facile.Canvas).DrawRect),
		"fillRect":      r.box((*facile.Canvas).FillRect),
		"drawOval":      r.box((*facile.Canvas).DrawOval),
		"fillOval":      r.box((*facile.Canvas).FillOval),
		"drawArc":       r.arc((*facile.Canvas).DrawArc),
		"fillArc":       r.arc((*facile.Canvas).FillArc),
		"drawCircle":    r.circle((*facile.Canvas).DrawCircle),
		"fillCircle":    r.circle((*facile.Canvas).FillCircle),
		"drawCircleArc": r.circleArc((*facile.Canvas).DrawCircleArc),
		"fillCircleArc": r.circleArc((*facile.Canvas).FillCircleArc),
		"drawPolygon":   r.polygon((*facile.Canvas).DrawPolygon),
		"fillPolygon":   r.polygon((*facile.Canvas).FillPolygon),
		"drawText":      r.drawText,
		"textWidth":     r.textWidth,
		"clear":         r.clear,
		"setTurtleMode": r.setTurtleMode,
	})
	L.SetField(mod, "turtle", r.turtleTable())
	r.installConsole(mod)

	L.SetGlobal("facile", mod)
}

// canvas returns the canvas of the running window. Before start it is nil
// and panics with facile.ErrNotStarted when used.
func (r *Runner) canvas() *facile.Canvas {
	return r.window.Canvas()
}

// start([width, height])
func (r *Runner) start(L *lua.LState) int {
	w, err := facile.Start(L.OptInt(1, facile.DefaultWidth), L.OptInt(2, facile.DefaultHeight), r.winOpts...)
	if err != nil {
		L.RaiseError("start: %v", err)
		return 0
	}
	r.window = w
	return 0
}

// stop() closes the window. Drawing afterwards needs a new start.
func (r *Runner) stop(L *lua.LState) int {
	w := r.window
	if w == nil {
		return 0
	}
	r.window = nil
	if err := w.Stop(); err != nil {
		L.RaiseError("stop: %v", err)
	}
	return 0
}

// sync() waits until everything drawn so far is on screen.
func (r *Runner) sync(L *lua.LState) int {
	if r.window == nil {
		return 0
	}
	if err := r.window.Sync(); err != nil {
		L.RaiseError("sync: %v", err)
	}
	return 0
}

// sleep(ms)
func (r *Runner) sleep(L *lua.LState) int {
	facile.Sleep(time.Duration(L.CheckInt(1)) * time.Millisecond)
	return 0
}

func (r *Runner) setColor(L *lua.LState) int {
	r.canvas().SetColor(L.CheckInt(1), L.CheckInt(2), L.CheckInt(3))
	return 0
}

func (r *Runner) setGray(L *lua.LState) int {
	r.canvas().SetGray(L.CheckInt(1))
	return 0
}

func (r *Runner) setColorHex(L *lua.LState) int {
	if err := r.canvas().SetColorHex(L.CheckString(1)); err != nil {
		L.ArgError(1, err.Error())
	}
	return 0
}

func (r *Runner) drawPoint(L *lua.LState) int {
	r.canvas().DrawPoint(L.CheckInt(1), L.CheckInt(2))
	return 0
}

func (r *Runner) drawLine(L *lua.LState) int {
	r.canvas().DrawLine(L.CheckInt(1), L.CheckInt(2), L.CheckInt(3), L.CheckInt(4))
	return 0
}

// box binds a primitive taking (x, y, w, h).
func (r *Runner) box(draw func(c *facile.Canvas, x, y, w, h int)) lua.LGFunction {
	return func(L *lua.LState) int {
		draw(r.canvas(), L.CheckInt(1), L.CheckInt(2), L.CheckInt(3), L.CheckInt(4))
		return 0
	}
}

// arc binds a primitive taking (x, y, w, h, startDeg, extentDeg).
func (r *Runner) arc(draw func(c *facile.Canvas, x, y, w, h, start, extent int)) lua.LGFunction {
	return func(L *lua.LState) int {
		draw(r.canvas(), L.CheckInt(1), L.CheckInt(2), L.CheckInt(3), L.CheckInt(4), L.CheckInt(5), L.CheckInt(6))
		return 0
	}
}

// circle binds a primitive taking (cx, cy, r).
func (r *Runner) circle(draw func(c *facile.Canvas, cx, cy, radius int)) lua.LGFunction {
	return func(L *lua.LState) int {
		draw(r.canvas(), L.CheckInt(1), L.CheckInt(2), L.CheckInt(3))
		return 0
	}
}

// circleArc binds a primitive taking (cx, cy, r, startDeg, extentDeg).
func (r *Runner) circleArc(draw func(c *facile.Canvas, cx, cy, radius, start, extent int)) lua.LGFunction {
	return func(L *lua.LState) int {
		draw(r.canvas(), L.CheckInt(1), L.CheckInt(2), L.CheckInt(3), L.CheckInt(4), L.CheckInt(5))
		return 0
	}
}

// polygon binds a primitive taking a flat {x1, y1, x2, y2, ...} table.
func (r *Runner) polygon(draw func(c *facile.Canvas, pts []image.Point)) lua.LGFunction {
	return func(L *lua.LState) int {
		pts := checkPoints(L, 1)
		draw(r.canvas(), pts)
		return 0
	}
}

func checkPoints(L *lua.LState, n int) []image.Point {
	tbl := L.CheckTable(n)
	size := tbl.Len()
	if size%2 != 0 {
		L.ArgError(n, "coordinates must come in x, y pairs")
		return nil
	}

	pts := make([]image.Point, 0, size/2)
	for i := 1; i < size; i += 2 {
		x, okx := tbl.RawGetInt(i).(lua.LNumber)
		y, oky := tbl.RawGetInt(i + 1).(lua.LNumber)
		if !okx || !oky {
			L.ArgError(n, "coordinates must be numbers")
			return nil
		}
		pts = append(pts, image.Pt(int(x), int(y)))
	}
	return pts
}

func (r *Runner) drawText(L *lua.LState) int {
	r.canvas().DrawText(L.CheckInt(1), L.CheckInt(2), L.CheckString(3))
	return 0
}

func (r *Runner) textWidth(L *lua.LState) int {
	L.Push(lua.LNumber(r.canvas().TextWidth(L.CheckString(1))))
	return 1
}

func (r *Runner) clear(L *lua.LState) int {
	r.canvas().Clear()
	return 0
}

func (r *Runner) setTurtleMode(L *lua.LState) int {
	r.canvas().SetTurtleMode(L.CheckBool(1))
	return 0
}

// turtleTable builds facile.turtle. Every function acts on the turtle of
// the running window.
func (r *Runner) turtleTable() *lua.LTable {
	tbl := r.L.NewTable()
	turtle := func() *facile.Turtle { return r.window.Turtle() }

	r.register(tbl, map[string]lua.LGFunction{
		"turn": func(L *lua.LState) int {
			turtle().Turn(float64(L.CheckNumber(1)))
			return 0
		},
		"turnDegrees": func(L *lua.LState) int {
			turtle().TurnDegrees(float64(L.CheckNumber(1)))
			return 0
		},
		"jumpTo": func(L *lua.LState) int {
			turtle().JumpTo(float64(L.CheckNumber(1)), float64(L.CheckNumber(2)))
			return 0
		},
		"jump": func(L *lua.LState) int {
			turtle().JumpForward(float64(L.CheckNumber(1)))
			return 0
		},
		"lineTo": func(L *lua.LState) int {
			turtle().LineTo(float64(L.CheckNumber(1)), float64(L.CheckNumber(2)))
			return 0
		},
		"line": func(L *lua.LState) int {
			turtle().LineForward(float64(L.CheckNumber(1)))
			return 0
		},
		"square": func(L *lua.LState) int {
			turtle().StampSquare(L.CheckInt(1))
			return 0
		},
		// state() -> x, y, heading
		"state": func(L *lua.LState) int {
			s := turtle().State()
			L.Push(lua.LNumber(s.X))
			L.Push(lua.LNumber(s.Y))
			L.Push(lua.LNumber(s.Heading))
			return 3
		},
		"setState": func(L *lua.LState) int {
			turtle().SetState(facile.TurtleState{
				X:       float64(L.CheckNumber(1)),
				Y:       float64(L.CheckNumber(2)),
				Heading: float64(L.CheckNumber(3)),
			})
			return 0
		},
	})
	return tbl
}
