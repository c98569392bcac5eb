package facile

import (
	"fmt"
	"math"
	"sync"
)

// TurtleState is a turtle's position and heading.
//
// Heading is in radians, counter-clockwise from the positive x-axis in the
// trigonometric sense, applied to canvas coordinates as they are (y grows
// downward). TurtleState is a plain value: every read or write is a copy.
type TurtleState struct {
	X, Y    float64
	Heading float64
}

// Position returns the turtle position as a Point.
func (s TurtleState) Position() Point {
	return Point{X: s.X, Y: s.Y}
}

// NormalizedHeading returns the heading reduced to [0, 2π).
func (s TurtleState) NormalizedHeading() float64 {
	h := math.Mod(s.Heading, 2*math.Pi)
	if h < 0 {
		h += 2 * math.Pi
	}
	if h >= 2*math.Pi {
		h = 0
	}
	return h
}

func (s TurtleState) String() string {
	return fmt.Sprintf("TurtleState(x=%g, y=%g, heading=%g)", s.X, s.Y, s.Heading)
}

// TurtleRenderer is what a turtle draws on. Canvas implements it.
type TurtleRenderer interface {
	// DrawLine draws a hairline between two pixels, both included.
	DrawLine(x0, y0, x1, y1 int)

	// FillRect fills the w by h pixel rectangle at (x, y).
	FillRect(x, y, w, h int)

	// Invalidate requests a redraw without drawing anything.
	Invalidate()
}

// Turtle is a cursor with a position and heading that draws relative to
// itself.
//
// A turtle without a renderer is headless: it tracks its state and draws
// nothing. Turtle is safe for concurrent use. Motions are serialized, and
// each one becomes visible to State atomically.
type Turtle struct {
	// motion serializes transitions. It is held while drawing, so it is
	// always taken before the canvas lock.
	motion sync.Mutex

	mu    sync.RWMutex
	state TurtleState

	r TurtleRenderer
}

// NewTurtle creates a turtle at the origin with heading 0.
// A nil renderer creates a headless turtle.
func NewTurtle(r TurtleRenderer) *Turtle {
	return NewTurtleAt(TurtleState{}, r)
}

// NewTurtleAt creates a turtle at the given state.
func NewTurtleAt(s TurtleState, r TurtleRenderer) *Turtle {
	return &Turtle{state: s, r: r}
}

// State returns a copy of the current state.
func (t *Turtle) State() TurtleState {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.state
}

// SetState replaces the whole state. Nothing is drawn.
func (t *Turtle) SetState(s TurtleState) {
	t.motion.Lock()
	defer t.motion.Unlock()

	t.move(s)
}

// SetLocation moves the turtle without drawing.
func (t *Turtle) SetLocation(x, y float64) {
	t.motion.Lock()
	defer t.motion.Unlock()

	s := t.State()
	s.X, s.Y = x, y
	t.move(s)
}

// SetHeading sets the heading in radians.
func (t *Turtle) SetHeading(rad float64) {
	t.motion.Lock()
	defer t.motion.Unlock()

	s := t.State()
	s.Heading = rad
	t.move(s)
}

// Turn adds rad radians to the heading.
func (t *Turtle) Turn(rad float64) {
	t.motion.Lock()
	defer t.motion.Unlock()

	s := t.State()
	s.Heading += rad
	t.move(s)
}

// TurnDegrees adds deg degrees to the heading.
func (t *Turtle) TurnDegrees(deg float64) {
	t.Turn(degToRad(deg))
}

// JumpTo moves the turtle to (x, y) without drawing.
func (t *Turtle) JumpTo(x, y float64) {
	t.motion.Lock()
	defer t.motion.Unlock()

	t.jump(Point{X: x, Y: y})
}

// JumpToPoint is JumpTo for a Point.
func (t *Turtle) JumpToPoint(p Point) {
	t.JumpTo(p.X, p.Y)
}

// JumpForward moves the turtle d units along its heading without drawing.
func (t *Turtle) JumpForward(d float64) {
	t.motion.Lock()
	defer t.motion.Unlock()

	s := t.State()
	t.jump(s.Position().Advance(s.Heading, d))
}

// LineTo draws from the current position to (x, y) and moves there.
func (t *Turtle) LineTo(x, y float64) {
	t.motion.Lock()
	defer t.motion.Unlock()

	t.line(Point{X: x, Y: y})
}

// LineToPoint is LineTo for a Point.
func (t *Turtle) LineToPoint(p Point) {
	t.LineTo(p.X, p.Y)
}

// LineForward draws d units along the heading and moves to the end point.
func (t *Turtle) LineForward(d float64) {
	t.motion.Lock()
	defer t.motion.Unlock()

	s := t.State()
	t.line(s.Position().Advance(s.Heading, d))
}

// StampSquare fills an axis-aligned size by size square centred on the
// turtle. The square ignores the heading.
func (t *Turtle) StampSquare(size int) {
	t.motion.Lock()
	defer t.motion.Unlock()

	if t.r == nil {
		return
	}
	p := t.State().Position().Pixel()
	t.r.FillRect(p.X-size/2, p.Y-size/2, size, size)
}

// line draws to dst then commits the move. If drawing panics the state
// is left untouched. Caller holds motion.
func (t *Turtle) line(dst Point) {
	s := t.State()
	if t.r != nil {
		from, to := s.Position().Pixel(), dst.Pixel()
		t.r.DrawLine(from.X, from.Y, to.X, to.Y)
	}
	t.jump(dst)
}

// jump moves to dst without drawing. Caller holds motion.
func (t *Turtle) jump(dst Point) {
	s := t.State()
	s.X, s.Y = dst.X, dst.Y
	t.move(s)
}

// move commits s and asks for a redraw so the overlay follows. If the
// renderer refuses, for instance because its window stopped, the previous
// state is restored before the panic continues. Caller holds motion.
func (t *Turtle) move(s TurtleState) {
	prev := t.State()
	t.commit(s)
	if t.r == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			t.commit(prev)
			panic(r)
		}
	}()
	t.r.Invalidate()
}

func (t *Turtle) commit(s TurtleState) {
	t.mu.Lock()
	t.state = s
	t.mu.Unlock()
}
