package facile

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"sync"

	"github.com/gogpu/facile/text"
)

// Marker geometry: the turtle overlay is a red disc inscribed in a
// markerSize square centred on the turtle.
const (
	markerSize   = 6
	markerOffset = 3
)

var markerColor = color.RGBA{R: 255, A: 255}

// Canvas is a drawing surface with a persistent raster.
//
// All primitives take integer pixel coordinates with the origin at the top
// left and y growing downward. Drawing outside the raster is clipped. Every
// mutating call updates the raster synchronously with the current ink and
// then requests a redraw; it returns before the frame is repainted.
//
// Canvas is safe for concurrent use. A nil or zero Canvas panics with an
// error wrapping ErrNotStarted on every drawing call; the canvas of a
// stopped window panics with ErrWindowStopped.
type Canvas struct {
	mu sync.RWMutex

	pm      *Pixmap
	ink     RGB
	overlay bool
	stopped bool

	// filler rasterizes fills into pm; guarded by mu.
	filler *filler

	// markerMu guards marker, the filler used by Render for the overlay.
	markerMu sync.Mutex
	marker   *filler

	background color.RGBA
	face       *text.Face
	shaper     *text.Shaper
	turtle     *Turtle
	invalidate func()
}

// NewCanvas creates a canvas with a fully transparent raster and black ink.
// It panics with an error wrapping ErrInvalidDimensions if width or height
// is not positive.
func NewCanvas(width, height int, opts ...CanvasOption) *Canvas {
	if width <= 0 || height <= 0 {
		panic(fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height))
	}

	o := defaultCanvasOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Canvas{
		pm:         NewPixmap(width, height),
		ink:        Black,
		filler:     newFiller(width, height),
		marker:     newFiller(width, height),
		background: o.background.RGBA(),
		shaper:     text.NewShaper(),
		invalidate: o.invalidate,
	}

	source := o.font
	if source == nil {
		source = text.DefaultFontSource()
	}
	face, err := source.Face(o.fontSize)
	if err != nil {
		Logger().Warn("canvas font unavailable, text disabled", "size", o.fontSize, "err", err)
	}
	c.face = face

	c.turtle = NewTurtle(c)
	return c
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	c.check()
	return c.pm.Width()
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	c.check()
	return c.pm.Height()
}

// Turtle returns the turtle bound to this canvas. It starts at the origin
// with heading 0 and draws with the canvas ink.
func (c *Canvas) Turtle() *Turtle {
	c.check()
	return c.turtle
}

// SetColor sets the ink. Channels are clamped to [0, 255] when pixels are
// written.
func (c *Canvas) SetColor(r, g, b int) {
	c.lock()
	defer c.mu.Unlock()

	c.ink = RGB{R: r, G: g, B: b}
}

// SetGray sets the ink to the gray level v.
func (c *Canvas) SetGray(v int) {
	c.SetColor(v, v, v)
}

// SetColorHex sets the ink from a "#rrggbb" or "#rgb" string.
func (c *Canvas) SetColorHex(s string) error {
	ink, err := ParseHex(s)
	if err != nil {
		return err
	}
	c.SetColor(ink.R, ink.G, ink.B)
	return nil
}

// Color returns the current ink.
func (c *Canvas) Color() RGB {
	c.check()
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.ink
}

// DrawPoint sets the pixel at (x, y).
func (c *Canvas) DrawPoint(x, y int) {
	c.DrawLine(x, y, x, y)
}

// DrawLine draws a hairline from (x0, y0) to (x1, y1), both endpoints
// included.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	c.lock()
	defer c.done()

	c.pen().line(x0, y0, x1, y1)
}

// DrawRect outlines the rectangle with corners (x, y) and (x+w, y+h),
// covering w+1 by h+1 pixels. Negative sizes draw nothing.
func (c *Canvas) DrawRect(x, y, w, h int) {
	c.lock()
	defer c.done()

	if w < 0 || h < 0 {
		return
	}
	c.pen().polyline(rectOutline(x, y, w, h), true)
}

// FillRect fills the w by h pixels starting at (x, y).
func (c *Canvas) FillRect(x, y, w, h int) {
	c.lock()
	defer c.done()

	c.pm.FillRect(x, y, w, h, c.ink.RGBA())
}

// DrawOval outlines the ellipse inscribed in the box (x, y, w, h).
func (c *Canvas) DrawOval(x, y, w, h int) {
	c.lock()
	defer c.done()

	if w < 0 || h < 0 {
		return
	}
	c.pen().polyline(pixels(boxEllipse(x, y, w, h).outline()), true)
}

// FillOval fills the ellipse inscribed in the box (x, y, w, h).
func (c *Canvas) FillOval(x, y, w, h int) {
	c.lock()
	defer c.done()

	if w <= 0 || h <= 0 {
		return
	}
	c.filler.fill(c.pm.Image(), boxEllipse(x, y, w, h).outline(), c.ink.RGBA())
}

// DrawArc outlines part of the ellipse inscribed in (x, y, w, h). Angles
// are in degrees, 0 at 3 o'clock, positive values turning
// counter-clockwise on screen. Extents beyond a full turn are clamped.
func (c *Canvas) DrawArc(x, y, w, h, startDeg, extentDeg int) {
	c.lock()
	defer c.done()

	if w < 0 || h < 0 || extentDeg == 0 {
		return
	}
	start, sweep := arcRadians(startDeg, extentDeg)
	e := boxEllipse(x, y, w, h)
	if math.Abs(sweep) >= 2*math.Pi {
		c.pen().polyline(pixels(e.outline()), true)
		return
	}
	c.pen().polyline(pixels(e.arc(start, sweep)), false)
}

// FillArc fills the pie wedge bounded by the arc DrawArc would draw and
// the centre of the ellipse.
func (c *Canvas) FillArc(x, y, w, h, startDeg, extentDeg int) {
	c.lock()
	defer c.done()

	if w <= 0 || h <= 0 || extentDeg == 0 {
		return
	}
	start, sweep := arcRadians(startDeg, extentDeg)
	c.filler.fill(c.pm.Image(), boxEllipse(x, y, w, h).pie(start, sweep), c.ink.RGBA())
}

// DrawCircle outlines the circle of radius r centred on (cx, cy).
func (c *Canvas) DrawCircle(cx, cy, r int) {
	c.DrawOval(cx-r, cy-r, 2*r, 2*r)
}

// FillCircle fills the circle of radius r centred on (cx, cy).
func (c *Canvas) FillCircle(cx, cy, r int) {
	c.FillOval(cx-r, cy-r, 2*r, 2*r)
}

// DrawCircleArc outlines an arc of the circle of radius r centred on
// (cx, cy). Angles follow DrawArc.
func (c *Canvas) DrawCircleArc(cx, cy, r, startDeg, extentDeg int) {
	c.DrawArc(cx-r, cy-r, 2*r, 2*r, startDeg, extentDeg)
}

// FillCircleArc fills a pie wedge of the circle of radius r centred on
// (cx, cy).
func (c *Canvas) FillCircleArc(cx, cy, r, startDeg, extentDeg int) {
	c.FillArc(cx-r, cy-r, 2*r, 2*r, startDeg, extentDeg)
}

// DrawPolygon outlines the closed polygon through pts. A single point is
// drawn as a dot.
func (c *Canvas) DrawPolygon(pts []image.Point) {
	c.lock()
	defer c.done()

	c.pen().polyline(pts, true)
}

// FillPolygon fills the polygon through pts with the non-zero winding
// rule. Fewer than three points fill nothing.
func (c *Canvas) FillPolygon(pts []image.Point) {
	c.lock()
	defer c.done()

	c.filler.fill(c.pm.Image(), polygonPoints(pts), c.ink.RGBA())
}

// DrawText draws s starting 4 pixels right of x, vertically centred on y.
func (c *Canvas) DrawText(x, y int, s string) {
	c.lock()
	defer c.done()

	if c.face == nil || s == "" {
		return
	}
	m := c.face.Metrics()
	baseline := float64(int(float64(y) + m.Height/2 - m.Descent/2))
	text.Draw(c.pm.Image(), c.face, s, float64(x+4), baseline, c.ink.NRGBA())
}

// TextWidth returns the advance width of s in the canvas font, in pixels.
func (c *Canvas) TextWidth(s string) float64 {
	c.check()
	return c.shaper.Advance(c.face, s)
}

// Clear resets the whole raster to transparent.
func (c *Canvas) Clear() {
	c.lock()
	defer c.done()

	c.pm.Clear()
}

// SetTurtleMode turns the turtle overlay on or off.
func (c *Canvas) SetTurtleMode(on bool) {
	c.lock()
	defer c.done()

	c.overlay = on
}

// TurtleMode reports whether the turtle overlay is shown.
func (c *Canvas) TurtleMode() bool {
	c.check()
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.overlay
}

// Invalidate requests a redraw. Like drawing, it panics with
// ErrWindowStopped once the window stopped.
func (c *Canvas) Invalidate() {
	c.lock()
	c.done()
}

// Snapshot returns a copy of the raster. The overlay is never part of it.
func (c *Canvas) Snapshot() *image.RGBA {
	c.check()
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.pm.Snapshot()
}

// Render composes a frame into dst: the background, the raster on top,
// then the turtle marker when the overlay is on. dst must have the canvas
// bounds.
func (c *Canvas) Render(dst *image.RGBA) {
	c.check()

	// Read the turtle before taking the canvas lock: turtle motions hold
	// their own lock while drawing.
	pos := c.turtle.State().Position().Pixel()

	c.mu.RLock()
	draw.Draw(dst, dst.Bounds(), image.NewUniform(c.background), image.Point{}, draw.Src)
	c.pm.CopyTo(dst)
	overlay := c.overlay
	c.mu.RUnlock()

	if overlay {
		c.markerMu.Lock()
		disc := boxEllipse(pos.X-markerOffset, pos.Y-markerOffset, markerSize, markerSize)
		c.marker.fill(dst, disc.outline(), markerColor)
		c.markerMu.Unlock()
	}
}

// stop marks the canvas as belonging to a stopped window.
func (c *Canvas) stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopped = true
}

// check panics unless c was created by NewCanvas.
func (c *Canvas) check() {
	if c == nil || c.pm == nil {
		panic(fmt.Errorf("%w: no canvas", ErrNotStarted))
	}
}

// lock takes the write lock for a mutating call, panicking when drawing
// is not allowed.
func (c *Canvas) lock() {
	c.check()
	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		panic(fmt.Errorf("%w: drawing after Stop", ErrWindowStopped))
	}
}

// done releases the write lock and requests a redraw.
func (c *Canvas) done() {
	c.mu.Unlock()
	c.schedule()
}

func (c *Canvas) schedule() {
	if c.invalidate != nil {
		c.invalidate()
	}
}

func (c *Canvas) pen() hairline {
	return hairline{pm: c.pm, c: c.ink.RGBA()}
}
