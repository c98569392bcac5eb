package facile

import (
	"image"
	"math"
)

// Arc angles at the drawing boundary are integer degrees measured from the
// 3 o'clock direction, positive values turning counter-clockwise on screen.
// Everything below works in radians.

// ellipse describes the ellipse inscribed in an integer bounding box.
type ellipse struct {
	cx, cy float64
	rx, ry float64
}

// boxEllipse returns the ellipse inscribed in the box (x, y, w, h).
func boxEllipse(x, y, w, h int) ellipse {
	return ellipse{
		cx: float64(x) + float64(w)/2,
		cy: float64(y) + float64(h)/2,
		rx: float64(w) / 2,
		ry: float64(h) / 2,
	}
}

// at returns the point of the ellipse at angle theta. Screen y grows
// downward, so the sine term is subtracted to keep angles counter-clockwise.
func (e ellipse) at(theta float64) Point {
	return Point{
		X: e.cx + e.rx*math.Cos(theta),
		Y: e.cy - e.ry*math.Sin(theta),
	}
}

// maxSegments bounds the flattening of huge ellipses, which are mostly
// off-canvas anyway.
const maxSegments = 4096

// segments returns how many chords approximate a sweep of the given angle.
// Chords stay around two pixels long so hairline outlines look round.
func (e ellipse) segments(sweep float64) int {
	r := max(e.rx, e.ry)
	n := math.Ceil(math.Abs(sweep) * r / 2)
	return int(max(min(n, maxSegments), 8))
}

// arc flattens the arc from start sweeping by sweep radians.
func (e ellipse) arc(start, sweep float64) []Point {
	n := e.segments(sweep)
	pts := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		pts = append(pts, e.at(start+sweep*float64(i)/float64(n)))
	}
	return pts
}

// outline flattens the full ellipse as a closed loop (first point not repeated).
func (e ellipse) outline() []Point {
	pts := e.arc(0, 2*math.Pi)
	return pts[:len(pts)-1]
}

// pie returns the closed wedge bounded by the arc and the centre.
func (e ellipse) pie(start, sweep float64) []Point {
	pts := e.arc(start, sweep)
	if math.Abs(sweep) >= 2*math.Pi {
		return pts[:len(pts)-1]
	}
	return append(pts, Point{X: e.cx, Y: e.cy})
}

// arcRadians converts boundary degrees to a start angle and sweep in
// radians. Sweeps beyond a full turn are clamped to one turn.
func arcRadians(startDeg, extentDeg int) (start, sweep float64) {
	extent := max(min(extentDeg, 360), -360)
	return degToRad(float64(startDeg)), degToRad(float64(extent))
}

func degToRad(d float64) float64 {
	return d * math.Pi / 180
}

func radToDeg(r float64) float64 {
	return r * 180 / math.Pi
}

// rectOutline returns the corners of the outline covering w+1 by h+1 pixels.
func rectOutline(x, y, w, h int) []image.Point {
	return []image.Point{
		{X: x, Y: y},
		{X: x + w, Y: y},
		{X: x + w, Y: y + h},
		{X: x, Y: y + h},
	}
}

// pixels rounds a flattened shape to raster pixels for hairline drawing,
// dropping consecutive duplicates.
func pixels(pts []Point) []image.Point {
	out := make([]image.Point, 0, len(pts))
	for _, p := range pts {
		q := image.Point{X: int(math.Round(p.X)), Y: int(math.Round(p.Y))}
		if n := len(out); n > 0 && out[n-1] == q {
			continue
		}
		out = append(out, q)
	}
	return out
}
