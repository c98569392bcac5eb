package facile

import (
	"image"
	"math"
)

// Point represents a position in canvas coordinates (x right, y down).
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Advance returns the point reached by travelling distance along heading
// (radians, counter-clockwise from the positive x-axis).
func (p Point) Advance(heading, distance float64) Point {
	return Point{
		X: p.X + distance*math.Cos(heading),
		Y: p.Y + distance*math.Sin(heading),
	}
}

// Pixel returns the raster pixel containing p.
func (p Point) Pixel() image.Point {
	return image.Point{X: int(math.Floor(p.X)), Y: int(math.Floor(p.Y))}
}
