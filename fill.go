package facile

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"
)

// filler rasterizes closed polygons with coverage-based edges.
//
// Overlapping sub-areas are painted once (non-zero winding). A filler is
// bound to one goroutine: Canvas owns one for the raster and the render
// pass owns another for the overlay marker.
type filler struct {
	z    *vector.Rasterizer
	size image.Point
}

func newFiller(width, height int) *filler {
	return &filler{
		z:    vector.NewRasterizer(width, height),
		size: image.Pt(width, height),
	}
}

// fill paints the polygon through pts over dst using source-over compositing.
// Fewer than three points cover no area and draw nothing.
func (f *filler) fill(dst *image.RGBA, pts []Point, c color.RGBA) {
	if len(pts) < 3 {
		return
	}

	f.z.Reset(f.size.X, f.size.Y)
	f.z.DrawOp = draw.Over
	f.z.MoveTo(fillCoord(pts[0].X), fillCoord(pts[0].Y))
	for _, p := range pts[1:] {
		f.z.LineTo(fillCoord(p.X), fillCoord(p.Y))
	}
	f.z.ClosePath()

	f.z.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
}

// polygonPoints converts integer vertices to fill coordinates. Integer
// coordinates name pixel corners, the same convention FillRect uses.
func polygonPoints(pts []image.Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = Point{X: float64(p.X), Y: float64(p.Y)}
	}
	return out
}

// fillCoord narrows a coordinate for the rasterizer, pinning far-away
// vertices to the same limit hairlines clip at.
func fillCoord(v float64) float32 {
	return float32(max(min(v, hairlineLimit), -hairlineLimit))
}
