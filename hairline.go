package facile

import (
	"image"
	"image/color"
	"math"
)

// hairlineLimit bounds the coordinates walked pixel by pixel. Segments
// reaching further are clipped to the pixmap first so a far-away endpoint
// never turns into a billion-step loop.
const hairlineLimit = 1 << 15

// hairline blits aliased one-pixel-wide lines into a Pixmap.
// Horizontal and vertical runs are written as spans.
type hairline struct {
	pm *Pixmap
	c  color.RGBA
}

// line draws the segment from (x0, y0) to (x1, y1), both endpoints included.
func (h hairline) line(x0, y0, x1, y1 int) {
	if !h.inLimit(x0, y0) || !h.inLimit(x1, y1) {
		var ok bool
		x0, y0, x1, y1, ok = h.clip(x0, y0, x1, y1)
		if !ok {
			return
		}
	}

	switch {
	case y0 == y1:
		h.pm.FillSpan(min(x0, x1), max(x0, x1)+1, y0, h.c)
		return
	case x0 == x1:
		for y := min(y0, y1); y <= max(y0, y1); y++ {
			h.pm.SetPixel(x0, y, h.c)
		}
		return
	}

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	err := dx + dy
	for {
		h.pm.SetPixel(x0, y0, h.c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// polyline draws consecutive segments through pts, closing the loop when
// closed is set. A single point is drawn as a dot.
func (h hairline) polyline(pts []image.Point, closed bool) {
	switch len(pts) {
	case 0:
		return
	case 1:
		h.pm.SetPixel(pts[0].X, pts[0].Y, h.c)
		return
	}
	for i := 1; i < len(pts); i++ {
		h.line(pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y)
	}
	if closed {
		last := pts[len(pts)-1]
		h.line(last.X, last.Y, pts[0].X, pts[0].Y)
	}
}

func (h hairline) inLimit(x, y int) bool {
	return x > -hairlineLimit && x < hairlineLimit && y > -hairlineLimit && y < hairlineLimit
}

// clip trims a segment to the pixmap bounds grown by one pixel using the
// Liang-Barsky parametric test. It reports false when nothing is visible.
func (h hairline) clip(x0, y0, x1, y1 int) (int, int, int, int, bool) {
	minX, minY := -1.0, -1.0
	maxX, maxY := float64(h.pm.Width()), float64(h.pm.Height())

	fx0, fy0 := float64(x0), float64(y0)
	dx, dy := float64(x1)-fx0, float64(y1)-fy0

	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, fx0 - minX},
		{dx, maxX - fx0},
		{-dy, fy0 - minY},
		{dy, maxY - fy0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = min(t1, r)
		}
	}

	return int(math.Round(fx0 + t0*dx)), int(math.Round(fy0 + t0*dy)),
		int(math.Round(fx0 + t1*dx)), int(math.Round(fy0 + t1*dy)), true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
