package facile

import (
	"image"
	"image/color"
	"image/draw"
)

// Pixmap is the persistent backing raster of a Canvas.
//
// Every write is clipped to the pixmap bounds; out-of-range coordinates are
// silently ignored. Pixmap is not safe for concurrent use: Canvas guards it
// with its own lock.
type Pixmap struct {
	width  int
	height int
	img    *image.RGBA
}

// NewPixmap creates a fully transparent pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Bounds returns the pixmap rectangle.
func (p *Pixmap) Bounds() image.Rectangle {
	return p.img.Rect
}

// Image returns the underlying image.RGBA.
// This is a direct reference, not a copy.
func (p *Pixmap) Image() *image.RGBA {
	return p.img
}

// SetPixel writes an opaque pixel, replacing whatever was there.
func (p *Pixmap) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := p.img.PixOffset(x, y)
	p.img.Pix[i+0] = c.R
	p.img.Pix[i+1] = c.G
	p.img.Pix[i+2] = c.B
	p.img.Pix[i+3] = c.A
}

// GetPixel returns the pixel at (x, y), or transparent outside the bounds.
func (p *Pixmap) GetPixel(x, y int) color.RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.RGBA{}
	}
	return p.img.RGBAAt(x, y)
}

// FillSpan fills the horizontal span [x0, x1) on row y.
func (p *Pixmap) FillSpan(x0, x1, y int, c color.RGBA) {
	if y < 0 || y >= p.height {
		return
	}
	x0 = max(x0, 0)
	x1 = min(x1, p.width)
	if x0 >= x1 {
		return
	}

	i := p.img.PixOffset(x0, y)
	row := p.img.Pix[i : i+(x1-x0)*4]
	for j := 0; j < len(row); j += 4 {
		row[j+0] = c.R
		row[j+1] = c.G
		row[j+2] = c.B
		row[j+3] = c.A
	}
}

// FillRect fills the rectangle [x, x+w) x [y, y+h).
func (p *Pixmap) FillRect(x, y, w, h int, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	y0 := max(y, 0)
	y1 := min(y+h, p.height)
	for row := y0; row < y1; row++ {
		p.FillSpan(x, x+w, row, c)
	}
}

// Clear resets every pixel to fully transparent.
func (p *Pixmap) Clear() {
	clear(p.img.Pix)
}

// CopyTo composites the pixmap over dst, which must have the same bounds.
func (p *Pixmap) CopyTo(dst *image.RGBA) {
	draw.Draw(dst, dst.Bounds(), p.img, image.Point{}, draw.Over)
}

// Snapshot returns a copy of the pixmap contents.
func (p *Pixmap) Snapshot() *image.RGBA {
	out := image.NewRGBA(p.img.Rect)
	copy(out.Pix, p.img.Pix)
	return out
}
