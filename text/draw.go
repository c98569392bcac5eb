package text

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Draw renders s onto dst with (x, y) as the baseline origin.
// Glyphs falling outside dst are clipped.
func Draw(dst draw.Image, face *Face, s string, x, y float64, col color.Color) {
	if s == "" || face == nil {
		return
	}

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face.face,
		Dot:  fixed.Point26_6{X: floatToFixed(x), Y: floatToFixed(y)},
	}
	d.DrawString(s)
}

// Bounds returns the pixel bounds s would cover when drawn at the origin.
func Bounds(face *Face, s string) image.Rectangle {
	b, _ := font.BoundString(face.face, s)
	return image.Rect(b.Min.X.Floor(), b.Min.Y.Floor(), b.Max.X.Ceil(), b.Max.Y.Ceil())
}
