package facile

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an ink color with red, green and blue channels.
//
// Channels are nominally in [0, 255] but are not validated: out-of-range
// values are clamped when a pixel is written.
type RGB struct {
	R, G, B int
}

// NRGBA converts the ink to an opaque color.NRGBA, clamping each channel.
func (c RGB) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: clamp255(c.R),
		G: clamp255(c.G),
		B: clamp255(c.B),
		A: 255,
	}
}

// RGBA converts the ink to an opaque color.RGBA, clamping each channel.
func (c RGB) RGBA() color.RGBA {
	n := c.NRGBA()
	return color.RGBA{R: n.R, G: n.G, B: n.B, A: 255}
}

// String returns the color as "rgb(r, g, b)".
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Gray returns the gray ink with all three channels set to v.
func Gray(v int) RGB {
	return RGB{R: v, G: v, B: v}
}

// ParseHex parses a CSS hex color such as "#ff8800" or "#f80".
func ParseHex(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("facile: invalid hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: int(r), G: int(g), B: int(b)}, nil
}

// clamp255 restricts a channel value to [0, 255].
func clamp255(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Common colors
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
	Red   = RGB{255, 0, 0}
	Green = RGB{0, 255, 0}
	Blue  = RGB{0, 0, 255}
)
