package text

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Metrics holds the vertical metrics of a face, in pixels.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the line.
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the line.
	Descent float64

	// Height is the recommended line height, including leading.
	Height float64
}

// Face is a FontSource instantiated at a pixel size.
//
// Face is NOT safe for concurrent use: the underlying glyph rasterizer
// keeps per-call buffers. Canvas only uses its face under its own lock.
type Face struct {
	source *FontSource
	size   float64
	face   font.Face
}

// Face creates a Face at the given size in pixels.
func (s *FontSource) Face(size float64) (*Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}

	f, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("text: failed to create face: %w", err)
	}

	return &Face{source: s, size: size, face: f}, nil
}

// Source returns the FontSource the face was created from.
func (f *Face) Source() *FontSource {
	return f.source
}

// Size returns the face size in pixels.
func (f *Face) Size() float64 {
	return f.size
}

// Metrics returns the vertical metrics of the face.
func (f *Face) Metrics() Metrics {
	m := f.face.Metrics()
	return Metrics{
		Ascent:  fixedToFloat(m.Ascent),
		Descent: fixedToFloat(m.Descent),
		Height:  fixedToFloat(m.Height),
	}
}

// Close releases the glyph rasterizer.
func (f *Face) Close() error {
	return f.face.Close()
}

// floatToFixed converts a float64 to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
