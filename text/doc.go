// Package text provides the font handling behind Canvas.DrawText.
//
// The pipeline separates three concerns:
//
//   - FontSource: a parsed TTF/OTF font, shared across faces
//   - Face: a font instance at a pixel size, used to draw and measure
//   - Shaper: HarfBuzz shaping via go-text/typesetting for advance widths
//
// Glyphs are rasterized with golang.org/x/image/font. Mixed-direction
// strings are split into bidi runs (golang.org/x/text/unicode/bidi)
// before shaping so each run is measured in its own direction.
//
// # Example usage
//
//	face, err := text.DefaultFontSource().Face(12)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer face.Close()
//
//	text.Draw(img, face, "Hello", 10, 20, color.Black)
//	w := text.NewShaper().Advance(face, "Hello")
package text
