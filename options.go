package facile

import (
	"github.com/gogpu/facile/surface"
	"github.com/gogpu/facile/text"
)

// Defaults used when no option overrides them.
const (
	DefaultWidth    = 300
	DefaultHeight   = 300
	DefaultTitle    = "Drawing"
	DefaultFontSize = 12
)

// Option configures a Window during Start.
//
// Example:
//
//	// Headless window, handy in tests
//	w, err := facile.Start(200, 200, facile.WithSurface(surface.NewImageSurface()))
//
//	// Named backend from the surface registry
//	w, err := facile.Start(200, 200, facile.WithSurfaceName("terminal"))
type Option func(*windowOptions)

type windowOptions struct {
	surface     surface.Surface
	surfaceName string
	title       string
	background  RGB
	fontSize    float64
}

func defaultWindowOptions() windowOptions {
	return windowOptions{
		title:      DefaultTitle,
		background: White,
		fontSize:   DefaultFontSize,
	}
}

// WithSurface presents frames on s. It takes precedence over WithSurfaceName.
func WithSurface(s surface.Surface) Option {
	return func(o *windowOptions) {
		o.surface = s
	}
}

// WithSurfaceName picks a backend from the surface registry by name.
// Without either surface option the best available backend is used.
func WithSurfaceName(name string) Option {
	return func(o *windowOptions) {
		o.surfaceName = name
	}
}

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(o *windowOptions) {
		o.title = title
	}
}

// WithBackground sets the colour shown behind the transparent raster.
func WithBackground(c RGB) Option {
	return func(o *windowOptions) {
		o.background = c
	}
}

// WithFontSize sets the DrawText font size in pixels.
func WithFontSize(size float64) Option {
	return func(o *windowOptions) {
		o.fontSize = size
	}
}

// CanvasOption configures a Canvas during creation.
type CanvasOption func(*canvasOptions)

type canvasOptions struct {
	background RGB
	font       *text.FontSource
	fontSize   float64
	invalidate func()
}

func defaultCanvasOptions() canvasOptions {
	return canvasOptions{
		background: White,
		fontSize:   DefaultFontSize,
	}
}

// WithCanvasBackground sets the colour Render paints behind the raster.
func WithCanvasBackground(c RGB) CanvasOption {
	return func(o *canvasOptions) {
		o.background = c
	}
}

// WithFont sets the DrawText font. A nil source keeps the embedded Go font.
func WithFont(source *text.FontSource, size float64) CanvasOption {
	return func(o *canvasOptions) {
		o.font = source
		o.fontSize = size
	}
}

// WithInvalidate registers the function every mutating call uses to
// request a redraw. It must not block.
func WithInvalidate(fn func()) CanvasOption {
	return func(o *canvasOptions) {
		o.invalidate = fn
	}
}
