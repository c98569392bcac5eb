// Package facile provides a small interactive 2D drawing engine.
//
// # Overview
//
// facile draws on a persistent raster shown in a window. Two coordinate
// paradigms share the same raster: absolute integer coordinates for
// primitives (lines, rectangles, ovals, arcs, polygons, text) and a
// relative turtle that moves and turns from its own position.
//
// # Quick Start
//
//	import "github.com/gogpu/facile"
//
//	w, err := facile.Start(200, 200)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer w.Stop()
//
//	c := w.Canvas()
//	for i := 0; i < 200; i += 4 {
//	    c.SetGray(i)
//	    c.DrawLine(0, i, 199, 199-i)
//	    c.DrawLine(i, 0, 199-i, 199)
//	}
//
//	t := c.Turtle()
//	t.JumpTo(100, 100)
//	for range 4 {
//	    t.LineForward(50)
//	    t.TurnDegrees(90)
//	}
//
// # Windows
//
// At most one window exists per process. Start builds it on a dedicated
// render goroutine and returns once its surface is open; calling Start
// again while it is active returns the same window. Stop closes it, after
// which a new Start builds a fresh, blank window.
//
// Drawing calls update the raster synchronously and only request a
// redraw. Requests are coalesced; Sync waits for a frame that reflects
// every earlier call.
//
// # Surfaces
//
// Frames are presented on a surface.Surface. The terminal surface is used
// when stdout is a terminal, the headless image surface otherwise. Use
// WithSurface or WithSurfaceName to choose.
//
// # Errors
//
// Drawing without a window, or after Stop, is a programming error and
// panics with an error wrapping ErrNotStarted or ErrWindowStopped. Start
// returns an error wrapping ErrStartFailed when the window cannot be
// built.
//
// # Logging
//
// The package is silent by default. Use SetLogger to route lifecycle and
// redraw events to a slog.Logger.
package facile
