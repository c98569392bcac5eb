// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the visible targets a drawing window presents
// its frames to.
//
// A Surface receives fully composed frames. It never draws on its own: the
// window's render goroutine composes background, raster and overlay into an
// *image.RGBA and hands it to Present. This keeps every backend trivial and
// lets the same drawing code run on:
//
//   - ImageSurface: headless, keeps the last frame in memory
//   - TerminalSurface: tcell screen, two pixels per character cell
//   - Third-party backends via the registry
//
// # Lifecycle
//
// Open is called exactly once, from the render goroutine, with the window
// title and frame size. Present is then called for every redraw. Close is
// called when the window stops and must be idempotent.
//
// # Registry
//
// Backends register a factory under a name and a priority:
//
//	func init() {
//	    surface.Register("sdl", 80, newSDLSurface, sdlAvailable)
//	}
//
//	// Later:
//	s, err := surface.NewSurfaceByName("sdl")
//	// or pick the best available backend:
//	s, err := surface.NewSurface()
//
// "image" (priority 10) and "terminal" (priority 50, only when stdout is a
// terminal) are registered by default.
package surface
