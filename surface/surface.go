// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"image"
)

// Surface is a visible target for composed frames.
//
// Surfaces are driven from a single goroutine (the window's render
// goroutine). Implementations that expose extra accessors to other
// goroutines, like ImageSurface.Frame, synchronize internally.
type Surface interface {
	// Open makes the surface visible with the given title and frame size.
	Open(title string, width, height int) error

	// Present displays frame. The frame is owned by the caller and may be
	// reused after Present returns, so implementations must copy what
	// they keep.
	Present(frame *image.RGBA) error

	// Close releases all resources associated with the surface.
	// Close is idempotent; multiple calls are safe.
	Close() error
}

// Errors returned by the built-in surfaces.
var (
	// ErrNotOpen is returned by Present before Open or after Close.
	ErrNotOpen = errors.New("surface: not open")

	// ErrAlreadyOpen is returned when Open is called twice.
	ErrAlreadyOpen = errors.New("surface: already open")

	// ErrInvalidSize is returned when Open receives a non-positive size.
	ErrInvalidSize = errors.New("surface: invalid size")
)
