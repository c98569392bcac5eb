// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"image"
	"sync"
)

// ImageSurface is a headless surface that keeps a copy of the last frame.
//
// It is the default surface when no terminal is attached and the surface
// used by tests to inspect what a window actually presented.
//
// Example:
//
//	s := surface.NewImageSurface()
//	w, _ := facile.Start(200, 200, facile.WithSurface(s))
//	w.Canvas().DrawLine(0, 0, 199, 199)
//	w.Sync()
//	img := s.Frame()
type ImageSurface struct {
	mu sync.Mutex

	title  string
	width  int
	height int

	frame    *image.RGBA
	presents int

	opened bool
	closed bool

	// failOpen makes the next Open fail.
	failOpen error
}

// NewImageSurface creates an unopened headless surface.
func NewImageSurface() *ImageSurface {
	return &ImageSurface{}
}

// FailOpen makes the next call to Open return err. A nil err restores
// normal behavior.
func (s *ImageSurface) FailOpen(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failOpen = err
}

// Open implements Surface.
func (s *ImageSurface) Open(title string, width, height int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.failOpen; err != nil {
		s.failOpen = nil
		return err
	}
	if s.opened {
		return ErrAlreadyOpen
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	s.title = title
	s.width = width
	s.height = height
	s.opened = true
	return nil
}

// Present implements Surface. It copies frame.
func (s *ImageSurface) Present(frame *image.RGBA) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.opened || s.closed {
		return ErrNotOpen
	}

	if s.frame == nil || s.frame.Rect != frame.Rect {
		s.frame = image.NewRGBA(frame.Rect)
	}
	copy(s.frame.Pix, frame.Pix)
	s.presents++
	return nil
}

// Close implements Surface.
func (s *ImageSurface) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return nil
}

// Frame returns a copy of the last presented frame, or nil if nothing
// was presented yet.
func (s *ImageSurface) Frame() *image.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.frame == nil {
		return nil
	}
	out := image.NewRGBA(s.frame.Rect)
	copy(out.Pix, s.frame.Pix)
	return out
}

// Presents returns how many frames were presented.
func (s *ImageSurface) Presents() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.presents
}

// Title returns the title passed to Open.
func (s *ImageSurface) Title() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.title
}

// Size returns the frame size passed to Open.
func (s *ImageSurface) Size() (width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.width, s.height
}

// Closed reports whether Close has been called.
func (s *ImageSurface) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.closed
}
