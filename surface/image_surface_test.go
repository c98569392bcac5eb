// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

var (
	_ Surface = (*ImageSurface)(nil)
	_ Surface = (*TerminalSurface)(nil)
)

func solidFrame(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestImageSurfaceLifecycle(t *testing.T) {
	s := NewImageSurface()

	if err := s.Present(solidFrame(2, 2, color.RGBA{A: 255})); !errors.Is(err, ErrNotOpen) {
		t.Errorf("Present() before Open error = %v, want ErrNotOpen", err)
	}
	if s.Frame() != nil {
		t.Error("Frame() before any Present should be nil")
	}

	if err := s.Open("Drawing", 4, 3); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if s.Title() != "Drawing" {
		t.Errorf("Title() = %q, want %q", s.Title(), "Drawing")
	}
	if w, h := s.Size(); w != 4 || h != 3 {
		t.Errorf("Size() = %dx%d, want 4x3", w, h)
	}
	if err := s.Open("again", 4, 3); !errors.Is(err, ErrAlreadyOpen) {
		t.Errorf("second Open() error = %v, want ErrAlreadyOpen", err)
	}

	if err := s.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if !s.Closed() {
		t.Error("Closed() = false after Close")
	}
	if err := s.Present(solidFrame(4, 3, color.RGBA{A: 255})); !errors.Is(err, ErrNotOpen) {
		t.Errorf("Present() after Close error = %v, want ErrNotOpen", err)
	}
}

func TestImageSurfaceInvalidSize(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative", -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := NewImageSurface().Open("x", tt.w, tt.h); !errors.Is(err, ErrInvalidSize) {
				t.Errorf("Open(%d, %d) error = %v, want ErrInvalidSize", tt.w, tt.h, err)
			}
		})
	}
}

func TestImageSurfacePresentCopies(t *testing.T) {
	s := NewImageSurface()
	if err := s.Open("Drawing", 2, 2); err != nil {
		t.Fatal(err)
	}

	red := color.RGBA{R: 255, A: 255}
	frame := solidFrame(2, 2, red)
	if err := s.Present(frame); err != nil {
		t.Fatalf("Present() error = %v", err)
	}

	frame.SetRGBA(0, 0, color.RGBA{B: 255, A: 255})
	got := s.Frame()
	if got.RGBAAt(0, 0) != red {
		t.Errorf("Frame() pixel = %v, want %v (frame must be copied)", got.RGBAAt(0, 0), red)
	}

	got.SetRGBA(1, 1, color.RGBA{G: 255, A: 255})
	if s.Frame().RGBAAt(1, 1) != red {
		t.Error("Frame() must return a copy")
	}

	if err := s.Present(frame); err != nil {
		t.Fatal(err)
	}
	if s.Presents() != 2 {
		t.Errorf("Presents() = %d, want 2", s.Presents())
	}
}

func TestImageSurfaceFailOpen(t *testing.T) {
	s := NewImageSurface()
	boom := errors.New("no display")
	s.FailOpen(boom)

	if err := s.Open("Drawing", 10, 10); !errors.Is(err, boom) {
		t.Fatalf("Open() error = %v, want %v", err, boom)
	}
	if err := s.Open("Drawing", 10, 10); err != nil {
		t.Errorf("Open() after injected failure error = %v, want nil", err)
	}
}
