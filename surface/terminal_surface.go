// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"image"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
	"golang.org/x/term"
)

// halfBlock is drawn in every picture cell: its foreground paints the upper
// pixel and its background the lower one.
const halfBlock = '▀'

// TerminalSurface presents frames on a terminal through tcell.
//
// The first row shows the window title. Below it every character cell
// shows two vertically stacked pixels. Frames larger than the screen are
// downsampled by an integer factor, averaging the pixels of each block.
type TerminalSurface struct {
	mu     sync.Mutex
	screen tcell.Screen

	title  string
	width  int
	height int

	opened bool
	closed bool
}

// NewTerminalSurface creates a surface on the process terminal. The
// screen is created and initialized by Open.
func NewTerminalSurface() *TerminalSurface {
	return &TerminalSurface{}
}

// NewTerminalSurfaceWithScreen creates a surface on an existing screen,
// for example a tcell simulation screen. Open initializes it.
func NewTerminalSurfaceWithScreen(screen tcell.Screen) *TerminalSurface {
	return &TerminalSurface{screen: screen}
}

// TerminalAvailable reports whether stdout is a terminal.
func TerminalAvailable() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Open implements Surface.
func (t *TerminalSurface) Open(title string, width, height int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.opened {
		return ErrAlreadyOpen
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	if t.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("surface: terminal: %w", err)
		}
		t.screen = screen
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("surface: terminal init: %w", err)
	}
	t.screen.HideCursor()
	t.screen.Clear()

	t.title = title
	t.width = width
	t.height = height
	t.opened = true
	return nil
}

// Present implements Surface.
func (t *TerminalSurface) Present(frame *image.RGBA) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.opened || t.closed {
		return ErrNotOpen
	}

	cols, rows := t.screen.Size()
	t.screen.Clear()
	t.drawTitle(cols)

	if rows > 1 && cols > 0 {
		t.drawFrame(frame, cols, rows-1)
	}

	t.screen.Show()
	return nil
}

// Close implements Surface.
func (t *TerminalSurface) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.opened || t.closed {
		t.closed = true
		return nil
	}
	t.closed = true
	t.screen.Fini()
	return nil
}

// drawTitle centres the title on the first row, cutting it at a grapheme
// boundary when it does not fit.
func (t *TerminalSurface) drawTitle(cols int) {
	style := tcell.StyleDefault.Reverse(true)
	for x := 0; x < cols; x++ {
		t.screen.SetContent(x, 0, ' ', nil, style)
	}

	x := max((cols-uniseg.StringWidth(t.title))/2, 0)
	g := uniseg.NewGraphemes(t.title)
	for g.Next() {
		runes := g.Runes()
		w := g.Width()
		if x+w > cols {
			break
		}
		t.screen.SetContent(x, 0, runes[0], runes[1:], style)
		x += w
	}
}

// drawFrame paints frame into the cols by rows cell area below the title.
func (t *TerminalSurface) drawFrame(frame *image.RGBA, cols, rows int) {
	b := frame.Bounds()
	scale := downscale(b.Dx(), b.Dy(), cols, rows*2)

	cellsX := (b.Dx() + scale - 1) / scale
	cellsY := (b.Dy() + 2*scale - 1) / (2 * scale)

	for cy := 0; cy < cellsY && cy < rows; cy++ {
		for cx := 0; cx < cellsX && cx < cols; cx++ {
			x0 := b.Min.X + cx*scale
			y0 := b.Min.Y + cy*2*scale

			style := tcell.StyleDefault
			if c, ok := average(frame, image.Rect(x0, y0, x0+scale, y0+scale)); ok {
				style = style.Foreground(c)
			}
			if c, ok := average(frame, image.Rect(x0, y0+scale, x0+scale, y0+2*scale)); ok {
				style = style.Background(c)
			}
			t.screen.SetContent(cx, cy+1, halfBlock, nil, style)
		}
	}
}

// downscale returns the smallest integer factor that fits a w by h frame
// into maxW by maxH pixels.
func downscale(w, h, maxW, maxH int) int {
	s := 1
	if maxW > 0 {
		s = max(s, (w+maxW-1)/maxW)
	}
	if maxH > 0 {
		s = max(s, (h+maxH-1)/maxH)
	}
	return s
}

// average returns the mean colour of the pixels of frame inside r.
func average(frame *image.RGBA, r image.Rectangle) (tcell.Color, bool) {
	r = r.Intersect(frame.Bounds())
	if r.Empty() {
		return tcell.ColorDefault, false
	}

	var sr, sg, sb, n int
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := frame.RGBAAt(x, y)
			sr += int(c.R)
			sg += int(c.G)
			sb += int(c.B)
			n++
		}
	}
	return tcell.NewRGBColor(int32(sr/n), int32(sg/n), int32(sb/n)), true
}
