package facile

import (
	"fmt"
	"image"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gogpu/facile/surface"
)

// State is the lifecycle state of a Window.
type State int32

// Window states. A window moves forward only; a stopped window is never
// reused, a later Start builds a new one.
const (
	StateAbsent State = iota
	StateInitializing
	StateActive
	StateDisposed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateAbsent:
		return "Absent"
	case StateInitializing:
		return "Initializing"
	case StateActive:
		return "Active"
	case StateDisposed:
		return "Disposed"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// The process-wide window slot. startMu is held for the whole of Start and
// Stop, so a concurrent Start waits until the window being built is ready.
var (
	startMu sync.Mutex
	current *Window
)

type requestKind int

const (
	requestConstruct requestKind = iota
	requestSync
	requestStop
)

type request struct {
	kind  requestKind
	reply chan error
}

// Window binds a Canvas to a visible Surface.
//
// A dedicated render goroutine, locked to its OS thread, owns the surface:
// it builds the canvas, composes frames and presents them. Drawing calls
// only request redraws, which are coalesced, so the caller never waits for
// a repaint unless it calls Sync.
type Window struct {
	width  int
	height int
	opts   windowOptions

	surface surface.Surface
	canvas  *Canvas
	frame   *image.RGBA

	state  atomic.Int32
	frames atomic.Uint64

	requests chan request
	redraw   chan struct{}
	done     chan struct{}
}

// Start opens the drawing window and returns it.
//
// If a window is already initializing or active, Start waits for it to be
// ready and returns that same window; width, height and opts are ignored.
// Otherwise it builds a new window and blocks until its surface is open
// and its canvas exists. On failure the error is logged, the slot is freed
// so a later Start can retry, and the returned error wraps ErrStartFailed.
func Start(width, height int, opts ...Option) (*Window, error) {
	startMu.Lock()
	defer startMu.Unlock()

	if current != nil {
		return current, nil
	}

	if width <= 0 || height <= 0 {
		err := fmt.Errorf("%w: %w: %dx%d", ErrStartFailed, ErrInvalidDimensions, width, height)
		Logger().Error("window construction failed", "width", width, "height", height, "err", err)
		return nil, err
	}

	o := defaultWindowOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s, err := o.newSurface()
	if err != nil {
		Logger().Error("window construction failed", "width", width, "height", height, "err", err)
		return nil, fmt.Errorf("%w: %w", ErrStartFailed, err)
	}

	w := &Window{
		width:    width,
		height:   height,
		opts:     o,
		surface:  s,
		requests: make(chan request),
		redraw:   make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	w.state.Store(int32(StateInitializing))
	current = w

	go w.run()

	if err := w.call(requestConstruct); err != nil {
		Logger().Error("window construction failed", "width", width, "height", height, "err", err)
		w.state.Store(int32(StateAbsent))
		current = nil
		return nil, fmt.Errorf("%w: %w", ErrStartFailed, err)
	}

	w.state.Store(int32(StateActive))
	Logger().Info("window started", "width", width, "height", height, "surface", fmt.Sprintf("%T", s))
	return w, nil
}

// StartDefault starts a DefaultWidth by DefaultHeight window.
func StartDefault(opts ...Option) (*Window, error) {
	return Start(DefaultWidth, DefaultHeight, opts...)
}

// Current returns the initializing or active window, or nil.
func Current() *Window {
	startMu.Lock()
	defer startMu.Unlock()

	return current
}

// Stop closes the window. Its canvas refuses further drawing, the render
// goroutine exits, the surface is closed and the process-wide slot is
// freed. Stop is idempotent; only the first call can return an error,
// the one from closing the surface.
func (w *Window) Stop() error {
	startMu.Lock()
	defer startMu.Unlock()

	if w.State() != StateActive {
		return nil
	}

	w.state.Store(int32(StateDisposed))
	w.canvas.stop()
	err := w.call(requestStop)
	<-w.done

	if current == w {
		current = nil
	}
	Logger().Info("window stopped", "width", w.width, "height", w.height, "frames", w.frames.Load())
	return err
}

// Sync blocks until a frame reflecting every drawing call made before it
// has been presented. It returns ErrWindowStopped once the window stopped.
func (w *Window) Sync() error {
	if w.State() != StateActive {
		return ErrWindowStopped
	}
	return w.call(requestSync)
}

// Canvas returns the window canvas. A nil window returns a nil canvas,
// which panics with ErrNotStarted when drawn on.
func (w *Window) Canvas() *Canvas {
	if w == nil {
		return nil
	}
	return w.canvas
}

// Turtle returns the turtle bound to the window canvas.
func (w *Window) Turtle() *Turtle {
	return w.Canvas().Turtle()
}

// Width returns the canvas width, or 0 for a nil window.
func (w *Window) Width() int {
	if w == nil {
		return 0
	}
	return w.width
}

// Height returns the canvas height, or 0 for a nil window.
func (w *Window) Height() int {
	if w == nil {
		return 0
	}
	return w.height
}

// State returns the lifecycle state.
func (w *Window) State() State {
	if w == nil {
		return StateAbsent
	}
	return State(w.state.Load())
}

// Surface returns the surface frames are presented on, or nil for a nil
// window.
func (w *Window) Surface() surface.Surface {
	if w == nil {
		return nil
	}
	return w.surface
}

// Frames returns how many frames were presented.
func (w *Window) Frames() uint64 {
	if w == nil {
		return 0
	}
	return w.frames.Load()
}

// Sleep pauses the calling goroutine for d. It cannot be interrupted.
func Sleep(d time.Duration) {
	time.Sleep(d)
}

// call sends a request to the render goroutine and waits for its answer.
func (w *Window) call(kind requestKind) error {
	reply := make(chan error, 1)
	select {
	case w.requests <- request{kind: kind, reply: reply}:
	case <-w.done:
		return ErrWindowStopped
	}
	return <-reply
}

// scheduleRedraw asks for a frame without waiting. Requests made while
// one is pending collapse into it.
func (w *Window) scheduleRedraw() {
	select {
	case w.redraw <- struct{}{}:
	default:
	}
}

// run is the render goroutine.
func (w *Window) run() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(w.done)

	for {
		select {
		case req := <-w.requests:
			switch req.kind {
			case requestConstruct:
				err := w.construct()
				req.reply <- err
				if err != nil {
					return
				}
			case requestSync:
				req.reply <- w.present()
			case requestStop:
				req.reply <- w.teardown()
				return
			}
		case <-w.redraw:
			if err := w.present(); err != nil {
				Logger().Warn("present failed", "err", err)
			}
		}
	}
}

// construct opens the surface, builds the canvas and shows a first frame.
// A failure after Open closes the surface again.
func (w *Window) construct() (err error) {
	opened := false
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during construction: %v", r)
		}
		if err != nil && opened {
			if cerr := w.surface.Close(); cerr != nil {
				Logger().Warn("surface close failed", "err", cerr)
			}
		}
	}()

	if err := w.surface.Open(w.opts.title, w.width, w.height); err != nil {
		return err
	}
	opened = true

	w.canvas = NewCanvas(w.width, w.height,
		WithCanvasBackground(w.opts.background),
		WithFont(nil, w.opts.fontSize),
		WithInvalidate(w.scheduleRedraw),
	)
	w.frame = image.NewRGBA(image.Rect(0, 0, w.width, w.height))

	return w.present()
}

// present composes the canvas into the frame buffer and shows it.
func (w *Window) present() error {
	w.canvas.Render(w.frame)
	if err := w.surface.Present(w.frame); err != nil {
		return err
	}
	n := w.frames.Add(1)
	Logger().Debug("frame presented", "frame", n)
	return nil
}

func (w *Window) teardown() error {
	if err := w.surface.Close(); err != nil {
		Logger().Warn("surface close failed", "err", err)
		return err
	}
	return nil
}

// newSurface resolves the surface options.
func (o windowOptions) newSurface() (surface.Surface, error) {
	switch {
	case o.surface != nil:
		return o.surface, nil
	case o.surfaceName != "":
		return surface.NewSurfaceByName(o.surfaceName)
	default:
		return surface.NewSurface()
	}
}
