package script

import (
	"context"
	"errors"
	"io"
	"os"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/gogpu/facile"
	"github.com/gogpu/facile/textio"
)

// DefaultInstructionLimit is the number of facile calls one DoString or
// DoFile may make.
const DefaultInstructionLimit = 10_000_000

// Runner executes Lua code with the facile API installed.
//
// gopher-lua states are not goroutine-safe: DoString, DoFile and Close
// serialize on an internal mutex, so a Runner may be shared but runs one
// program at a time.
type Runner struct {
	mu sync.Mutex
	L  *lua.LState

	ctx     context.Context
	in      *textio.Reader
	out     io.Writer
	winOpts []facile.Option

	instructionLimit int64
	calls            int64

	// window is the window this runner started, nil before start and
	// after stop.
	window *facile.Window

	reader textio.LineReader
	writer textio.LineWriter

	closed bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithStdin sets where facile.read* functions read from. Default os.Stdin.
func WithStdin(r io.Reader) Option {
	return func(rn *Runner) {
		rn.in = textio.NewReader(r)
	}
}

// WithStdout sets where print, facile.print and facile.exec write to.
// Default os.Stdout.
func WithStdout(w io.Writer) Option {
	return func(rn *Runner) {
		rn.out = w
	}
}

// WithWindowOptions sets the options facile.start passes to facile.Start.
func WithWindowOptions(opts ...facile.Option) Option {
	return func(rn *Runner) {
		rn.winOpts = append(rn.winOpts, opts...)
	}
}

// WithInstructionLimit caps the facile calls per DoString or DoFile.
// Zero or less disables the limit.
func WithInstructionLimit(limit int64) Option {
	return func(rn *Runner) {
		rn.instructionLimit = limit
	}
}

// WithContext bounds program execution: once ctx is done the running
// program stops with an error and commands started by facile.exec are
// killed.
func WithContext(ctx context.Context) Option {
	return func(rn *Runner) {
		rn.ctx = ctx
	}
}

// NewRunner creates a Runner with a fresh sandboxed Lua state.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		out:              os.Stdout,
		instructionLimit: DefaultInstructionLimit,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.in == nil {
		r.in = textio.NewReader(os.Stdin)
	}

	r.L = lua.NewState(lua.Options{SkipOpenLibs: true})
	if r.ctx != nil {
		r.L.SetContext(r.ctx)
	} else {
		r.ctx = context.Background()
	}
	openSafeLibraries(r.L)
	r.sandbox()
	r.install()
	return r
}

// DoString runs a chunk of Lua code.
func (r *Runner) DoString(code string) error {
	return r.do("chunk", func() error { return r.L.DoString(code) })
}

// DoFile runs the Lua file at path.
func (r *Runner) DoFile(path string) error {
	return r.do(path, func() error { return r.L.DoFile(path) })
}

// Window returns the window the running program started, or nil.
func (r *Runner) Window() *facile.Window {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.window
}

// Close releases the Lua state and any file the program left open. The
// window, if any, is left running; stop it with Window().Stop().
func (r *Runner) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true
	r.L.Close()
	return errors.Join(r.reader.Close(), r.writer.Close())
}

func (r *Runner) do(name string, run func() error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}
	r.calls = 0

	start := time.Now()
	err := run()
	facile.Logger().Debug("script finished", "name", name, "calls", r.calls,
		"elapsed", time.Since(start), "err", err)
	return err
}

// fn adapts a binding: each call counts against the instruction limit and
// Go panics carrying errors become Lua errors.
func (r *Runner) fn(name string, f lua.LGFunction) *lua.LFunction {
	return r.L.NewFunction(func(L *lua.LState) int {
		if r.instructionLimit > 0 {
			r.calls++
			if r.calls > r.instructionLimit {
				L.RaiseError("%v after %d calls", ErrLimitExceeded, r.instructionLimit)
			}
		}

		defer func() {
			rcv := recover()
			if rcv == nil {
				return
			}
			if _, ok := rcv.(*lua.ApiError); ok {
				panic(rcv)
			}
			if err, ok := rcv.(error); ok {
				L.RaiseError("%s: %v", name, err)
			}
			panic(rcv)
		}()
		return f(L)
	})
}

// register adds the bindings to tbl.
func (r *Runner) register(tbl *lua.LTable, funcs map[string]lua.LGFunction) {
	for name, f := range funcs {
		r.L.SetField(tbl, name, r.fn(name, f))
	}
}
