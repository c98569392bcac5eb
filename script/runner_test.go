package script

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/color"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/gogpu/facile"
	"github.com/gogpu/facile/surface"
)

// newRunner returns a headless runner that writes to out and reads from
// stdin. Any window left open is stopped when the test ends.
func newRunner(t *testing.T, out *bytes.Buffer, stdin string, opts ...Option) *Runner {
	t.Helper()

	base := []Option{
		WithStdin(strings.NewReader(stdin)),
		WithStdout(out),
		WithWindowOptions(facile.WithSurface(surface.NewImageSurface())),
	}
	r := NewRunner(append(base, opts...)...)
	t.Cleanup(func() {
		if w := facile.Current(); w != nil {
			_ = w.Stop()
		}
		_ = r.Close()
	})
	return r
}

func mustRun(t *testing.T, r *Runner, code string) {
	t.Helper()
	if err := r.DoString(code); err != nil {
		t.Fatalf("DoString() error = %v", err)
	}
}

func TestRunnerDrawing(t *testing.T) {
	var out bytes.Buffer
	r := newRunner(t, &out, "")

	mustRun(t, r, `
		facile.start(20, 20)
		facile.setColor(255, 0, 0)
		facile.drawLine(0, 5, 19, 5)
		facile.fillPolygon({10, 10, 18, 10, 18, 18, 10, 18})
		facile.sync()
	`)

	w := r.Window()
	if w == nil || w.State() != facile.StateActive {
		t.Fatal("facile.start did not leave an active window")
	}
	snap := w.Canvas().Snapshot()
	red := color.RGBA{R: 255, A: 255}
	if got := snap.RGBAAt(3, 5); got != red {
		t.Errorf("line pixel = %v, want %v", got, red)
	}
	if got := snap.RGBAAt(14, 14); got != red {
		t.Errorf("polygon pixel = %v, want %v", got, red)
	}
	if got := snap.RGBAAt(3, 14); got.A != 0 {
		t.Errorf("untouched pixel = %v, want transparent", got)
	}

	mustRun(t, r, `facile.stop()`)
	if r.Window() != nil {
		t.Error("Window() after facile.stop should be nil")
	}
	if w.State() != facile.StateDisposed {
		t.Errorf("State() after facile.stop = %v, want Disposed", w.State())
	}
}

func TestRunnerDrawingBeforeStart(t *testing.T) {
	tests := []string{
		`facile.drawLine(0, 0, 10, 10)`,
		`facile.setColor(1, 2, 3)`,
		`facile.turtle.line(10)`,
		`facile.start(10, 10) facile.stop() facile.drawPoint(1, 1)`,
	}

	for _, code := range tests {
		t.Run(code, func(t *testing.T) {
			var out bytes.Buffer
			r := newRunner(t, &out, "")

			err := r.DoString(code)
			if err == nil {
				t.Fatal("DoString() error = nil, want missing Start call")
			}
			if !strings.Contains(err.Error(), facile.ErrNotStarted.Error()) {
				t.Errorf("error = %v, want it to mention %q", err, facile.ErrNotStarted)
			}
		})
	}
}

func TestRunnerTurtle(t *testing.T) {
	var out bytes.Buffer
	r := newRunner(t, &out, "")

	mustRun(t, r, `
		facile.start(40, 40)
		local t = facile.turtle
		t.jumpTo(5, 5)
		t.line(10)
		t.turnDegrees(90)
		t.jump(10)
		x, y, heading = t.state()
	`)

	x := float64(r.L.GetGlobal("x").(lua.LNumber))
	y := float64(r.L.GetGlobal("y").(lua.LNumber))
	heading := float64(r.L.GetGlobal("heading").(lua.LNumber))
	if !near(x, 15) || !near(y, 15) {
		t.Errorf("position = (%g, %g), want (15, 15)", x, y)
	}
	if !near(heading, 1.5707963267948966) {
		t.Errorf("heading = %g, want π/2", heading)
	}

	snap := r.Window().Canvas().Snapshot()
	if got := snap.RGBAAt(10, 5); got.A == 0 {
		t.Error("turtle line left no ink")
	}
	if got := snap.RGBAAt(15, 10); got.A != 0 {
		t.Error("turtle jump left ink")
	}

	mustRun(t, r, `facile.turtle.setState(1, 2, 3)  a, b, c = facile.turtle.state()`)
	for name, want := range map[string]float64{"a": 1, "b": 2, "c": 3} {
		if got := float64(r.L.GetGlobal(name).(lua.LNumber)); got != want {
			t.Errorf("%s = %g, want %g", name, got, want)
		}
	}
}

func near(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}

func TestRunnerConsole(t *testing.T) {
	var out bytes.Buffer
	r := newRunner(t, &out, "12 abc\nhello world\n")

	mustRun(t, r, `
		local a = facile.readInt()
		local s1 = facile.status()
		local b = facile.readInt()
		local s2 = facile.status()
		facile.readChar()
		local line = facile.readLine()
		facile.println(a, " ", s1 == facile.NO_ERROR, " ", s2 == facile.FORMAT_ERROR, " ", b)
		facile.print("[", line, "]")
		facile.readLine()
		facile.println()
		facile.println(facile.isOk(), " ", facile.status() == facile.STREAM_ERROR)
	`)

	want := "12 true true 0\n[hello world]\nfalse true\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestRunnerPrint(t *testing.T) {
	var out bytes.Buffer
	r := newRunner(t, &out, "")

	mustRun(t, r, `print("a", 1, 2.5, true)`)

	if out.String() != "a\t1\t2.5\ttrue\n" {
		t.Errorf("print output = %q", out.String())
	}
}

func TestRunnerSandbox(t *testing.T) {
	var out bytes.Buffer
	r := newRunner(t, &out, "")

	for _, name := range []string{"dofile", "loadfile", "load", "require", "io", "os", "debug", "package"} {
		if v := r.L.GetGlobal(name); v != lua.LNil {
			t.Errorf("global %s = %v, want nil", name, v)
		}
	}
	for _, name := range []string{"string", "table", "math", "facile"} {
		if v := r.L.GetGlobal(name); v.Type() != lua.LTTable {
			t.Errorf("global %s type = %v, want table", name, v.Type())
		}
	}
}

func TestRunnerInstructionLimit(t *testing.T) {
	var out bytes.Buffer
	r := newRunner(t, &out, "", WithInstructionLimit(5))

	mustRun(t, r, `for i = 1, 5 do facile.isOk() end`)

	err := r.DoString(`for i = 1, 6 do facile.isOk() end`)
	if err == nil || !strings.Contains(err.Error(), ErrLimitExceeded.Error()) {
		t.Errorf("DoString() error = %v, want %v", err, ErrLimitExceeded)
	}
}

func TestRunnerContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	var out bytes.Buffer
	r := newRunner(t, &out, "", WithContext(ctx))

	if err := r.DoString(`while true do end`); err == nil {
		t.Error("DoString() of an endless loop returned nil after the context expired")
	}
}

func TestRunnerFiles(t *testing.T) {
	var out bytes.Buffer
	r := newRunner(t, &out, "")
	name := filepath.Join(t.TempDir(), "lines.txt")

	mustRun(t, r, fmt.Sprintf(`
		local f = facile.file
		assert(f.openWrite(%[1]q) == facile.NO_ERROR)
		assert(f.writeLine("first") == facile.NO_ERROR)
		assert(f.writeLine("second") == facile.NO_ERROR)
		f.closeWrite()

		assert(f.openRead(%[1]q) == facile.NO_ERROR)
		local line = f.readLine()
		while line do
			facile.println(line)
			line = f.readLine()
		end
		f.closeRead()

		missing = f.openRead(%[1]q .. ".missing")
	`, name))

	if out.String() != "first\nsecond\n" {
		t.Errorf("output = %q, want %q", out.String(), "first\nsecond\n")
	}
	if got := r.L.GetGlobal("missing"); got != lua.LNumber(4) {
		t.Errorf("openRead(missing) = %v, want OPEN_ERROR (4)", got)
	}
	data, err := os.ReadFile(name)
	if err != nil || string(data) != "first\nsecond\n" {
		t.Errorf("file = %q, %v", data, err)
	}
}

func TestRunnerFileMisuse(t *testing.T) {
	var out bytes.Buffer
	r := newRunner(t, &out, "")

	err := r.DoString(`facile.file.readLine()`)
	if err == nil || !strings.Contains(err.Error(), "open a file before") {
		t.Errorf("DoString() error = %v, want a not-open error", err)
	}
}

func TestRunnerArgumentErrors(t *testing.T) {
	tests := []string{
		`facile.start(10, 10) facile.drawPolygon({1, 2, 3})`,
		`facile.start(10, 10) facile.setColorHex("not a colour")`,
		`facile.drawLine("a", 0, 1, 1)`,
		`facile.exec(42)`,
	}

	for _, code := range tests {
		t.Run(code, func(t *testing.T) {
			var out bytes.Buffer
			r := newRunner(t, &out, "")
			if err := r.DoString(code); err == nil {
				t.Error("DoString() error = nil, want an argument error")
			}
		})
	}
}

func TestRunnerExec(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	var out bytes.Buffer
	r := newRunner(t, &out, "")

	mustRun(t, r, `code = facile.exec({"sh", "-c", "echo hi; exit 2"})`)

	if out.String() != "hi\n" {
		t.Errorf("output = %q, want %q", out.String(), "hi\n")
	}
	if got := r.L.GetGlobal("code"); got != lua.LNumber(2) {
		t.Errorf("exit code = %v, want 2", got)
	}

	err := r.DoString(`facile.exec("facile-no-such-command-xyz")`)
	if err == nil || !strings.Contains(err.Error(), "cannot launch") {
		t.Errorf("DoString() error = %v, want a launch error", err)
	}
}

func TestRunnerDoFile(t *testing.T) {
	var out bytes.Buffer
	r := newRunner(t, &out, "")

	path := filepath.Join(t.TempDir(), "hello.lua")
	if err := os.WriteFile(path, []byte(`facile.println("hello from file")`), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := r.DoFile(path); err != nil {
		t.Fatalf("DoFile() error = %v", err)
	}
	if out.String() != "hello from file\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestRunnerClosed(t *testing.T) {
	var out bytes.Buffer
	r := newRunner(t, &out, "")

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := r.DoString(`x = 1`); !errors.Is(err, ErrClosed) {
		t.Errorf("DoString() after Close error = %v, want ErrClosed", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestStatusConstant(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"NoError", "NO_ERROR"},
		{"StreamError", "STREAM_ERROR"},
		{"WriteError", "WRITE_ERROR"},
	}
	for _, tt := range tests {
		var got string
		for _, s := range statuses() {
			if s.String() == tt.in {
				got = statusConstant(s)
			}
		}
		if got != tt.want {
			t.Errorf("statusConstant(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
