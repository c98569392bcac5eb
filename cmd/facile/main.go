// Command facile runs a Lua drawing program, or a built-in demo, on a
// terminal or headless surface.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/gogpu/facile"
	"github.com/gogpu/facile/script"
	"github.com/gogpu/facile/surface"
)

func main() {
	var (
		scriptPath  = flag.String("script", "", "Lua program to run (default: built-in demo)")
		surfaceName = flag.String("surface", defaultSurface(), "surface backend, one of: "+strings.Join(surface.Available(), ", "))
		width       = flag.Int("width", 200, "demo width")
		height      = flag.Int("height", 200, "demo height")
		hold        = flag.Duration("hold", 3*time.Second, "how long the drawing stays up before the window stops")
		verbose     = flag.Bool("v", false, "debug logging to stderr")
	)
	flag.Parse()

	if *verbose {
		facile.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	opts := []facile.Option{facile.WithSurfaceName(*surfaceName)}

	var err error
	if *scriptPath != "" {
		err = runScript(*scriptPath, opts)
	} else {
		err = runDemo(*width, *height, opts)
	}

	if w := facile.Current(); w != nil {
		if err == nil {
			facile.Sleep(*hold)
		}
		if stopErr := w.Stop(); stopErr != nil && err == nil {
			err = stopErr
		}
		log.Printf("%d frames presented", w.Frames())
	}
	if err != nil {
		log.Fatalf("facile: %v", err)
	}
}

// defaultSurface picks the terminal when stdout is one.
func defaultSurface() string {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return "terminal"
	}
	return "image"
}

func runScript(path string, opts []facile.Option) error {
	r := script.NewRunner(script.WithWindowOptions(opts...))
	defer r.Close()

	return r.DoFile(path)
}

// runDemo draws the classic gray fan, then walks the turtle around a square.
func runDemo(width, height int, opts []facile.Option) error {
	w, err := facile.Start(width, height, append(opts, facile.WithTitle("facile demo"))...)
	if err != nil {
		return err
	}
	c := w.Canvas()

	for i := 0; i < min(width, height); i += 4 {
		c.SetGray(i)
		c.DrawLine(0, i, width-1, height-1-i)
		c.DrawLine(i, 0, width-1-i, height-1)
	}

	side := float64(min(width, height)) / 4
	t := w.Turtle()
	c.SetTurtleMode(true)
	c.SetColor(0, 0, 255)
	t.JumpTo(float64(width)/2-side/2, float64(height)/2-side/2)
	for range 4 {
		t.LineForward(side)
		t.TurnDegrees(90)
		facile.Sleep(100 * time.Millisecond)
	}
	t.StampSquare(5)

	return w.Sync()
}
