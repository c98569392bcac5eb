package process

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

var (
	// ErrLaunch is raised when a command cannot be started.
	ErrLaunch = errors.New("process: cannot launch")

	// ErrOutput is raised when the output of a command cannot be read or
	// forwarded.
	ErrOutput = errors.New("process: cannot read output")
)

// Exec runs args[0] with the remaining arguments, copies each line the
// command writes to its standard output to out, and returns the exit code
// once the command has finished. Standard error is discarded.
//
// Exec panics with ErrLaunch when args is empty or the command cannot be
// started, and with ErrOutput when reading or forwarding its output fails.
// A command killed by ctx reports -1.
func Exec(ctx context.Context, out io.Writer, args ...string) int {
	if len(args) == 0 {
		panic(fmt.Errorf("%w: empty command", ErrLaunch))
	}

	// #nosec G204 -- running arbitrary commands is the purpose of this package
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		panic(fmt.Errorf("%w %s: %w", ErrLaunch, args[0], err))
	}
	if err := cmd.Start(); err != nil {
		panic(fmt.Errorf("%w %s: %w", ErrLaunch, args[0], err))
	}

	copyErr := copyLines(out, stdout)
	if copyErr != nil {
		// Drain so the command is not blocked on a full pipe.
		_, _ = io.Copy(io.Discard, stdout)
	}
	waitErr := cmd.Wait()

	if copyErr != nil {
		panic(fmt.Errorf("%w from %s: %w", ErrOutput, args[0], copyErr))
	}
	return exitCode(cmd, waitErr)
}

// ExecLine splits command on blanks and runs it with Exec. Quotes are not
// interpreted.
func ExecLine(ctx context.Context, out io.Writer, command string) int {
	return Exec(ctx, out, strings.Fields(command)...)
}

func copyLines(out io.Writer, r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	for sc.Scan() {
		if _, err := fmt.Fprintln(out, sc.Text()); err != nil {
			return err
		}
	}
	return sc.Err()
}

func exitCode(cmd *exec.Cmd, err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	if cmd.ProcessState != nil {
		return cmd.ProcessState.ExitCode()
	}
	return -1
}
