// Package process runs external commands and streams their standard output
// line by line.
//
// Exec takes the command and its arguments as separate strings; ExecLine
// splits a single command line on blanks. Both wait for the command to
// finish and return its exit code:
//
//	code := process.ExecLine(ctx, os.Stdout, "ls -l /")
//
// A command that cannot be started, or whose output cannot be read, is a
// programming error and panics with an error wrapping ErrLaunch or
// ErrOutput. A command that starts and then fails is not: its exit code is
// returned.
package process
