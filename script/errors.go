package script

import "errors"

var (
	// ErrClosed is returned when running code on a closed Runner.
	ErrClosed = errors.New("script: runner closed")

	// ErrLimitExceeded is raised inside a program that made more facile
	// calls than the instruction limit allows.
	ErrLimitExceeded = errors.New("script: instruction limit exceeded")
)
