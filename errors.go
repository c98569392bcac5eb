package facile

import "errors"

// Sentinel errors. Programming errors are raised as panics carrying an
// error that wraps one of these values; resource errors are returned.
var (
	// ErrNotStarted is raised when drawing without a started window.
	ErrNotStarted = errors.New("facile: missing Start call")

	// ErrWindowStopped is raised when drawing on the canvas of a stopped window.
	ErrWindowStopped = errors.New("facile: window stopped")

	// ErrStartFailed is returned by Start when the window could not be built.
	ErrStartFailed = errors.New("facile: window construction failed")

	// ErrInvalidDimensions is used for non-positive canvas sizes.
	ErrInvalidDimensions = errors.New("facile: invalid dimensions")
)
