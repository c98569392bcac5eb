package textio

import (
	"errors"
	"fmt"
)

// Status is the outcome of the last I/O or conversion call.
type Status int

// Status codes.
const (
	// NoError means the last operation succeeded.
	NoError Status = iota

	// StreamError means the input ended or could not be read.
	StreamError

	// FormatError means a token could not be converted.
	FormatError

	// ArgError means a conversion received no value at all.
	ArgError

	// OpenError means a file could not be opened.
	OpenError

	// WriteError means a line could not be written.
	WriteError
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case NoError:
		return "NoError"
	case StreamError:
		return "StreamError"
	case FormatError:
		return "FormatError"
	case ArgError:
		return "ArgError"
	case OpenError:
		return "OpenError"
	case WriteError:
		return "WriteError"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Programming errors, raised as panics.
var (
	// ErrAlreadyOpen is raised when opening a handle that is already open.
	ErrAlreadyOpen = errors.New("textio: close the open file before opening another")

	// ErrNotOpen is raised when reading or writing a handle that is not open.
	ErrNotOpen = errors.New("textio: open a file before reading or writing")
)
