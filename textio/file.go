package textio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// LineReader reads a text file line by line.
//
// The zero value is ready to use. Opening while a file is open, or reading
// while none is, panics. LineReader is safe for concurrent use.
type LineReader struct {
	mu sync.Mutex
	f  *os.File
	r  *bufio.Reader
}

// Open opens name for reading. It returns OpenError if the file cannot be
// opened, and panics with ErrAlreadyOpen if a file is already open.
func (lr *LineReader) Open(name string) Status {
	lr.mu.Lock()
	defer lr.mu.Unlock()

	if lr.f != nil {
		panic(fmt.Errorf("%w: reading %s", ErrAlreadyOpen, lr.f.Name()))
	}

	// #nosec G304 -- the file name comes from the program being run
	f, err := os.Open(name)
	if err != nil {
		return OpenError
	}
	lr.f = f
	lr.r = bufio.NewReader(f)
	return NoError
}

// ReadLine returns the next line without its terminator. It reports false
// at the end of the file or on a read error. It panics with ErrNotOpen if
// no file is open.
func (lr *LineReader) ReadLine() (string, bool) {
	lr.mu.Lock()
	defer lr.mu.Unlock()

	if lr.f == nil {
		panic(fmt.Errorf("%w: no file to read", ErrNotOpen))
	}

	line, err := lr.r.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", false
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), true
}

// IsOpen reports whether a file is open.
func (lr *LineReader) IsOpen() bool {
	lr.mu.Lock()
	defer lr.mu.Unlock()

	return lr.f != nil
}

// Close closes the open file. Closing when nothing is open does nothing.
func (lr *LineReader) Close() error {
	lr.mu.Lock()
	defer lr.mu.Unlock()

	if lr.f == nil {
		return nil
	}
	err := lr.f.Close()
	lr.f, lr.r = nil, nil
	return err
}

// LineWriter writes a text file line by line.
//
// The zero value is ready to use. Opening while a file is open, or writing
// while none is, panics. LineWriter is safe for concurrent use.
type LineWriter struct {
	mu sync.Mutex
	f  *os.File
	w  *bufio.Writer
}

// Open creates or truncates name for writing. It returns OpenError if the
// file cannot be created, and panics with ErrAlreadyOpen if a file is
// already open.
func (lw *LineWriter) Open(name string) Status {
	lw.mu.Lock()
	defer lw.mu.Unlock()

	if lw.f != nil {
		panic(fmt.Errorf("%w: writing %s", ErrAlreadyOpen, lw.f.Name()))
	}

	// #nosec G304 -- the file name comes from the program being run
	f, err := os.Create(name)
	if err != nil {
		return OpenError
	}
	lw.f = f
	lw.w = bufio.NewWriter(f)
	return NoError
}

// WriteLine writes s followed by "\n". It returns WriteError if the line
// could not be written, and panics with ErrNotOpen if no file is open.
func (lw *LineWriter) WriteLine(s string) Status {
	lw.mu.Lock()
	defer lw.mu.Unlock()

	if lw.f == nil {
		panic(fmt.Errorf("%w: no file to write", ErrNotOpen))
	}

	if _, err := lw.w.WriteString(s); err != nil {
		return WriteError
	}
	if err := lw.w.WriteByte('\n'); err != nil {
		return WriteError
	}
	return NoError
}

// IsOpen reports whether a file is open.
func (lw *LineWriter) IsOpen() bool {
	lw.mu.Lock()
	defer lw.mu.Unlock()

	return lw.f != nil
}

// Close flushes and closes the open file. Closing when nothing is open
// does nothing.
func (lw *LineWriter) Close() error {
	lw.mu.Lock()
	defer lw.mu.Unlock()

	if lw.f == nil {
		return nil
	}
	ferr := lw.w.Flush()
	cerr := lw.f.Close()
	lw.f, lw.w = nil, nil
	return errors.Join(ferr, cerr)
}
