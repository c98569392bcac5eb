package textio

import (
	"io"
	"strings"
	"sync"
)

// Reader reads typed values from a text stream, recording a Status after
// every call.
//
// A failed read returns the zero value. End of input is StreamError; a
// token that does not convert is FormatError and is consumed.
// Reader is safe for concurrent use.
type Reader struct {
	mu     sync.Mutex
	tok    *Tokenizer
	status Status
}

// NewReader creates a Reader on r.
func NewReader(r io.Reader) *Reader {
	return &Reader{tok: NewTokenizer(r)}
}

// Status returns the status of the last call.
func (r *Reader) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.status
}

// Ok reports whether the last call succeeded.
func (r *Reader) Ok() bool {
	return r.Status() == NoError
}

// Line returns the number of the line being read.
func (r *Reader) Line() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.tok.Line()
}

// ReadInt reads a 32-bit integer token.
func (r *Reader) ReadInt() int {
	return readToken(r, ParseInt)
}

// ReadLong reads a 64-bit integer token.
func (r *Reader) ReadLong() int64 {
	return readToken(r, ParseInt64)
}

// ReadFloat reads a single precision token.
func (r *Reader) ReadFloat() float32 {
	return readToken(r, ParseFloat32)
}

// ReadDouble reads a double precision token.
func (r *Reader) ReadDouble() float64 {
	return readToken(r, ParseFloat64)
}

// ReadString reads the next token as is.
func (r *Reader) ReadString() string {
	return readToken(r, func(s string) (string, Status) { return s, NoError })
}

// ReadChar reads one character, delimiters included.
func (r *Reader) ReadChar() rune {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, _, err := r.tok.ReadRune()
	if err != nil {
		r.status = StreamError
		return 0
	}
	r.status = NoError
	return c
}

// ReadLine reads up to the next "\n" and returns the line without its
// terminator; a trailing "\r" is dropped too. A last line without a
// terminator is returned normally. At end of input ReadLine returns ""
// with StreamError.
func (r *Reader) ReadLine() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var b strings.Builder
	read := false
	for {
		c, _, err := r.tok.ReadRune()
		if err != nil {
			if !read {
				r.status = StreamError
				return ""
			}
			break
		}
		read = true
		if c == '\n' {
			break
		}
		b.WriteRune(c)
	}

	r.status = NoError
	return strings.TrimSuffix(b.String(), "\r")
}

func readToken[T any](r *Reader, parse func(string) (T, Status)) T {
	r.mu.Lock()
	defer r.mu.Unlock()

	var zero T
	tok, ok := r.tok.Next()
	if !ok {
		r.status = StreamError
		return zero
	}
	v, status := parse(tok)
	r.status = status
	return v
}
