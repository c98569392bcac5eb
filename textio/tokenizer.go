package textio

import (
	"bufio"
	"io"
	"iter"
	"unicode/utf8"
)

// Tokenizer splits a character stream into whitespace-delimited tokens
// while counting lines.
//
// Any character at or below ' ' is a delimiter. "\n", "\r" and "\r\n" each
// end one line. Tokenizer is not safe for concurrent use.
type Tokenizer struct {
	r *bufio.Reader

	line int
	cr   bool // last consumed character was '\r'
}

// NewTokenizer creates a tokenizer reading from r. Line numbers start at 1.
func NewTokenizer(r io.Reader) *Tokenizer {
	return &Tokenizer{r: bufio.NewReader(r), line: 1}
}

// Next returns the next token. It reports false at the end of the input
// or when reading fails. The delimiter ending the token is left unread.
func (t *Tokenizer) Next() (string, bool) {
	c, _, err := t.ReadRune()
	for err == nil && isBlank(c) {
		c, _, err = t.ReadRune()
	}
	if err != nil {
		return "", false
	}

	buf := utf8.AppendRune(make([]byte, 0, 16), c)
	for {
		c, _, err := t.r.ReadRune()
		if err != nil {
			break
		}
		if isBlank(c) {
			_ = t.r.UnreadRune()
			break
		}
		buf = utf8.AppendRune(buf, c)
	}
	return string(buf), true
}

// Tokens returns an iterator over the remaining tokens. Tokens are read
// lazily, one per iteration step.
func (t *Tokenizer) Tokens() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			tok, ok := t.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}

// Line returns the number of the line being read.
func (t *Tokenizer) Line() int {
	return t.line
}

// ReadRune reads a single character, delimiters included. It implements
// io.RuneReader.
func (t *Tokenizer) ReadRune() (rune, int, error) {
	c, size, err := t.r.ReadRune()
	if err != nil {
		return 0, 0, err
	}

	switch c {
	case '\r':
		t.line++
		t.cr = true
	case '\n':
		if !t.cr {
			t.line++
		}
		t.cr = false
	default:
		t.cr = false
	}
	return c, size, nil
}

func isBlank(c rune) bool {
	return c <= ' '
}
