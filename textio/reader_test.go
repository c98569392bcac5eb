package textio

import (
	"math"
	"strings"
	"testing"
)

func TestReaderTypedReads(t *testing.T) {
	r := NewReader(strings.NewReader("12 abc 3.5 9999999999 true"))

	if got := r.ReadInt(); got != 12 || !r.Ok() {
		t.Errorf("ReadInt() = %d, %v, want 12, NoError", got, r.Status())
	}
	if got := r.ReadInt(); got != 0 || r.Status() != FormatError {
		t.Errorf("ReadInt() = %d, %v, want 0, FormatError", got, r.Status())
	}
	if got := r.ReadDouble(); got != 3.5 || !r.Ok() {
		t.Errorf("ReadDouble() = %v, %v, want 3.5, NoError", got, r.Status())
	}
	if got := r.ReadLong(); got != 9999999999 || !r.Ok() {
		t.Errorf("ReadLong() = %d, %v, want 9999999999, NoError", got, r.Status())
	}
	if got := r.ReadString(); got != "true" || !r.Ok() {
		t.Errorf("ReadString() = %q, %v, want \"true\", NoError", got, r.Status())
	}
	if got := r.ReadInt(); got != 0 || r.Status() != StreamError {
		t.Errorf("ReadInt() at end = %d, %v, want 0, StreamError", got, r.Status())
	}
	if got := r.ReadString(); got != "" || r.Status() != StreamError {
		t.Errorf("ReadString() at end = %q, %v, want \"\", StreamError", got, r.Status())
	}
}

func TestReaderIntOverflow(t *testing.T) {
	r := NewReader(strings.NewReader("9999999999"))
	if got := r.ReadInt(); got != 0 || r.Status() != FormatError {
		t.Errorf("ReadInt() = %d, %v, want 0, FormatError", got, r.Status())
	}
}

func TestReaderFloat(t *testing.T) {
	r := NewReader(strings.NewReader("1.25 1e40"))

	if got := r.ReadFloat(); got != 1.25 || !r.Ok() {
		t.Errorf("ReadFloat() = %v, %v, want 1.25, NoError", got, r.Status())
	}
	if got := r.ReadFloat(); !math.IsInf(float64(got), 1) || !r.Ok() {
		t.Errorf("ReadFloat() = %v, %v, want +Inf, NoError", got, r.Status())
	}
}

func TestReaderReadChar(t *testing.T) {
	r := NewReader(strings.NewReader("a é"))

	for _, want := range []rune{'a', ' ', 'é'} {
		if got := r.ReadChar(); got != want || !r.Ok() {
			t.Errorf("ReadChar() = %q, %v, want %q, NoError", got, r.Status(), want)
		}
	}
	if got := r.ReadChar(); got != 0 || r.Status() != StreamError {
		t.Errorf("ReadChar() at end = %q, %v, want 0, StreamError", got, r.Status())
	}
}

func TestReaderReadLine(t *testing.T) {
	r := NewReader(strings.NewReader("first line\r\n\nsecond\nlast"))

	for _, want := range []string{"first line", "", "second", "last"} {
		if got := r.ReadLine(); got != want || !r.Ok() {
			t.Errorf("ReadLine() = %q, %v, want %q, NoError", got, r.Status(), want)
		}
	}
	if got := r.ReadLine(); got != "" || r.Status() != StreamError {
		t.Errorf("ReadLine() at end = %q, %v, want \"\", StreamError", got, r.Status())
	}
}

func TestReaderMixedReads(t *testing.T) {
	r := NewReader(strings.NewReader("42 rest of line\nnext"))

	if got := r.ReadInt(); got != 42 {
		t.Fatalf("ReadInt() = %d, want 42", got)
	}
	if got := r.ReadLine(); got != " rest of line" {
		t.Errorf("ReadLine() = %q, want %q", got, " rest of line")
	}
	if r.Line() != 2 {
		t.Errorf("Line() = %d, want 2", r.Line())
	}
	if got := r.ReadString(); got != "next" {
		t.Errorf("ReadString() = %q, want next", got)
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		s    Status
		want string
	}{
		{NoError, "NoError"},
		{StreamError, "StreamError"},
		{FormatError, "FormatError"},
		{ArgError, "ArgError"},
		{OpenError, "OpenError"},
		{WriteError, "WriteError"},
		{Status(42), "Status(42)"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
	if OpenError == WriteError {
		t.Error("OpenError and WriteError must be distinct")
	}
}
