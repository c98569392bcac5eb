// Package textio provides beginner-friendly console and file text I/O.
//
// Reads never fail loudly: each read leaves a Status that the caller can
// query afterwards, and returns a zero value on failure. Misusing a file
// handle, such as reading from a LineReader that is not open, is a
// programming error and panics.
//
//	in := textio.NewReader(os.Stdin)
//	n := in.ReadInt()
//	if !in.Ok() {
//	    fmt.Println("not a number:", in.Status())
//	}
//
// Tokens are runs of characters above the space character; everything
// else, control characters included, separates them.
package textio
