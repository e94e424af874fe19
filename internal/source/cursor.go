// Package source provides the input side of a traced parse: an immutable
// cursor over a string and loading with the usual text normalization.
package source

import "unicode/utf8"

// Cursor is an immutable position inside an input string. Rules receive a
// Cursor by value and return the advanced one, so backtracking is just
// reusing the cursor they started from.
type Cursor struct {
	input string
	off   int
}

// NewCursor returns a cursor at the start of input.
func NewCursor(input string) Cursor {
	return Cursor{input: input}
}

// Rest returns the unconsumed remainder of the input.
func (c Cursor) Rest() string {
	return c.input[c.off:]
}

// Offset returns the current byte offset.
func (c Cursor) Offset() int {
	return c.off
}

// Done reports whether the whole input has been consumed.
func (c Cursor) Done() bool {
	return c.off >= len(c.input)
}

// Peek returns the rune at the cursor without consuming it. ok is false at
// end of input.
func (c Cursor) Peek() (r rune, ok bool) {
	if c.Done() {
		return 0, false
	}
	r, _ = utf8.DecodeRuneInString(c.input[c.off:])
	return r, true
}

// Advance returns a cursor moved n bytes forward, clamped to the end of the
// input. n must land on a rune boundary; rules advancing by Peek results
// always do.
func (c Cursor) Advance(n int) Cursor {
	c.off += n
	if c.off > len(c.input) {
		c.off = len(c.input)
	}
	return c
}

// Eat consumes want if it is the next rune, returning the advanced cursor
// and true, or the receiver and false.
func (c Cursor) Eat(want rune) (Cursor, bool) {
	r, ok := c.Peek()
	if !ok || r != want {
		return c, false
	}
	return c.Advance(utf8.RuneLen(r)), true
}
