package token

import "fmt"

// Cursor is a positional cursor over an input window. It has no side
// effects beyond its own position; bounds are the caller's responsibility.
type Cursor struct {
	d    []byte
	i    int
	base int
	line int
	col  int
}

func NewCursor(d []byte) *Cursor {
	return NewCursorAt(d, 0)
}

// NewCursorAt places the window at absolute offset base in the stream.
func NewCursorAt(d []byte, base int) *Cursor {
	return &Cursor{d: d, base: base, line: 1, col: 1}
}

func (c *Cursor) AtEnd() bool {
	return c.i >= len(c.d)
}

func (c *Cursor) Remaining() int {
	return len(c.d) - c.i
}

// Peek returns the byte at the cursor without advancing.
func (c *Cursor) Peek() (byte, bool) {
	if c.AtEnd() {
		return 0, false
	}
	return c.d[c.i], true
}

// PeekAt returns the byte k positions ahead of the cursor.
func (c *Cursor) PeekAt(k int) (byte, bool) {
	if c.i+k >= len(c.d) {
		return 0, false
	}
	return c.d[c.i+k], true
}

// Consume advances by exactly n bytes and returns them. Callers must
// check Remaining first; consuming past the window is a programming error.
func (c *Cursor) Consume(n int) []byte {
	if n > c.Remaining() {
		panic(fmt.Sprintf("cursor: consume %d with %d remaining", n, c.Remaining()))
	}
	d := c.d[c.i : c.i+n]
	for _, b := range d {
		if b == '\n' {
			c.line++
			c.col = 1
		} else {
			c.col++
		}
	}
	c.i += n
	return d
}

// Offset is the absolute stream offset of the cursor.
func (c *Cursor) Offset() int {
	return c.base + c.i
}

func (c *Cursor) Pos() Pos {
	return Pos{Offset: c.Offset(), Line: c.line, Col: c.col}
}
