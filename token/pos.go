package token

import "fmt"

// Pos is a byte position in the input. Offset is absolute from the start
// of the stream; Line and Col are 1-based and, in streaming mode, relative
// to the start of the current window.
type Pos struct {
	Offset int
	Line   int
	Col    int
}

func (p Pos) String() string {
	return fmt.Sprintf("offset %d (line %d, col %d)", p.Offset, p.Line, p.Col)
}
