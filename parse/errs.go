package parse

import (
	"errors"
	"fmt"

	"github.com/NostraDavid/sexp/token"
)

var (
	ErrParse         = errors.New("parse error")
	ErrUnexpectedEOF = fmt.Errorf("%w: unexpected end of input", ErrParse)
	ErrTrailingData  = fmt.Errorf("%w: trailing data", ErrParse)
	ErrUnclosedList  = fmt.Errorf("%w: unclosed list", ErrParse)

	// ErrNeedMore is the incremental parser's "wait for more bytes"
	// signal. It is never a hard failure.
	ErrNeedMore = token.ErrNeedMore
)
