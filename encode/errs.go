package encode

import "errors"

// ErrBadNode reports a node whose Type is neither Atom nor List. This is
// a programming error in the caller, not an input error.
var ErrBadNode = errors.New("unsupported node type")
