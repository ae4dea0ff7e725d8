package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminated   = errors.New("unterminated atom")
	ErrBadEscape      = errors.New("invalid escape")
	ErrLengthMismatch = errors.New("length mismatch")
	ErrEncoding       = errors.New("invalid encoding")
	ErrUnknownAtom    = errors.New("unknown atom start")

	// ErrNeedMore signals that the current window ends inside a value and
	// the tokenizer is not final. It is never returned for complete input.
	ErrNeedMore = errors.New("need more data")
)

type TokenizeErr struct {
	Err error
	Pos Pos
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func NewTokenizeErr(e error, p Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: p}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}
