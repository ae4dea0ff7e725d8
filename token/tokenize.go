// Package token provides the lexical layer: a positional cursor, the five
// RFC 9804 atom decoders, and a pull tokenizer usable over complete input
// or over a growing stream window.
package token

import (
	"fmt"
	"io"
)

type Tokenizer struct {
	cur   *Cursor
	d     []byte
	base  int
	opt   *tokenOpts
	final bool
}

// NewTokenizer tokenizes complete input: Next returns io.EOF at the clean
// end and never ErrNeedMore.
func NewTokenizer(d []byte, opts ...Opt) *Tokenizer {
	return newTokenizer(d, 0, true, opts)
}

// NewStreamTokenizer tokenizes a window starting at absolute offset base.
// When final is false, Next returns ErrNeedMore wherever the window ends
// before a value is unambiguously delimited.
func NewStreamTokenizer(d []byte, base int, final bool, opts ...Opt) *Tokenizer {
	return newTokenizer(d, base, final, opts)
}

func newTokenizer(d []byte, base int, final bool, opts []Opt) *Tokenizer {
	opt := defaultOpts()
	for _, o := range opts {
		o(opt)
	}
	return &Tokenizer{
		cur:   NewCursorAt(d, base),
		d:     d,
		base:  base,
		opt:   opt,
		final: final,
	}
}

// Offset is the absolute stream offset of the next unconsumed byte.
func (tz *Tokenizer) Offset() int {
	return tz.cur.Offset()
}

// Next returns the next token. At the end of complete input it returns
// io.EOF; at the end of a non-final window it returns ErrNeedMore.
func (tz *Tokenizer) Next() (Token, error) {
	tz.skipSpace()
	if tz.cur.AtEnd() {
		if tz.final {
			return Token{}, io.EOF
		}
		return Token{}, ErrNeedMore
	}
	pos := tz.cur.Pos()
	b, _ := tz.cur.Peek()
	switch {
	case b == '(':
		return Token{Type: TLParen, Pos: pos, Bytes: tz.cur.Consume(1)}, nil
	case b == ')':
		return Token{Type: TRParen, Pos: pos, Bytes: tz.cur.Consume(1)}, nil
	case b == '"':
		return tz.lexQuoted(pos, lengthHint{})
	case b == '#':
		return tz.lexHex(pos, lengthHint{})
	case b == '|':
		return tz.lexBase64(pos, lengthHint{})
	case b >= '0' && b <= '9':
		return tz.lexLengthPrefixed(pos)
	case isTokenStart(b):
		return tz.lexToken(pos)
	case b == '\'' && tz.opt.quoteSugar:
		return Token{Type: TQuoteMark, Pos: pos, Bytes: tz.cur.Consume(1)}, nil
	default:
		return Token{}, NewTokenizeErr(fmt.Errorf("%w: %q", ErrUnknownAtom, b), pos)
	}
}

// skipSpace consumes whitespace and, when enabled, ";" comments through
// end of line. It stops at the window end without deciding EOF semantics.
func (tz *Tokenizer) skipSpace() {
	for {
		b, ok := tz.cur.Peek()
		if !ok {
			return
		}
		if isSpace(b) {
			tz.cur.Consume(1)
			continue
		}
		if b == ';' && tz.opt.comments {
			for {
				b, ok := tz.cur.Peek()
				if !ok {
					return
				}
				tz.cur.Consume(1)
				if b == '\n' {
					break
				}
			}
			continue
		}
		return
	}
}

// raw returns the source bytes from absolute offset from up to the cursor.
func (tz *Tokenizer) raw(from int) []byte {
	return tz.d[from-tz.base : tz.cur.Offset()-tz.base]
}

func (tz *Tokenizer) warnLarge(form string, n int) {
	if tz.opt.warnOnLarge && tz.opt.warn != nil && n >= tz.opt.warnThreshold {
		tz.opt.warn(form, n)
	}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	default:
		return false
	}
}

func isAlpha(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isTokenStart(b byte) bool {
	if isAlpha(b) {
		return true
	}
	switch b {
	case '-', '.', '/', '_', '*', '+', '=':
		return true
	default:
		return false
	}
}

func isTokenChar(b byte) bool {
	return isTokenStart(b) || isDigit(b) || b == ':'
}

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isBase64Char(b byte) bool {
	return isAlpha(b) || isDigit(b) || b == '+' || b == '/' || b == '='
}
