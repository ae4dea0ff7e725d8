package token

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// lengthHint is a decimal prefix on a quoted, hex or base64 atom. The
// closing delimiter still ends the atom; the declared length is verified
// against the decoded byte count.
type lengthHint struct {
	has bool
	n   int
}

func (h lengthHint) check(form string, decoded int, pos Pos) error {
	if !h.has || h.n == decoded {
		return nil
	}
	return NewTokenizeErr(fmt.Errorf("%w: %s declared %d bytes, decoded %d",
		ErrLengthMismatch, form, h.n, decoded), pos)
}

// lexLengthPrefixed handles atoms that start with a decimal digit: a
// verbatim string after ":", or a length hint for the delimited forms.
func (tz *Tokenizer) lexLengthPrefixed(pos Pos) (Token, error) {
	k := 0
	for {
		b, ok := tz.cur.PeekAt(k)
		if !ok {
			if !tz.final {
				return Token{}, ErrNeedMore
			}
			return Token{}, NewTokenizeErr(fmt.Errorf(
				"%w: length prefix at end of input", ErrEncoding), pos)
		}
		if isDigit(b) {
			k++
			continue
		}
		break
	}
	n, err := strconv.Atoi(string(tz.d[tz.cur.Offset()-tz.base : tz.cur.Offset()-tz.base+k]))
	if err != nil {
		return Token{}, NewTokenizeErr(fmt.Errorf("%w: length prefix: %v", ErrEncoding, err), pos)
	}
	hint := lengthHint{has: true, n: n}
	sep, _ := tz.cur.PeekAt(k)
	switch sep {
	case ':':
		return tz.lexVerbatim(pos, k, n)
	case '"':
		tz.cur.Consume(k)
		return tz.lexQuoted(pos, hint)
	case '#':
		tz.cur.Consume(k)
		return tz.lexHex(pos, hint)
	case '|':
		tz.cur.Consume(k)
		return tz.lexBase64(pos, hint)
	default:
		return Token{}, NewTokenizeErr(fmt.Errorf(
			"%w: length prefix must be followed by ':', '\"', '#' or '|', got %q",
			ErrEncoding, sep), pos)
	}
}

// lexVerbatim consumes digits+":" and then exactly n raw bytes. Length
// accounting is in bytes, never runes.
func (tz *Tokenizer) lexVerbatim(pos Pos, digits, n int) (Token, error) {
	avail := tz.cur.Remaining() - digits - 1
	if avail < n {
		if !tz.final {
			return Token{}, ErrNeedMore
		}
		return Token{}, NewTokenizeErr(fmt.Errorf(
			"%w: verbatim declared %d bytes, only %d available",
			ErrLengthMismatch, n, avail), pos)
	}
	start := tz.cur.Offset()
	tz.cur.Consume(digits + 1)
	data := tz.cur.Consume(n)
	tz.warnLarge("verbatim", len(data))
	return Token{Type: TVerbatim, Pos: pos, Bytes: tz.raw(start), Data: data}, nil
}

// lexQuoted decodes a quoted string with the C-style escape table. The
// decoded payload may be non-UTF-8 when octal or hex escapes are used.
func (tz *Tokenizer) lexQuoted(pos Pos, hint lengthHint) (Token, error) {
	start := tz.cur.Offset()
	tz.cur.Consume(1)
	var out []byte
	for {
		b, ok := tz.cur.Peek()
		if !ok {
			if !tz.final {
				return Token{}, ErrNeedMore
			}
			return Token{}, NewTokenizeErr(fmt.Errorf(
				"%w: quoted string missing closing '\"'", ErrUnterminated), pos)
		}
		tz.cur.Consume(1)
		if b == '"' {
			break
		}
		if b != '\\' {
			out = append(out, b)
			continue
		}
		escPos := tz.cur.Pos()
		e, ok := tz.cur.Peek()
		if !ok {
			if !tz.final {
				return Token{}, ErrNeedMore
			}
			return Token{}, NewTokenizeErr(fmt.Errorf(
				"%w: backslash at end of input", ErrBadEscape), escPos)
		}
		tz.cur.Consume(1)
		switch e {
		case '"', '\\', '\'', '?':
			out = append(out, e)
		case 'n':
			out = append(out, '\n')
		case 't':
			out = append(out, '\t')
		case 'r':
			out = append(out, '\r')
		case 'a':
			out = append(out, '\a')
		case 'b':
			out = append(out, '\b')
		case 'f':
			out = append(out, '\f')
		case 'v':
			out = append(out, '\v')
		case 'x':
			if tz.cur.Remaining() < 2 {
				if !tz.final {
					return Token{}, ErrNeedMore
				}
				return Token{}, NewTokenizeErr(fmt.Errorf(
					"%w: \\x needs two hex digits", ErrBadEscape), escPos)
			}
			h := tz.cur.Consume(2)
			if !isHexDigit(h[0]) || !isHexDigit(h[1]) {
				return Token{}, NewTokenizeErr(fmt.Errorf(
					"%w: \\x%s", ErrBadEscape, h), escPos)
			}
			v, _ := strconv.ParseUint(string(h), 16, 8)
			out = append(out, byte(v))
		case '0', '1', '2', '3', '4', '5', '6', '7':
			if tz.cur.Remaining() < 2 {
				if !tz.final {
					return Token{}, ErrNeedMore
				}
				return Token{}, NewTokenizeErr(fmt.Errorf(
					"%w: octal escape needs three digits", ErrBadEscape), escPos)
			}
			o := tz.cur.Consume(2)
			if !isOctalDigit(o[0]) || !isOctalDigit(o[1]) {
				return Token{}, NewTokenizeErr(fmt.Errorf(
					"%w: \\%c%s", ErrBadEscape, e, o), escPos)
			}
			v, _ := strconv.ParseUint(string(e)+string(o), 8, 16)
			out = append(out, byte(v%256))
		case '\r':
			// line continuation: CR or CR+LF spliced out
			if nb, ok := tz.cur.Peek(); ok && nb == '\n' {
				tz.cur.Consume(1)
			}
		case '\n':
			// line continuation: LF or LF+CR spliced out
			if nb, ok := tz.cur.Peek(); ok && nb == '\r' {
				tz.cur.Consume(1)
			}
		default:
			return Token{}, NewTokenizeErr(fmt.Errorf(
				"%w: \\%c", ErrBadEscape, e), escPos)
		}
	}
	if err := hint.check("quoted string", len(out), pos); err != nil {
		return Token{}, err
	}
	tz.warnLarge("quoted", len(out))
	return Token{Type: TQuoted, Pos: pos, Bytes: tz.raw(start), Data: out}, nil
}

// lexHex decodes "#...#" with whitespace permitted between digit pairs.
func (tz *Tokenizer) lexHex(pos Pos, hint lengthHint) (Token, error) {
	start := tz.cur.Offset()
	tz.cur.Consume(1)
	var digits []byte
	for {
		b, ok := tz.cur.Peek()
		if !ok {
			if !tz.final {
				return Token{}, ErrNeedMore
			}
			return Token{}, NewTokenizeErr(fmt.Errorf(
				"%w: hexadecimal missing closing '#'", ErrUnterminated), pos)
		}
		tz.cur.Consume(1)
		if b == '#' {
			break
		}
		if isSpace(b) {
			continue
		}
		if !isHexDigit(b) {
			return Token{}, NewTokenizeErr(fmt.Errorf(
				"%w: invalid hex digit %q", ErrEncoding, b), pos)
		}
		digits = append(digits, b)
	}
	if len(digits)%2 != 0 {
		return Token{}, NewTokenizeErr(fmt.Errorf(
			"%w: odd number of hex digits", ErrEncoding), pos)
	}
	data := make([]byte, hex.DecodedLen(len(digits)))
	if _, err := hex.Decode(data, digits); err != nil {
		return Token{}, NewTokenizeErr(fmt.Errorf("%w: %v", ErrEncoding, err), pos)
	}
	if err := hint.check("hexadecimal", len(data), pos); err != nil {
		return Token{}, err
	}
	tz.warnLarge("hexadecimal", len(data))
	return Token{Type: THex, Pos: pos, Bytes: tz.raw(start), Data: data}, nil
}

// lexBase64 decodes "|...|" with whitespace permitted between characters.
// Padded and unpadded standard-alphabet encodings are both accepted.
func (tz *Tokenizer) lexBase64(pos Pos, hint lengthHint) (Token, error) {
	start := tz.cur.Offset()
	tz.cur.Consume(1)
	var chars []byte
	for {
		b, ok := tz.cur.Peek()
		if !ok {
			if !tz.final {
				return Token{}, ErrNeedMore
			}
			return Token{}, NewTokenizeErr(fmt.Errorf(
				"%w: base64 missing closing '|'", ErrUnterminated), pos)
		}
		tz.cur.Consume(1)
		if b == '|' {
			break
		}
		if isSpace(b) {
			continue
		}
		if !isBase64Char(b) {
			return Token{}, NewTokenizeErr(fmt.Errorf(
				"%w: invalid base64 character %q", ErrEncoding, b), pos)
		}
		chars = append(chars, b)
	}
	enc := base64.StdEncoding
	if !strings.ContainsRune(string(chars), '=') {
		enc = base64.RawStdEncoding
	}
	data, err := enc.DecodeString(string(chars))
	if err != nil {
		return Token{}, NewTokenizeErr(fmt.Errorf("%w: base64: %v", ErrEncoding, err), pos)
	}
	if err := hint.check("base64", len(data), pos); err != nil {
		return Token{}, err
	}
	tz.warnLarge("base64", len(data))
	return Token{Type: TBase64, Pos: pos, Bytes: tz.raw(start), Data: data}, nil
}

// lexToken consumes a maximal run of token characters. In a non-final
// window a run touching the window end is not yet delimited.
func (tz *Tokenizer) lexToken(pos Pos) (Token, error) {
	k := 0
	for {
		b, ok := tz.cur.PeekAt(k)
		if !ok {
			if !tz.final {
				return Token{}, ErrNeedMore
			}
			break
		}
		if !isTokenChar(b) {
			break
		}
		k++
	}
	data := tz.cur.Consume(k)
	tz.warnLarge("token", len(data))
	return Token{Type: TToken, Pos: pos, Bytes: data, Data: data}, nil
}

func isOctalDigit(b byte) bool {
	return b >= '0' && b <= '7'
}
