package token

import (
	"fmt"
	"strings"
)

// IsToken reports whether v matches the token grammar exactly and can be
// emitted as a bare word.
func IsToken(v string) bool {
	if v == "" {
		return false
	}
	if !isTokenStart(v[0]) {
		return false
	}
	for i := 1; i < len(v); i++ {
		if !isTokenChar(v[i]) {
			return false
		}
	}
	return true
}

// Quote renders v as a quoted string, the inverse of the lexer's escape
// table: '"', '\\' and control characters are always escaped.
func Quote(v string) string {
	b := &strings.Builder{}
	b.Grow(len(v) + 2)
	b.WriteByte('"')
	for i := 0; i < len(v); i++ {
		c := v[i]
		switch c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case '\a':
			b.WriteString(`\a`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\v':
			b.WriteString(`\v`)
		default:
			if c < 0x20 || c == 0x7f {
				fmt.Fprintf(b, `\x%02x`, c)
			} else {
				b.WriteByte(c)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
