package token

type TokenType int

const (
	TLParen TokenType = iota
	TRParen
	TToken
	TQuoted
	TVerbatim
	THex
	TBase64
	TQuoteMark
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TLParen:    "TLParen",
		TRParen:    "TRParen",
		TToken:     "TToken",
		TQuoted:    "TQuoted",
		TVerbatim:  "TVerbatim",
		THex:       "THex",
		TBase64:    "TBase64",
		TQuoteMark: "TQuoteMark",
	}[t]
}

// Token is one lexical element. Bytes is the raw source slice; for atom
// tokens Data holds the decoded payload, which for quoted, hex and base64
// atoms may differ from Bytes and may not be valid UTF-8.
type Token struct {
	Type  TokenType
	Pos   Pos
	Bytes []byte
	Data  []byte
}

// IsAtom reports whether the token carries an atom payload.
func (t *Token) IsAtom() bool {
	switch t.Type {
	case TToken, TQuoted, TVerbatim, THex, TBase64:
		return true
	default:
		return false
	}
}
