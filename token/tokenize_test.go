package token

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

type lexTest struct {
	in   string
	typ  TokenType
	data string
	e    error
}

func lexOne(t *testing.T, in string, opts ...Opt) (Token, error) {
	t.Helper()
	tz := NewTokenizer([]byte(in), opts...)
	return tz.Next()
}

func TestLexAtoms(t *testing.T) {
	lts := []lexTest{
		{in: `abc`, typ: TToken, data: "abc"},
		{in: `*`, typ: TToken, data: "*"},
		{in: `sha-256`, typ: TToken, data: "sha-256"},
		{in: `rsa/pkcs1`, typ: TToken, data: "rsa/pkcs1"},
		{in: `a:b:c`, typ: TToken, data: "a:b:c"},
		{in: `3:abc`, typ: TVerbatim, data: "abc"},
		{in: `0:`, typ: TVerbatim, data: ""},
		{in: "2:\x00\xff", typ: TVerbatim, data: "\x00\xff"},
		// verbatim counts bytes, not runes
		{in: "4:\xe2\x88\x9ex", typ: TVerbatim, data: "\xe2\x88\x9ex"},
		{in: `"hello"`, typ: TQuoted, data: "hello"},
		{in: `""`, typ: TQuoted, data: ""},
		{in: `"a\nb"`, typ: TQuoted, data: "a\nb"},
		{in: `"a\tb\r\a\b\f\v"`, typ: TQuoted, data: "a\tb\r\a\b\f\v"},
		{in: `"\"\\\'\?"`, typ: TQuoted, data: `"\'?`},
		{in: `"\x41\x6a"`, typ: TQuoted, data: "Aj"},
		{in: `"\101"`, typ: TQuoted, data: "A"},
		// octal value reduced mod 256
		{in: `"\777"`, typ: TQuoted, data: "\xff"},
		{in: "\"a\\\nb\"", typ: TQuoted, data: "ab"},
		{in: "\"a\\\r\nb\"", typ: TQuoted, data: "ab"},
		{in: "\"a\\\n\rb\"", typ: TQuoted, data: "ab"},
		{in: `#616263#`, typ: THex, data: "abc"},
		{in: `##`, typ: THex, data: ""},
		{in: "#61 62\n63#", typ: THex, data: "abc"},
		{in: `#DEADbeef#`, typ: THex, data: "\xde\xad\xbe\xef"},
		{in: `|YWJj|`, typ: TBase64, data: "abc"},
		{in: `|YQ==|`, typ: TBase64, data: "a"},
		{in: `|YQ|`, typ: TBase64, data: "a"},
		{in: "|Y W J\tj|", typ: TBase64, data: "abc"},
		{in: `||`, typ: TBase64, data: ""},
		// length hints on delimited forms
		{in: `5"hello"`, typ: TQuoted, data: "hello"},
		{in: `3#616263#`, typ: THex, data: "abc"},
		{in: `3|YWJj|`, typ: TBase64, data: "abc"},

		{in: `"abc`, e: ErrUnterminated},
		{in: `#6162`, e: ErrUnterminated},
		{in: `|YWJj`, e: ErrUnterminated},
		{in: `"a\qb"`, e: ErrBadEscape},
		{in: `"\x4"`, e: ErrBadEscape},
		{in: `"\xzz"`, e: ErrBadEscape},
		{in: `"\12"`, e: ErrBadEscape},
		{in: `"\19z"`, e: ErrBadEscape},
		{in: `#61626#`, e: ErrEncoding},
		{in: `#61zz#`, e: ErrEncoding},
		{in: `|Y!|`, e: ErrEncoding},
		{in: `4:abc`, e: ErrLengthMismatch},
		{in: `4"hello"`, e: ErrLengthMismatch},
		{in: `2#616263#`, e: ErrLengthMismatch},
		{in: `9|YWJj|`, e: ErrLengthMismatch},
		{in: `3abc`, e: ErrEncoding},
		{in: `42`, e: ErrEncoding},
		{in: `&oops`, e: ErrUnknownAtom},
		{in: `'x`, e: ErrUnknownAtom},
	}
	for _, lt := range lts {
		tok, err := lexOne(t, lt.in)
		if lt.e != nil {
			if !errors.Is(err, lt.e) {
				t.Errorf("%q: got error %v, want %v", lt.in, err, lt.e)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error %v", lt.in, err)
			continue
		}
		if tok.Type != lt.typ {
			t.Errorf("%q: got type %s, want %s", lt.in, tok.Type, lt.typ)
		}
		if !bytes.Equal(tok.Data, []byte(lt.data)) {
			t.Errorf("%q: got data %q, want %q", lt.in, tok.Data, lt.data)
		}
	}
}

func TestLexSequence(t *testing.T) {
	tz := NewTokenizer([]byte("(1:a2:bc)"))
	want := []TokenType{TLParen, TVerbatim, TVerbatim, TRParen}
	for i, w := range want {
		tok, err := tz.Next()
		if err != nil {
			t.Fatalf("token %d: %v", i, err)
		}
		if tok.Type != w {
			t.Fatalf("token %d: got %s, want %s", i, tok.Type, w)
		}
		wantAtom := w != TLParen && w != TRParen
		if tok.IsAtom() != wantAtom {
			t.Fatalf("token %d: IsAtom() = %v", i, tok.IsAtom())
		}
	}
	if _, err := tz.Next(); err != io.EOF {
		t.Fatalf("got %v, want io.EOF", err)
	}
}

func TestLexComments(t *testing.T) {
	tz := NewTokenizer([]byte("; header\nabc ; trailing\n"))
	tok, err := tz.Next()
	if err != nil || tok.Type != TToken || string(tok.Data) != "abc" {
		t.Fatalf("got %v %v", tok, err)
	}
	if _, err := tz.Next(); err != io.EOF {
		t.Fatalf("got %v, want io.EOF", err)
	}

	// with comments off, ";" is not a valid atom start
	if _, err := lexOne(t, "; header\nabc", Comments(false)); !errors.Is(err, ErrUnknownAtom) {
		t.Fatalf("got %v, want ErrUnknownAtom", err)
	}
}

func TestLexQuoteSugar(t *testing.T) {
	tok, err := lexOne(t, "'x", QuoteSugar(true))
	if err != nil || tok.Type != TQuoteMark {
		t.Fatalf("got %v %v", tok, err)
	}
}

func TestLexPositions(t *testing.T) {
	tz := NewTokenizer([]byte("(a\n b)"))
	poss := []Pos{
		{Offset: 0, Line: 1, Col: 1},
		{Offset: 1, Line: 1, Col: 2},
		{Offset: 4, Line: 2, Col: 2},
		{Offset: 5, Line: 2, Col: 3},
	}
	for i, want := range poss {
		tok, err := tz.Next()
		if err != nil {
			t.Fatalf("token %d: %v", i, err)
		}
		if tok.Pos != want {
			t.Errorf("token %d: got %+v, want %+v", i, tok.Pos, want)
		}
	}
}

func TestLexErrPos(t *testing.T) {
	tz := NewTokenizer([]byte("(abc &)"))
	tz.Next()
	tz.Next()
	_, err := tz.Next()
	var te *TokenizeErr
	if !errors.As(err, &te) {
		t.Fatalf("got %T, want *TokenizeErr", err)
	}
	if te.Pos.Offset != 5 {
		t.Errorf("got offset %d, want 5", te.Pos.Offset)
	}
}

func TestLexStreamWindow(t *testing.T) {
	// every prefix that ends inside a value reports ErrNeedMore, not a
	// hard error
	needMore := []string{
		"3:ab",
		"3",
		`"unfinished`,
		`"esc\`,
		`"esc\x4`,
		`"esc\7`,
		"#6162",
		"|YWJ",
		"abc", // token touching the window end is not yet delimited
		"",
		"  ; comment",
	}
	for _, in := range needMore {
		tz := NewStreamTokenizer([]byte(in), 0, false)
		if _, err := tz.Next(); !errors.Is(err, ErrNeedMore) {
			t.Errorf("%q: got %v, want ErrNeedMore", in, err)
		}
	}

	// a delimiter after the token makes it complete inside the window
	tz := NewStreamTokenizer([]byte("abc "), 0, false)
	tok, err := tz.Next()
	if err != nil || string(tok.Data) != "abc" {
		t.Fatalf("got %v %v", tok, err)
	}
}

func TestLexStreamBase(t *testing.T) {
	tz := NewStreamTokenizer([]byte("x y"), 100, true)
	tok, _ := tz.Next()
	if tok.Pos.Offset != 100 {
		t.Errorf("got offset %d, want 100", tok.Pos.Offset)
	}
	tok, _ = tz.Next()
	if tok.Pos.Offset != 102 {
		t.Errorf("got offset %d, want 102", tok.Pos.Offset)
	}
	if tz.Offset() != 103 {
		t.Errorf("got tz offset %d, want 103", tz.Offset())
	}
}

func TestLexLargeAtomWarning(t *testing.T) {
	var gotForm string
	var gotN int
	opts := []Opt{
		LargeAtomWarning(4, true),
		WarnFunc(func(form string, n int) { gotForm, gotN = form, n }),
	}
	if _, err := lexOne(t, "5:hello", opts...); err != nil {
		t.Fatal(err)
	}
	if gotForm != "verbatim" || gotN != 5 {
		t.Errorf("got (%q, %d), want (verbatim, 5)", gotForm, gotN)
	}

	gotForm, gotN = "", 0
	if _, err := lexOne(t, "3:abc", opts...); err != nil {
		t.Fatal(err)
	}
	if gotForm != "" {
		t.Errorf("warned below threshold: (%q, %d)", gotForm, gotN)
	}
}
