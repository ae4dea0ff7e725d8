package ir

import (
	"bytes"
	"testing"
)

func TestFromBytes(t *testing.T) {
	n := FromBytes([]byte("hello"))
	if n.IsBytes() || n.Text != "hello" {
		t.Fatalf("valid UTF-8 not stored as text: %+v", n)
	}

	raw := []byte{0xff, 0x00}
	n = FromBytes(raw)
	if !n.IsBytes() || !bytes.Equal(n.Bytes, raw) {
		t.Fatalf("invalid UTF-8 not stored as bytes: %+v", n)
	}

	// the node owns its payload
	raw[0] = 0x11
	if n.Bytes[0] != 0xff {
		t.Fatal("FromBytes aliased the caller's slice")
	}
}

func TestRawBytes(t *testing.T) {
	n := RawBytes([]byte("text"))
	if !n.IsBytes() {
		t.Fatalf("RawBytes produced a text atom: %+v", n)
	}
	if !bytes.Equal(n.Payload(), []byte("text")) {
		t.Fatalf("payload mismatch: %+v", n)
	}
}

func TestEqual(t *testing.T) {
	ets := []struct {
		a, b *Node
		want bool
	}{
		{a: FromString("a"), b: FromString("a"), want: true},
		{a: FromString("a"), b: FromString("b"), want: false},
		// text and byte atoms with the same payload are equal
		{a: FromString("a"), b: RawBytes([]byte("a")), want: true},
		{a: FromString("a"), b: List(FromString("a")), want: false},
		{a: List(), b: List(), want: true},
		{a: List(FromString("a")), b: List(FromString("a")), want: true},
		{a: List(FromString("a")), b: List(FromString("a"), FromString("b")), want: false},
		{
			a:    List(FromString("a"), List(FromString("b"))),
			b:    List(FromString("a"), List(FromString("b"))),
			want: true,
		},
		{a: nil, b: nil, want: true},
		{a: FromString("a"), b: nil, want: false},
	}
	for i, et := range ets {
		if got := et.a.Equal(et.b); got != et.want {
			t.Errorf("case %d: got %v, want %v", i, got, et.want)
		}
	}
}

func TestClone(t *testing.T) {
	orig := List(FromString("a"), List(RawBytes([]byte{1, 2}), FromString("c")))
	cp := orig.Clone()
	if !cp.Equal(orig) {
		t.Fatal("clone differs")
	}
	cp.Values[1].Values[0].Bytes[0] = 9
	cp.Values[0].Text = "changed"
	if orig.Values[1].Values[0].Bytes[0] != 1 || orig.Values[0].Text != "a" {
		t.Fatal("clone shares storage with the original")
	}
}

func TestVisit(t *testing.T) {
	tree := List(FromString("a"), List(FromString("b"), FromString("c")))
	var pre, post int
	err := tree.Visit(func(y *Node, isPost bool) (bool, error) {
		if isPost {
			post++
		} else {
			pre++
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if pre != 5 || post != 5 {
		t.Fatalf("got pre=%d post=%d, want 5/5", pre, post)
	}

	// skipping children
	pre, post = 0, 0
	tree.Visit(func(y *Node, isPost bool) (bool, error) {
		if !isPost {
			pre++
		}
		return false, nil
	})
	if pre != 1 {
		t.Fatalf("got pre=%d, want 1", pre)
	}
}

func TestTypeText(t *testing.T) {
	for _, typ := range Types() {
		d, err := typ.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Type
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != typ {
			t.Errorf("round trip %s gave %s", typ, back)
		}
	}
}
