// Package ir holds the S-expression node tree produced by parsing and
// consumed by encoding.
package ir

import (
	"bytes"
	"unicode/utf8"
)

// Node is either an atom or a list. An atom carries its decoded value in
// Text when the underlying bytes are valid UTF-8, otherwise in Bytes;
// the two are mutually exclusive. A list owns its child nodes in Values.
type Node struct {
	Type   Type
	Text   string
	Bytes  []byte
	Values []*Node
}

func FromString(v string) *Node {
	return &Node{
		Type: AtomType,
		Text: v,
	}
}

// FromBytes builds an atom from raw bytes, storing them as Text when they
// are valid UTF-8.
func FromBytes(d []byte) *Node {
	if utf8.Valid(d) {
		return FromString(string(d))
	}
	return &Node{
		Type:  AtomType,
		Bytes: bytes.Clone(d),
	}
}

// RawBytes builds an atom that keeps d as raw bytes regardless of UTF-8
// validity. Canonical round-trips preserve the payload exactly.
func RawBytes(d []byte) *Node {
	return &Node{
		Type:  AtomType,
		Bytes: bytes.Clone(d),
	}
}

func FromList(values []*Node) *Node {
	return &Node{
		Type:   ListType,
		Values: values,
	}
}

// List builds a list node from its arguments.
func List(values ...*Node) *Node {
	return FromList(values)
}

// IsBytes reports whether the atom payload is raw bytes rather than text.
func (y *Node) IsBytes() bool {
	return y.Type == AtomType && y.Bytes != nil
}

// Payload returns the atom value as bytes, encoding Text as UTF-8.
func (y *Node) Payload() []byte {
	if y.Bytes != nil {
		return y.Bytes
	}
	return []byte(y.Text)
}

func (y *Node) Append(child *Node) {
	y.Values = append(y.Values, child)
}

func (y *Node) Len() int {
	return len(y.Values)
}

// Equal reports structural equality: atoms compare by payload bytes,
// lists by length and element-wise equality.
func (y *Node) Equal(o *Node) bool {
	if y == nil || o == nil {
		return y == o
	}
	if y.Type != o.Type {
		return false
	}
	switch y.Type {
	case AtomType:
		return bytes.Equal(y.Payload(), o.Payload())
	case ListType:
		if len(y.Values) != len(o.Values) {
			return false
		}
		for i := range y.Values {
			if !y.Values[i].Equal(o.Values[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.Text = y.Text
	dst.Bytes = bytes.Clone(y.Bytes)
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dst.Values[i] = yv.Clone()
		}
	}
	return dst
}

// Visit walks the tree depth first, calling f before and after each node's
// children. Returning false from the pre call skips the children.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
