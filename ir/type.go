package ir

import "fmt"

type Type int

const (
	AtomType Type = iota
	ListType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		AtomType: "Atom",
		ListType: "List",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Atom": AtomType,
		"List": ListType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{AtomType, ListType}
}

func (t Type) IsLeaf() bool {
	return t == AtomType
}
