package encode

import "github.com/NostraDavid/sexp/ir"

// MustAdvanced is Advanced for trees known to contain only atoms and
// lists; it panics otherwise.
func MustAdvanced(node *ir.Node, opts ...EncodeOption) string {
	s, err := Advanced(node, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// MustCanonical is Canonical with the same contract.
func MustCanonical(node *ir.Node) []byte {
	d, err := Canonical(node)
	if err != nil {
		panic(err)
	}
	return d
}
