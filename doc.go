// Package sexp parses and prints RFC 9804 S-expressions in their
// canonical and advanced transport forms.
//
// The subpackages do the work: ir holds the node tree, token the lexical
// layer, parse the strict and incremental parsers, encode the printers.
// This package re-exports the common entry points so that simple uses
// need a single import:
//
//	node, err := sexp.Parse([]byte(`(a "b c" #616263#)`), nil)
//	if err != nil {
//	    return err
//	}
//	out, _ := sexp.DumpsCanonical(node)
package sexp
