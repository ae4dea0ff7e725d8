package sexp

import (
	"io"

	"github.com/NostraDavid/sexp/encode"
	"github.com/NostraDavid/sexp/ir"
	"github.com/NostraDavid/sexp/parse"
	"github.com/NostraDavid/sexp/settings"
)

// Settings is the option value object shared by parse and print calls.
type Settings = settings.Settings

func DefaultSettings() *Settings {
	return settings.Default()
}

// Parse parses exactly one S-expression; trailing content is an error.
// A nil settings value means defaults.
func Parse(data []byte, s *Settings) (*ir.Node, error) {
	return parse.Parse(data, parse.WithSettings(s))
}

// ParseAll parses every top-level value in data.
func ParseAll(data []byte, s *Settings) ([]*ir.Node, error) {
	return parse.All(data, parse.WithSettings(s))
}

// IterParse returns a parser that yields top-level values from r as they
// become complete. Each ParseNext call may block on the reader, never on
// the parser itself.
func IterParse(r io.Reader, s *Settings) *parse.NodeParser {
	return parse.NewNodeParser(r, parse.WithSettings(s))
}

// DumpsCanonical renders the unique length-prefixed form used for
// hashing and signing. Settings never influence it.
func DumpsCanonical(node *ir.Node) ([]byte, error) {
	return encode.Canonical(node)
}

// DumpsAdvanced renders the human-readable transport form.
func DumpsAdvanced(node *ir.Node, s *Settings) (string, error) {
	return encode.Advanced(node, encode.WithSettings(s))
}
