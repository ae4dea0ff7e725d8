// Package encode serializes node trees: a canonical byte-exact form
// suitable for hashing and signing, and an advanced human-readable form.
// Neither mutates the tree.
package encode

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/NostraDavid/sexp/ir"
	"github.com/NostraDavid/sexp/settings"
	"github.com/NostraDavid/sexp/token"
)

type EncState struct {
	pretty bool
	indent int
	b64Min int
	colors *Colors
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{}
	es.applySettings(settings.Default())
	for _, opt := range opts {
		opt(es)
	}
	return es
}

func (es *EncState) applySettings(s *settings.Settings) {
	es.b64Min = s.PreferBase64MinLen
	if s.PrettyIndent != nil {
		es.pretty = true
		es.indent = *s.PrettyIndent
	} else {
		es.pretty = false
	}
}

// Canonical renders node as <byte-length>:<raw-bytes> atoms and
// separator-free lists. The output is deterministic and independent of
// any Settings.
func Canonical(node *ir.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := canonical(node, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func canonical(node *ir.Node, buf *bytes.Buffer) error {
	switch node.Type {
	case ir.AtomType:
		p := node.Payload()
		buf.WriteString(strconv.Itoa(len(p)))
		buf.WriteByte(':')
		buf.Write(p)
		return nil
	case ir.ListType:
		buf.WriteByte('(')
		for _, it := range node.Values {
			if err := canonical(it, buf); err != nil {
				return err
			}
		}
		buf.WriteByte(')')
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrBadNode, node.Type)
	}
}

// Advanced renders node in the human-readable transport form: bare
// tokens where the grammar allows, quoted strings for other text, hex or
// base64 for binary payloads depending on the base64 threshold.
func Advanced(node *ir.Node, opts ...EncodeOption) (string, error) {
	es := newEncState(opts)
	b := &strings.Builder{}
	if err := advanced(node, b, es, 0); err != nil {
		return "", err
	}
	return b.String(), nil
}

func advanced(node *ir.Node, b *strings.Builder, es *EncState, depth int) error {
	switch node.Type {
	case ir.ListType:
		b.WriteString(es.paint(parenColor, "("))
		for i, it := range node.Values {
			if i > 0 {
				b.WriteByte(' ')
			}
			if es.pretty && it.Type == ir.ListType && len(it.Values) > 0 {
				b.WriteByte('\n')
				b.WriteString(strings.Repeat(" ", depth+es.indent))
			}
			if err := advanced(it, b, es, depth+es.indent); err != nil {
				return err
			}
		}
		b.WriteString(es.paint(parenColor, ")"))
		return nil
	case ir.AtomType:
		return advancedAtom(node, b, es)
	default:
		return fmt.Errorf("%w: %s", ErrBadNode, node.Type)
	}
}

func advancedAtom(node *ir.Node, b *strings.Builder, es *EncState) error {
	if !node.IsBytes() {
		if token.IsToken(node.Text) {
			b.WriteString(es.paint(tokenColor, node.Text))
			return nil
		}
		b.WriteString(es.paint(stringColor, token.Quote(node.Text)))
		return nil
	}
	if len(node.Bytes) >= es.b64Min {
		b.WriteString(es.paint(binaryColor, "|"+base64.StdEncoding.EncodeToString(node.Bytes)+"|"))
		return nil
	}
	b.WriteString(es.paint(binaryColor, "#"+hex.EncodeToString(node.Bytes)+"#"))
	return nil
}
