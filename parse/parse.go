// Package parse provides S-expression parsing support: strict single-value
// and multi-value parses over complete input, and an incremental parser
// for input that arrives in chunks.
package parse

import (
	"fmt"
	"io"

	"github.com/NostraDavid/sexp/ir"
	"github.com/NostraDavid/sexp/token"
)

// Parse parses exactly one value. Anything but whitespace or comments
// after it is ErrTrailingData.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := newParseOpts(opts)
	tz := token.NewTokenizer(d, pOpts.tokenOpts()...)
	node, err := parseOne(tz)
	if err == io.EOF {
		return nil, fmt.Errorf("%w at offset %d", ErrUnexpectedEOF, tz.Offset())
	}
	if err != nil {
		return nil, err
	}
	tok, err := tz.Next()
	if err == nil {
		return nil, fmt.Errorf("%w at %s", ErrTrailingData, tok.Pos)
	}
	if err != io.EOF {
		return nil, err
	}
	return node, nil
}

// All parses every top-level value in d. Empty input yields an empty,
// non-nil slice.
func All(d []byte, opts ...ParseOption) ([]*ir.Node, error) {
	pOpts := newParseOpts(opts)
	tz := token.NewTokenizer(d, pOpts.tokenOpts()...)
	res := []*ir.Node{}
	for {
		node, err := parseOne(tz)
		if err == io.EOF {
			return res, nil
		}
		if err != nil {
			return nil, err
		}
		res = append(res, node)
	}
}

// frame is one in-progress list on the explicit work stack. quote frames
// close themselves after exactly one child.
type frame struct {
	node    *ir.Node
	openPos token.Pos
	quote   bool
}

// parseOne parses one value from the tokenizer. It returns io.EOF only
// when the input ends before the first token of the value; ErrNeedMore
// from a streaming tokenizer passes through untouched. List nesting is
// tracked on an explicit stack so recursion depth is independent of the
// input.
func parseOne(tz *token.Tokenizer) (*ir.Node, error) {
	var stack []frame
	for {
		tok, err := tz.Next()
		if err == io.EOF {
			if len(stack) == 0 {
				return nil, io.EOF
			}
			for i := len(stack) - 1; i >= 0; i-- {
				if !stack[i].quote {
					return nil, fmt.Errorf("%w opened at %s", ErrUnclosedList, stack[i].openPos)
				}
			}
			return nil, fmt.Errorf("%w at offset %d", ErrUnexpectedEOF, tz.Offset())
		}
		if err != nil {
			return nil, err
		}
		var node *ir.Node
		switch tok.Type {
		case token.TLParen:
			stack = append(stack, frame{node: &ir.Node{Type: ir.ListType}, openPos: tok.Pos})
			continue
		case token.TQuoteMark:
			stack = append(stack, frame{
				node:    ir.List(ir.FromString("quote")),
				openPos: tok.Pos,
				quote:   true,
			})
			continue
		case token.TRParen:
			n := len(stack)
			if n == 0 || stack[n-1].quote {
				return nil, fmt.Errorf("%w: unexpected ')' at %s", ErrParse, tok.Pos)
			}
			node = stack[n-1].node
			stack = stack[:n-1]
		default:
			if !tok.IsAtom() {
				return nil, fmt.Errorf("%w: unexpected %s at %s", ErrParse, tok.Type, tok.Pos)
			}
			node = atomNode(&tok)
		}
		for {
			if len(stack) == 0 {
				return node, nil
			}
			top := &stack[len(stack)-1]
			top.node.Append(node)
			if top.quote {
				node = top.node
				stack = stack[:len(stack)-1]
				continue
			}
			break
		}
	}
}

func atomNode(tok *token.Token) *ir.Node {
	if tok.Type == token.TToken {
		return ir.FromString(string(tok.Data))
	}
	return ir.FromBytes(tok.Data)
}
