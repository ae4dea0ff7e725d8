package parse

import (
	"errors"
	"io"

	"github.com/NostraDavid/sexp/ir"
	"github.com/NostraDavid/sexp/token"
)

// Incremental parses a growing buffer, yielding completed top-level
// values as soon as they are unambiguously delimited, in input order.
// It holds mutable state scoped to one stream and is not safe for
// concurrent use.
type Incremental struct {
	buf   []byte
	off   int
	base  int
	eof   bool
	pOpts *parseOpts
	err   error
}

func NewIncremental(opts ...ParseOption) *Incremental {
	return &Incremental{pOpts: newParseOpts(opts)}
}

// Feed appends a chunk of input.
func (p *Incremental) Feed(chunk []byte) {
	p.buf = append(p.buf, chunk...)
}

// CloseInput marks the end of the stream: pending atoms that only EOF can
// delimit become available, and incomplete structures become hard errors.
func (p *Incremental) CloseInput() {
	p.eof = true
}

// Next returns the next complete top-level value. It returns ErrNeedMore
// while the buffered prefix is a valid but incomplete value, io.EOF at
// the clean end of a closed stream, and a hard parse error when the
// prefix is invalid regardless of further input. Hard errors are sticky.
func (p *Incremental) Next() (*ir.Node, error) {
	if p.err != nil {
		return nil, p.err
	}
	tz := token.NewStreamTokenizer(p.buf[p.off:], p.base+p.off, p.eof, p.pOpts.tokenOpts()...)
	node, err := parseOne(tz)
	switch {
	case err == io.EOF:
		return nil, io.EOF
	case errors.Is(err, ErrNeedMore):
		return nil, ErrNeedMore
	case err != nil:
		p.err = err
		return nil, err
	}
	p.off = tz.Offset() - p.base
	p.compact()
	return node, nil
}

// compact drops consumed bytes from the buffer front once enough have
// accumulated, keeping memory bounded on a live source.
const compactThreshold = 4096

func (p *Incremental) compact() {
	if p.off < compactThreshold {
		return
	}
	p.base += p.off
	p.buf = append(p.buf[:0:0], p.buf[p.off:]...)
	p.off = 0
}

// NodeParser pulls chunks from an io.Reader and yields parsed top-level
// values one at a time.
//
// Example usage:
//
//	parser := parse.NewNodeParser(r)
//	for {
//	    node, err := parser.ParseNext()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    process(node)
//	}
type NodeParser struct {
	r   io.Reader
	inc *Incremental
	buf []byte
}

const readChunkSize = 4096

func NewNodeParser(r io.Reader, opts ...ParseOption) *NodeParser {
	return &NodeParser{
		r:   r,
		inc: NewIncremental(opts...),
		buf: make([]byte, readChunkSize),
	}
}

// ParseNext returns the next value, reading from the source as needed.
// It returns io.EOF when the source is exhausted and the buffer holds
// nothing but whitespace.
func (p *NodeParser) ParseNext() (*ir.Node, error) {
	for {
		node, err := p.inc.Next()
		if err == nil {
			return node, nil
		}
		if !errors.Is(err, ErrNeedMore) {
			return nil, err
		}
		n, rerr := p.r.Read(p.buf)
		if n > 0 {
			p.inc.Feed(p.buf[:n])
		}
		if rerr == io.EOF {
			p.inc.CloseInput()
			continue
		}
		if rerr != nil {
			return nil, rerr
		}
	}
}
