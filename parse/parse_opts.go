package parse

import (
	"github.com/NostraDavid/sexp/settings"
	"github.com/NostraDavid/sexp/token"
)

type parseOpts struct {
	settings   *settings.Settings
	comments   *bool
	quoteSugar bool
	warn       func(form string, n int)
}

func newParseOpts(opts []ParseOption) *parseOpts {
	pOpts := &parseOpts{settings: settings.Default()}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts
}

func (o *parseOpts) tokenOpts() []token.Opt {
	comments := o.settings.AllowComments
	if o.comments != nil {
		comments = *o.comments
	}
	tOpts := []token.Opt{
		token.Comments(comments),
		token.LargeAtomWarning(o.settings.LargeAtomThreshold, o.settings.WarnOnLargeAtom),
	}
	if o.quoteSugar {
		tOpts = append(tOpts, token.QuoteSugar(true))
	}
	if o.warn != nil {
		tOpts = append(tOpts, token.WarnFunc(o.warn))
	}
	return tOpts
}

type ParseOption func(*parseOpts)

// WithSettings threads a Settings value through the parse. A nil value
// leaves the defaults in place.
func WithSettings(s *settings.Settings) ParseOption {
	return func(o *parseOpts) {
		if s != nil {
			o.settings = s
		}
	}
}

// ParseComments overrides the Settings comment policy for this call.
func ParseComments(v bool) ParseOption {
	return func(o *parseOpts) { o.comments = &v }
}

// WithQuoteSugar enables the "'x" -> (quote x) extension, which is not
// part of the RFC grammar and is off by default.
func WithQuoteSugar() ParseOption {
	return func(o *parseOpts) { o.quoteSugar = true }
}

// WithWarnFunc replaces the large-atom warning hook, mainly for tests.
func WithWarnFunc(f func(form string, n int)) ParseOption {
	return func(o *parseOpts) { o.warn = f }
}
