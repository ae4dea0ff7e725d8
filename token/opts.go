package token

import "github.com/NostraDavid/sexp/internal/logging"

type tokenOpts struct {
	comments      bool
	quoteSugar    bool
	warnOnLarge   bool
	warnThreshold int
	warn          func(form string, n int)
}

const DefaultLargeAtomThreshold = 1 << 20

func defaultOpts() *tokenOpts {
	return &tokenOpts{
		comments:      true,
		warnOnLarge:   true,
		warnThreshold: DefaultLargeAtomThreshold,
		warn:          logging.LargeAtom,
	}
}

type Opt func(*tokenOpts)

// Comments controls whether ";" line comments are recognized and skipped
// as whitespace. When off, ";" is not a valid atom start.
func Comments(v bool) Opt {
	return func(o *tokenOpts) { o.comments = v }
}

// QuoteSugar enables the "'" shorthand token, an extension outside the
// RFC grammar.
func QuoteSugar(v bool) Opt {
	return func(o *tokenOpts) { o.quoteSugar = v }
}

// LargeAtomWarning configures the byte threshold at or above which a
// decoded atom triggers the warning hook.
func LargeAtomWarning(threshold int, enabled bool) Opt {
	return func(o *tokenOpts) {
		o.warnThreshold = threshold
		o.warnOnLarge = enabled
	}
}

// WarnFunc replaces the warning hook, mainly for tests.
func WarnFunc(f func(form string, n int)) Opt {
	return func(o *tokenOpts) { o.warn = f }
}
