package encode

import "github.com/NostraDavid/sexp/settings"

type EncodeOption func(*EncState)

// WithSettings applies a Settings value: base64 threshold and pretty
// indent. A nil value leaves the defaults in place.
func WithSettings(s *settings.Settings) EncodeOption {
	return func(es *EncState) {
		if s != nil {
			es.applySettings(s)
		}
	}
}

// Indent enables pretty output with an n-space indent per nesting level.
func Indent(n int) EncodeOption {
	return func(es *EncState) {
		es.pretty = true
		es.indent = n
	}
}

// Compact disables pretty indentation.
func Compact() EncodeOption {
	return func(es *EncState) { es.pretty = false }
}

// Base64Min sets the minimum binary atom length at which base64 is
// preferred over hex.
func Base64Min(n int) EncodeOption {
	return func(es *EncState) { es.b64Min = n }
}

// EncodeColors enables ANSI-colored output for terminal display.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.colors = c }
}
