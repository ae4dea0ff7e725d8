// Package settings holds the option value object threaded through parse
// and encode calls. A Settings value is read-only and safe to share
// across concurrent invocations.
package settings

type Settings struct {
	// AllowComments controls whether ";" line comments are recognized
	// and skipped as whitespace.
	AllowComments bool
	// LargeAtomThreshold is the decoded byte size at or above which an
	// atom triggers the size-warning hook.
	LargeAtomThreshold int
	WarnOnLargeAtom    bool
	// PreferBase64MinLen is the minimum binary atom length at which
	// advanced output switches from hex to base64.
	PreferBase64MinLen int
	// PrettyIndent is the pretty-print indent width; nil means compact
	// single-line output.
	PrettyIndent *int
}

const (
	DefaultLargeAtomThreshold = 1 << 20
	DefaultPreferBase64MinLen = 48
	DefaultPrettyIndent       = 2
)

func Default() *Settings {
	return &Settings{
		AllowComments:      true,
		LargeAtomThreshold: DefaultLargeAtomThreshold,
		WarnOnLargeAtom:    true,
		PreferBase64MinLen: DefaultPreferBase64MinLen,
		PrettyIndent:       IndentWidth(DefaultPrettyIndent),
	}
}

// IndentWidth returns a PrettyIndent value for n spaces.
func IndentWidth(n int) *int {
	return &n
}
