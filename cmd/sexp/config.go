package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/NostraDavid/sexp/settings"
)

type fileConfig struct {
	AllowComments      bool `toml:"allow_comments"`
	LargeAtomThreshold int  `toml:"large_atom_threshold"`
	WarnOnLargeAtom    bool `toml:"warn_on_large_atom"`
	PreferBase64MinLen int  `toml:"prefer_base64_min_len"`
	PrettyIndent       int  `toml:"pretty_indent"`
	Compact            bool `toml:"compact"`
}

// loadSettings layers a TOML file over the defaults. An empty path means
// defaults only.
func loadSettings(path string) (*settings.Settings, error) {
	cfg := settings.Default()
	if path == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	if meta.IsDefined("allow_comments") {
		cfg.AllowComments = raw.AllowComments
	}
	if meta.IsDefined("large_atom_threshold") {
		if raw.LargeAtomThreshold < 0 {
			return nil, fmt.Errorf("load settings: negative large_atom_threshold")
		}
		cfg.LargeAtomThreshold = raw.LargeAtomThreshold
	}
	if meta.IsDefined("warn_on_large_atom") {
		cfg.WarnOnLargeAtom = raw.WarnOnLargeAtom
	}
	if meta.IsDefined("prefer_base64_min_len") {
		if raw.PreferBase64MinLen < 0 {
			return nil, fmt.Errorf("load settings: negative prefer_base64_min_len")
		}
		cfg.PreferBase64MinLen = raw.PreferBase64MinLen
	}
	if meta.IsDefined("pretty_indent") {
		if raw.PrettyIndent < 0 {
			return nil, fmt.Errorf("load settings: negative pretty_indent")
		}
		cfg.PrettyIndent = settings.IndentWidth(raw.PrettyIndent)
	}
	if meta.IsDefined("compact") && raw.Compact {
		cfg.PrettyIndent = nil
	}
	return cfg, nil
}
