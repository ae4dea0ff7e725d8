// Package logging configures the module's zerolog logger. The library's
// only log site is the large-atom warning emitted while decoding.
package logging

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	EnvLogLevel   = "SEXP_LOG_LEVEL"
	EnvLogNoColor = "SEXP_LOG_NOCOLOR"
)

var (
	configureOnce sync.Once
	logger        zerolog.Logger
)

func Logger() zerolog.Logger {
	configureOnce.Do(configure)
	return logger
}

func configure() {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    boolEnv(EnvLogNoColor),
	}
	logger = zerolog.New(output).With().Timestamp().Str("app", "sexp").Logger()
	logger = logger.Level(levelEnv())
}

// LargeAtom is the size-warning hook: form names the atom encoding that
// produced the payload, n is its decoded byte length.
func LargeAtom(form string, n int) {
	l := Logger()
	l.Warn().Str("component", form).Int("bytes", n).Msg("large atom")
}

func levelEnv() zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(EnvLogLevel))) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning", "":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off", "none":
		return zerolog.Disabled
	default:
		return zerolog.WarnLevel
	}
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}
