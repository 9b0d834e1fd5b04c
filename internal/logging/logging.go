// Package logging constructs the zerolog loggers used at the CLI and TUI
// boundaries. The engine packages stay purely functional; loggers are
// injected where side effects happen.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to w at the given level. Unknown
// level strings fall back to warn so a typo never silences errors.
func New(w io.Writer, level string) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.WarnLevel
	}

	writer := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	return zerolog.New(writer).Level(parsed).With().Timestamp().Logger()
}

// Default returns a stderr logger at the given level.
func Default(level string) zerolog.Logger {
	return New(os.Stderr, level)
}
