// Package logging wires up the structured, leveled logger used across the
// tracker: a console writer for interactive terminals, JSON otherwise.
package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a component-scoped logger at the requested level. level
// accepts zerolog's textual levels ("debug", "info", "warn", "error");
// an unrecognized value defaults to info.
func New(component, level string) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}

	var writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}

	if fi, err := os.Stderr.Stat(); err == nil && (fi.Mode()&os.ModeCharDevice) == 0 {
		return zerolog.New(os.Stderr).
			With().
			Timestamp().
			Str("component", component).
			Logger().
			Level(parsed)
	}

	return zerolog.New(writer).
		With().
		Timestamp().
		Str("component", component).
		Logger().
		Level(parsed)
}
