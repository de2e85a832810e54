// Package diag holds the structured diagnostics logger shared by the
// simulation side of the viewer (constraint dumps, capture lifecycle).
// Frame-loop soft failures keep using the standard logger instead.
package diag

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the process-wide diagnostics sink. Main replaces it with a
// console-formatted logger; tests may point it at io.Discard.
var Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Setup installs a human-readable console logger on w.
func Setup(w io.Writer, verbose bool) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	Logger = zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// Discard routes diagnostics nowhere. Used by tests.
func Discard() {
	Logger = zerolog.New(io.Discard)
}
