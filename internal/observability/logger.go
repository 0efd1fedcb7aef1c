// Package observability provides logger initialization and formatted output
// utilities for verbose CLI mode.
package observability

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger configures the global zerolog logger. Format "pretty" enables
// the console writer for interactive use; anything else emits JSON.
func InitLogger(level, format string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}

	var output io.Writer = os.Stderr
	if format == "pretty" {
		output = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}

	log.Logger = zerolog.New(output).Level(parsed).With().Timestamp().Logger()
}
