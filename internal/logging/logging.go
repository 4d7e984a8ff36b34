// Package logging builds the zerolog logger used by the command line tools.
package logging

import (
	"io"

	"github.com/rs/zerolog"
)

// Config selects the log level and output style.
type Config struct {
	Level  string
	Pretty bool
}

// New returns a logger writing to out. Unknown levels fall back to info.
func New(cfg Config, out io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: out}
	}
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
