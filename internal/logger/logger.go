// Package logger provides the process-wide structured logger.
package logger

import (
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

var (
	once     sync.Once
	instance zerolog.Logger
)

// Get returns the singleton logger, initializing it on first call. The
// level comes from LOG_LEVEL (default info). Output is human-readable on
// a terminal and JSON otherwise.
func Get() zerolog.Logger {
	once.Do(func() {
		instance = newLogger()
	})
	return instance
}

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if s := os.Getenv("LOG_LEVEL"); s != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(s)); err == nil {
			level = parsed
		}
	}

	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		console := zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: "15:04:05",
		}
		return zerolog.New(console).Level(level).With().Timestamp().Logger()
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
}
