package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Log defaults to JSON on stderr so packages can log before Init runs
// (and tests never hit a writerless logger).
var Log = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Init initializes the global logger. Development gets pretty console
// output; anything else gets JSON lines for log shippers.
func Init(env string) {
	zerolog.TimeFieldFormat = time.RFC3339

	if env == "development" {
		Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}).
			With().
			Timestamp().
			Caller().
			Logger()
	} else {
		Log = zerolog.New(os.Stdout).
			With().
			Timestamp().
			Logger()
	}
}

// Helper functions for common log levels
func Info() *zerolog.Event {
	return Log.Info()
}

func Error() *zerolog.Event {
	return Log.Error()
}

func Warn() *zerolog.Event {
	return Log.Warn()
}

func Debug() *zerolog.Event {
	return Log.Debug()
}

func Fatal() *zerolog.Event {
	return Log.Fatal()
}

// Event logs a named domain event (url_created, url_redirect, ...) at info
// level with a fixed field so downstream pipelines can filter on it.
func Event(name string) *zerolog.Event {
	return Log.Info().Str("event", name)
}
