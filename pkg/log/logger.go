// Package log provides the structured logging setup for the project, backed
// by zerolog. Error and warning types from pkg/errors implement
// zerolog.LogObjectMarshaler, so logging them through this package yields
// fully structured events.
package log

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Neisser/machine-learning/pkg/errors"
)

var (
	mu     sync.RWMutex
	logger = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.InfoLevel)
)

// Setup configures the global logger with the given level and output.
// It also installs the warning sink so errors.Warn emits structured events.
func Setup(loglevel string, out io.Writer) {
	mu.Lock()
	logger = zerolog.New(out).With().Timestamp().Logger().Level(ToLogLevel(loglevel))
	mu.Unlock()

	errors.SetZerologWarnFunc(func(warning error) {
		l := Logger()
		e := l.Warn()
		if m, ok := warning.(zerolog.LogObjectMarshaler); ok {
			e.EmbedObject(m).Msg("warning")
			return
		}
		e.Err(warning).Msg("warning")
	})
}

// Logger returns the current global logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// With returns a child logger tagged with a component name.
func With(component string) zerolog.Logger {
	return Logger().With().Str("component", component).Logger()
}

// ToLogLevel converts a level name to a zerolog level. Unknown names panic,
// matching the fail-fast handling of startup configuration.
func ToLogLevel(level string) zerolog.Level {
	switch level {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		panic(fmt.Sprintf("invalid log level: %s", level))
	}
}
