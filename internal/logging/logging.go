// Package logging configures zerolog for wmgen. Logs go to the console only;
// the generator never creates files outside the project it scaffolds.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultLevel is used when a level name cannot be parsed.
const DefaultLevel = zerolog.WarnLevel

// ParseLevel maps a level name such as "debug" or "warn" to a zerolog level.
// Empty or unknown names yield DefaultLevel.
func ParseLevel(name string) zerolog.Level {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return DefaultLevel
	}
	lvl, err := zerolog.ParseLevel(name)
	if err != nil || lvl == zerolog.NoLevel {
		return DefaultLevel
	}
	return lvl
}

// Setup returns a console logger writing to w at the named level.
func Setup(level string, w io.Writer) zerolog.Logger {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
	}

	lvl := ParseLevel(level)
	logger := zerolog.New(consoleWriter).Level(lvl).With().Timestamp().Logger()

	// Add caller information for debug and trace levels
	if lvl <= zerolog.DebugLevel {
		logger = logger.With().Caller().Logger()
	}

	logger.Debug().Str("level", lvl.String()).Msg("Logger initialized")
	return logger
}

// For returns a logger tagged with a component name.
func For(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}
