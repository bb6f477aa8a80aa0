// Package logging provides the structured logger shared by every cli-calc
// component.
//
// All loggers derive from one [log/slog] text handler writing to stderr, so
// log lines never interleave with the TUI on stdout or with results printed
// by the one-shot commands. The starting level comes from CLI_CALC_LOG_LEVEL
// (debug, info, warn, error; default info) and can be changed at runtime
// with SetLevel, which the --log-level flag uses.
//
//	log := logging.New("catalog")
//	log.Debug("catalog loaded", "count", n)
package logging

import (
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	initLogger sync.Once
	baseLogger *slog.Logger

	// level is shared by the handler, so SetLevel affects loggers created
	// before the call too.
	level = new(slog.LevelVar)
)

// New returns a logger tagged with component="<component>". An empty
// component returns the base logger.
func New(component string) *slog.Logger {
	initLogger.Do(func() {
		level.Set(parseLevel(os.Getenv("CLI_CALC_LOG_LEVEL")))
		baseLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		}))
	})
	if component == "" {
		return baseLogger
	}
	return baseLogger.With("component", component)
}

// SetLevel changes the level of every logger. Unknown names select info.
func SetLevel(value string) {
	New("")
	level.Set(parseLevel(value))
}

// parseLevel maps a case-insensitive level name to a [slog.Level]:
// "debug", "warn"/"warning", "error"; anything else is info.
func parseLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
