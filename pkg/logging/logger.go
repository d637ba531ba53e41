// Package logging provides structured logging for docverify using zerolog.
// Terminals get human-readable console output, pipes and files get JSON.
//
// Example usage:
//
//	log := logging.Default()
//	log.Info().Str("case", "durrani-ME4KC407JSA102577").Msg("Reconciling case")
//
//	ctx := logging.WithCase(context.Background(), "sample")
//	logging.FromContext(ctx).Debug().Int("documents", 8).Msg("Loaded case")
package logging

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Environment variables read by the logging package.
const (
	EnvLogLevel      = "LOG_LEVEL"
	EnvLogFormat     = "LOG_FORMAT"
	EnvLogOutput     = "LOG_OUTPUT"
	EnvLogTimeFormat = "LOG_TIME_FORMAT"
	EnvLogCaller     = "LOG_CALLER"
	EnvLogFields     = "LOG_FIELDS"
	EnvNoColor       = "NO_COLOR"
	EnvDebug         = "DEBUG"
)

// defaultLogger starts out configured from the environment so that packages
// logging before the CLI has parsed its flags still honor LOG_LEVEL.
var defaultLogger = NewLoggerFromConfig(FromEnv())

// Default returns the process-wide logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// SetDefault replaces the process-wide logger and zerolog's global one.
func SetDefault(logger zerolog.Logger) {
	defaultLogger = logger
	log.Logger = logger
}

// Debug starts a debug event on the default logger.
func Debug() *zerolog.Event { return defaultLogger.Debug() }

// Info starts an info event on the default logger.
func Info() *zerolog.Event { return defaultLogger.Info() }

// Warn starts a warn event on the default logger.
func Warn() *zerolog.Event { return defaultLogger.Warn() }

// Error starts an error event on the default logger.
func Error() *zerolog.Event { return defaultLogger.Error() }

func stderrIsTerminal() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
