package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/docverify/pkg/constants"
)

// Config describes how a logger is built.
type Config struct {
	Level      string // trace, debug, info, warn, error, disabled
	Format     string // auto, json, console
	Output     string // stderr, stdout, discard, or a file path
	TimeFormat string // kitchen, rfc3339, unix, or a Go layout
	NoColor    bool
	AddCaller  bool

	// Fields are attached to every event, e.g. LOG_FIELDS=app=docverify.
	Fields map[string]string
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{
		Level:      "info",
		Format:     "auto",
		Output:     "stderr",
		TimeFormat: "kitchen",
		NoColor:    os.Getenv(EnvNoColor) != "",
		Fields:     map[string]string{},
	}
}

// FromEnv builds a Config from the LOG_* variables. DEBUG=1 stands in for
// LOG_LEVEL=debug when LOG_LEVEL is unset.
func FromEnv() *Config {
	cfg := DefaultConfig()
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Level = v
	} else if os.Getenv(EnvDebug) != "" {
		cfg.Level = "debug"
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv(EnvLogOutput); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv(EnvLogTimeFormat); v != "" {
		cfg.TimeFormat = v
	}
	cfg.AddCaller = os.Getenv(EnvLogCaller) == "true"
	cfg.Fields = parseFields(os.Getenv(EnvLogFields))
	return cfg
}

// NewLoggerFromConfig builds a logger and lowers or raises zerolog's global
// level to match. Debug and trace loggers always carry the caller.
func NewLoggerFromConfig(cfg *Config) zerolog.Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	level := parseLevel(cfg.Level)
	zerolog.SetGlobalLevel(level)

	ctx := zerolog.New(cfg.writer()).Level(level).With().Timestamp()
	if cfg.AddCaller || level <= zerolog.DebugLevel {
		ctx = ctx.Caller()
	}
	for k, v := range cfg.Fields {
		ctx = ctx.Str(k, v)
	}
	return ctx.Logger()
}

// Configure replaces the default logger.
func Configure(cfg *Config) {
	SetDefault(NewLoggerFromConfig(cfg))
}

// ConfigureFromEnv replaces the default logger with one built by FromEnv.
func ConfigureFromEnv() {
	Configure(FromEnv())
}

func (c *Config) destination() io.Writer {
	switch strings.ToLower(c.Output) {
	case "", "stderr":
		return os.Stderr
	case "stdout":
		return os.Stdout
	case "discard", "none":
		return io.Discard
	}
	f, err := os.OpenFile(c.Output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return os.Stderr
	}
	return f
}

func (c *Config) writer() io.Writer {
	out := c.destination()

	console := false
	switch strings.ToLower(c.Format) {
	case "console", "pretty":
		console = true
	case "", "auto":
		console = out == os.Stderr && stderrIsTerminal()
	}
	if !console {
		return out
	}
	return zerolog.ConsoleWriter{Out: out, TimeFormat: timeLayout(c.TimeFormat), NoColor: c.NoColor}
}

var levelAliases = map[string]zerolog.Level{
	"":         zerolog.InfoLevel,
	"warning":  zerolog.WarnLevel,
	"none":     zerolog.Disabled,
	"off":      zerolog.Disabled,
	"disabled": zerolog.Disabled,
}

// parseLevel falls back to info for anything zerolog does not know.
func parseLevel(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if l, ok := levelAliases[s]; ok {
		return l
	}
	l, err := zerolog.ParseLevel(s)
	if err != nil || l == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return l
}

var timeLayouts = map[string]string{
	"kitchen":     time.Kitchen,
	"rfc3339":     time.RFC3339,
	"rfc3339nano": time.RFC3339Nano,
	"stamp":       time.Stamp,
	"unix":        "",
	"epoch":       "",
}

// timeLayout resolves a named layout; strings that look like a Go layout pass through.
func timeLayout(name string) string {
	if layout, ok := timeLayouts[strings.ToLower(name)]; ok {
		return layout
	}
	if strings.Contains(name, "2006") || strings.Contains(name, "15:04") {
		return name
	}
	return time.Kitchen
}

// parseFields reads comma-separated key=value pairs, skipping malformed ones.
func parseFields(s string) map[string]string {
	fields := map[string]string{}
	for _, pair := range strings.Split(s, ",") {
		k, v, ok := strings.Cut(pair, "=")
		if k = strings.TrimSpace(k); ok && k != "" {
			fields[k] = strings.TrimSpace(v)
		}
	}
	return fields
}
