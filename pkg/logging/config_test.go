package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/docverify/pkg/logging"
)

func restoreLogging(t *testing.T) {
	t.Helper()
	originalLogger := *logging.Default()
	originalLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		logging.SetDefault(originalLogger)
		zerolog.SetGlobalLevel(originalLevel)
	})
}

func TestDefaultConfig(t *testing.T) {
	cfg := logging.DefaultConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "auto", cfg.Format)
	assert.Equal(t, "stderr", cfg.Output)
	assert.False(t, cfg.AddCaller)
	assert.NotNil(t, cfg.Fields)
}

func TestFromEnv(t *testing.T) {
	t.Run("debug shortcut", func(t *testing.T) {
		t.Setenv(logging.EnvLogLevel, "")
		t.Setenv(logging.EnvDebug, "1")
		assert.Equal(t, "debug", logging.FromEnv().Level)
	})

	t.Run("log level wins over debug", func(t *testing.T) {
		t.Setenv(logging.EnvLogLevel, "error")
		t.Setenv(logging.EnvDebug, "1")
		assert.Equal(t, "error", logging.FromEnv().Level)
	})

	t.Run("fields and caller", func(t *testing.T) {
		t.Setenv(logging.EnvLogFields, "app=docverify, env = test,broken,=x")
		t.Setenv(logging.EnvLogCaller, "true")
		t.Setenv(logging.EnvLogTimeFormat, "rfc3339")

		cfg := logging.FromEnv()
		assert.Equal(t, map[string]string{"app": "docverify", "env": "test"}, cfg.Fields)
		assert.True(t, cfg.AddCaller)
		assert.Equal(t, "rfc3339", cfg.TimeFormat)
	})
}

func TestNewLoggerFromConfig(t *testing.T) {
	restoreLogging(t)

	path := filepath.Join(t.TempDir(), "log.json")
	logger := logging.NewLoggerFromConfig(&logging.Config{
		Level:  "debug",
		Format: "json",
		Output: path,
		Fields: map[string]string{"service": "docverify"},
	})
	logger.Info().Msg("file message")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "file message")
	assert.Contains(t, string(content), `"service":"docverify"`)
	assert.Contains(t, string(content), `"level":"info"`)
}

func TestConfigureLevels(t *testing.T) {
	restoreLogging(t)

	tests := []struct {
		level     string
		logFunc   func() *zerolog.Event
		shouldLog bool
	}{
		{"debug", logging.Debug, true},
		{"info", logging.Info, true},
		{"info", logging.Debug, false},
		{"warn", logging.Warn, true},
		{"warn", logging.Info, false},
		{"error", logging.Error, true},
		{"error", logging.Warn, false},
		{"bogus", logging.Info, true},
		{"warning", logging.Warn, true},
		{"off", logging.Error, false},
	}

	for _, tc := range tests {
		t.Run(tc.level, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "log.json")
			logging.Configure(&logging.Config{
				Level:  tc.level,
				Format: "json",
				Output: path,
			})
			tc.logFunc().Msg("level check")

			content, err := os.ReadFile(path)
			require.NoError(t, err)
			if tc.shouldLog {
				assert.Contains(t, string(content), "level check")
			} else {
				assert.Empty(t, string(content))
			}
		})
	}
}

func TestConsoleFormat(t *testing.T) {
	restoreLogging(t)

	path := filepath.Join(t.TempDir(), "log.txt")
	logger := logging.NewLoggerFromConfig(&logging.Config{
		Level:   "info",
		Format:  "console",
		Output:  path,
		NoColor: true,
	})
	logger.Info().Str("key", "value").Msg("console test")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "console test")
	assert.Contains(t, string(content), "INF")
}

func TestConfigureFromEnv(t *testing.T) {
	restoreLogging(t)

	path := filepath.Join(t.TempDir(), "env.json")
	t.Setenv(logging.EnvLogLevel, "warn")
	t.Setenv(logging.EnvLogFormat, "json")
	t.Setenv(logging.EnvLogOutput, path)
	t.Setenv(logging.EnvLogFields, "app=docverify, env = test,broken")

	logging.ConfigureFromEnv()
	logging.Info().Msg("hidden")
	logging.Warn().Msg("shown")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "hidden")
	assert.Contains(t, string(content), "shown")
	assert.Contains(t, string(content), `"app":"docverify"`)
	assert.Contains(t, string(content), `"env":"test"`)
}
