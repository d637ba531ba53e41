package app

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/docverify/internal/cmd/output"
	"github.com/agentstation/docverify/pkg/constants"
	"github.com/agentstation/docverify/pkg/errors"
	"github.com/agentstation/docverify/pkg/logging"
)

// EnvPrefix prefixes environment overrides of config keys, e.g.
// DOCVERIFY_CASE_FILE or DOCVERIFY_RISK_THRESHOLD.
const EnvPrefix = "DOCVERIFY"

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose  bool
	Quiet    bool
	NoColor  bool
	Format   string
	LogLevel string

	// Config file
	ConfigFile string

	// Verification defaults
	CaseFile      string
	RiskThreshold int

	// Logging configuration
	EnvLogLevel string
	LogFormat   string
	LogOutput   string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables
// 3. .env files
// 4. Config file (~/.docverify.yaml or ./.docverify.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	return loadConfig("")
}

// loadConfig reads configuration, using configFile when set instead of
// searching the standard locations.
func loadConfig(configFile string) (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	v.SetDefault("verbose", false)
	v.SetDefault("quiet", false)
	v.SetDefault("no-color", os.Getenv(logging.EnvNoColor) != "")
	v.SetDefault("format", "")
	v.SetDefault("case_file", "")
	v.SetDefault("risk_threshold", 0)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("config", "failed to read "+configFile, err)
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(constants.ConfigFileName)

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errors.NewConfigError("config", "failed to read config file", err)
			}
		}
	}

	config := &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no-color"),
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),

		CaseFile:      v.GetString("case_file"),
		RiskThreshold: v.GetInt("risk_threshold"),

		EnvLogLevel: getEnvOrDefault(logging.EnvLogLevel, ""),
		LogFormat:   getEnvOrDefault(logging.EnvLogFormat, "auto"),
		LogOutput:   getEnvOrDefault(logging.EnvLogOutput, "stderr"),
	}

	// A relative case_file in a config file is relative to that file.
	if config.CaseFile != "" && config.ConfigFile != "" && !filepath.IsAbs(config.CaseFile) && v.InConfig("case_file") {
		config.CaseFile = filepath.Join(filepath.Dir(config.ConfigFile), config.CaseFile)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks values that would otherwise fail late inside a command.
func (c *Config) Validate() error {
	if _, err := output.ParseFormat(c.Format); err != nil {
		return errors.NewConfigError("format", "invalid output format", err)
	}
	if c.RiskThreshold < 0 || c.RiskThreshold > constants.MaxRiskScore {
		return errors.NewConfigError("risk_threshold", "must be between 0 and 100", errors.ErrInvalidInput)
	}
	return nil
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads environment variables from .env files.
// Variables already set in the environment are never overwritten, and
// .env.local is loaded first so its values win over .env. When a file
// was loaded the default logger is rebuilt so LOG_* values from it apply.
func loadEnvFiles() {
	loaded := false
	for _, envFile := range []string{".env.local", ".env"} {
		if godotenv.Load(envFile) == nil {
			loaded = true
		}
	}
	if loaded {
		logging.ConfigureFromEnv()
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
