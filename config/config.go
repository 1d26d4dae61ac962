// Package config loads genpolicy configuration.
//
// Configuration is loaded from a single YAML file named by the
// GENPOLICY_CONFIG environment variable or the --config flag. Values
// absent from the file keep their defaults.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"genpolicy/core"
)

// EnvVar names the environment variable holding the config file path.
const EnvVar = "GENPOLICY_CONFIG"

// Config is the genpolicy configuration.
type Config struct {
	// Log configures diagnostic output.
	Log LogConfig `yaml:"log"`

	// Defaults override the system limits policies are compiled against.
	Defaults core.Defaults `yaml:"defaults"`
}

// LogConfig configures the slog handler.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	// Default: info
	Level string `yaml:"level"`

	// Format is text or json.
	// Default: text
	Format string `yaml:"format"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Defaults: core.DefaultBoundaries(),
	}
}

// Load loads configuration from the file named by GENPOLICY_CONFIG. When
// the variable is unset the defaults are returned.
func Load() (*Config, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile loads configuration from path over the defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration over the defaults and validates it.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// fillDefaults restores limits that the file cleared with an explicit null.
func (c *Config) fillDefaults() {
	builtin := core.DefaultBoundaries()
	if c.Defaults.Password.Length == nil {
		c.Defaults.Password.Length = builtin.Password.Length
	}
	if c.Defaults.Password.MinDigits == nil {
		c.Defaults.Password.MinDigits = builtin.Password.MinDigits
	}
	if c.Defaults.Password.MinSpecialCharacters == nil {
		c.Defaults.Password.MinSpecialCharacters = builtin.Password.MinSpecialCharacters
	}
	if c.Defaults.Passphrase.NumWords == nil {
		c.Defaults.Passphrase.NumWords = builtin.Passphrase.NumWords
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if _, err := ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("invalid log.format: %q (want text or json)", c.Log.Format))
	}
	if err := core.ValidateDefaults(c.Defaults); err != nil {
		errs = append(errs, fmt.Errorf("defaults: %w", err))
	}

	return errors.Join(errs...)
}

// ParseLevel maps a level name to its slog level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log.level: %q", level)
	}
}
