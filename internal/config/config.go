// ABOUTME: User configuration for output and logging defaults.
// ABOUTME: Stored as JSON under the XDG config directory.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/harperreed/gains/internal/logging"
	"github.com/harperreed/gains/internal/report"
)

// Config stores gains tool configuration.
type Config struct {
	// Format is the default output format: text, json, yaml, markdown, or html.
	Format string `json:"format,omitempty"`

	// NoColor disables colored terminal output.
	NoColor bool `json:"no_color,omitempty"`

	// LogLevel sets the diagnostic log level written to stderr. Defaults to warn.
	LogLevel string `json:"log_level,omitempty"`
}

// Keys lists the settable configuration keys.
var Keys = []string{"format", "no_color", "log_level"}

// GetFormat returns the configured output format, defaulting to "text".
func (c *Config) GetFormat() string {
	if c.Format == "" {
		return string(report.FormatText)
	}
	return c.Format
}

// GetLogLevel returns the configured log level, defaulting to "warn".
func (c *Config) GetLogLevel() string {
	if c.LogLevel == "" {
		return "warn"
	}
	return c.LogLevel
}

// Set assigns a single key from its string form.
func (c *Config) Set(key, value string) error {
	switch key {
	case "format":
		if _, err := report.ParseFormat(value); err != nil {
			return err
		}
		c.Format = value
	case "no_color":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for no_color: %s", value)
		}
		c.NoColor = b
	case "log_level":
		if !slices.Contains(logging.Levels, value) {
			return fmt.Errorf("unknown log level: %s (use %s)", value, strings.Join(logging.Levels, ", "))
		}
		c.LogLevel = value
	default:
		return fmt.Errorf("unknown config key: %q (use %s)", key, strings.Join(Keys, ", "))
	}
	return nil
}

// Repair clears stored values that fail validation so their defaults apply.
// It returns one error per cleared key.
func (c *Config) Repair() []error {
	var errs []error
	if c.Format != "" {
		if _, err := report.ParseFormat(c.Format); err != nil {
			errs = append(errs, fmt.Errorf("format: %w", err))
			c.Format = ""
		}
	}
	if c.LogLevel != "" && !slices.Contains(logging.Levels, c.LogLevel) {
		errs = append(errs, fmt.Errorf("log_level: unknown log level: %s (use %s)", c.LogLevel, strings.Join(logging.Levels, ", ")))
		c.LogLevel = ""
	}
	return errs
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// GetConfigPath returns the config file path. GAINS_CONFIG overrides the
// XDG location.
func GetConfigPath() string {
	if p := os.Getenv("GAINS_CONFIG"); p != "" {
		return ExpandPath(p)
	}
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "gains", "config.json")
}

// Load reads config from disk. A missing file yields defaults.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
