// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds the application configuration.
type Config struct {
	Suggest SuggestConfig `toml:"suggest"`
	Output  OutputConfig  `toml:"output"`
	Log     LogConfig     `toml:"log"`
}

// SuggestConfig holds defaults for slot requests.
type SuggestConfig struct {
	Duration int    `toml:"duration"` // meeting length in minutes
	Events   string `toml:"events"`   // default events file (optional)
	Horizon  int    `toml:"horizon"`  // days searched by "next"
}

// OutputConfig holds output settings.
type OutputConfig struct {
	Format  string `toml:"format"` // "text" or "json"
	NoColor bool   `toml:"no_color"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Debug bool   `toml:"debug"`
	Level string `toml:"level"` // "debug", "info", "warn", "error"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Suggest: SuggestConfig{
			Duration: 60,
			Events:   "",
			Horizon:  14,
		},
		Output: OutputConfig{
			Format: FormatText,
		},
		Log: LogConfig{
			Level: "debug",
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "slotfinder", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Suggest.Events = expandPath(cfg.Suggest.Events)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("SLOTFINDER_DURATION"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SLOTFINDER_DURATION: %w", err)
		}
		cfg.Suggest.Duration = n
	}
	if v := os.Getenv("SLOTFINDER_EVENTS"); v != "" {
		cfg.Suggest.Events = v
	}
	if v := os.Getenv("SLOTFINDER_HORIZON"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SLOTFINDER_HORIZON: %w", err)
		}
		cfg.Suggest.Horizon = n
	}

	if v := os.Getenv("SLOTFINDER_FORMAT"); v != "" {
		cfg.Output.Format = strings.ToLower(v)
	}
	if v := os.Getenv("SLOTFINDER_NO_COLOR"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("SLOTFINDER_NO_COLOR: %w", err)
		}
		cfg.Output.NoColor = b
	}

	if v := os.Getenv("SLOTFINDER_DEBUG"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("SLOTFINDER_DEBUG: %w", err)
		}
		cfg.Log.Debug = b
	}
	if v := os.Getenv("SLOTFINDER_LOG_LEVEL"); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Suggest.Duration <= 0 {
		return errors.New("duration must be a positive number of minutes")
	}
	if c.Suggest.Horizon < 1 {
		return errors.New("horizon must be at least one day")
	}
	switch c.Output.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("invalid output format: %s", c.Output.Format)
	}
	if !validLevels[c.Log.Level] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}
	return nil
}

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
