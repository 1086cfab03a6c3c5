// Package config loads user settings for the scorecard request builder.
// Scorecards, metrics and dimensions are compiled in and never read from here.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds user settings.
type Config struct {
	// Pre-filled delivery address for new drafts
	DefaultEmail string `yaml:"default_email"`

	// Layout for typed dates (Go reference time)
	DateLayout string `yaml:"date_layout"`

	// Clipboard copy of the submitted payload
	Clipboard bool `yaml:"clipboard"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	File  string `yaml:"file"`  // empty disables file logging
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the settings used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		DateLayout: "2006-01-02",
		Clipboard:  true,
		Logging: LoggingConfig{
			File:  filepath.Join(defaultDir(), "sb.log"),
			Level: "info",
		},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(defaultDir(), "config.yaml")
}

func defaultDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".sb"
	}
	return filepath.Join(dir, "sb")
}

// Load reads the config file at path. A missing file yields the defaults.
// Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDotEnv loads a .env file from the working directory if one exists.
func LoadDotEnv() error {
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load()
}

// Save writes the config to path, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks values a broken file could carry.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging level: %q", c.Logging.Level)
	}
	if strings.TrimSpace(c.DateLayout) == "" {
		return fmt.Errorf("date_layout cannot be empty")
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("SB_EMAIL"); v != "" {
		c.DefaultEmail = v
	}
	if v := os.Getenv("SB_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
	if v := os.Getenv("SB_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}
