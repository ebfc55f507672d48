package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/harrison/consoleprogress/internal/logger"
)

// FileName is the configuration file looked up in the working directory.
const FileName = ".consoleprogress.yaml"

// Config represents consoleprogress configuration options
type Config struct {
	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LogDir is the directory for per-run log files (empty = console only)
	LogDir string `yaml:"log_dir"`

	// Interval is the pause between demo steps
	Interval time.Duration `yaml:"interval"`

	// Steps is the number of progress steps each demo scenario runs
	Steps int `yaml:"steps"`

	// BarWidth is the width in cells of rendered progress bars
	BarWidth int `yaml:"bar_width"`

	// Workers is the number of background writers in the workers scenario
	Workers int `yaml:"workers"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		LogDir:   "",
		Interval: 100 * time.Millisecond,
		Steps:    50,
		BarWidth: 50,
		Workers:  2,
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Durations are read as strings so "250ms" works in YAML.
	type yamlConfig struct {
		LogLevel string `yaml:"log_level"`
		LogDir   string `yaml:"log_dir"`
		Interval string `yaml:"interval"`
		Steps    *int   `yaml:"steps"`
		BarWidth *int   `yaml:"bar_width"`
		Workers  *int   `yaml:"workers"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(yamlCfg.LogLevel))
	}
	if yamlCfg.LogDir != "" {
		cfg.LogDir = yamlCfg.LogDir
	}
	if yamlCfg.Interval != "" {
		interval, err := time.ParseDuration(yamlCfg.Interval)
		if err != nil {
			return nil, fmt.Errorf("invalid interval format %q: %w", yamlCfg.Interval, err)
		}
		cfg.Interval = interval
	}
	if yamlCfg.Steps != nil {
		cfg.Steps = *yamlCfg.Steps
	}
	if yamlCfg.BarWidth != nil {
		cfg.BarWidth = *yamlCfg.BarWidth
	}
	if yamlCfg.Workers != nil {
		cfg.Workers = *yamlCfg.Workers
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from .consoleprogress.yaml in the specified directory
// If the directory or file doesn't exist, returns default configuration without error
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, FileName))
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(logLevel *string, logDir *string, interval *time.Duration, steps *int) {
	if logLevel != nil {
		c.LogLevel = strings.ToLower(strings.TrimSpace(*logLevel))
	}
	if logDir != nil {
		c.LogDir = *logDir
	}
	if interval != nil {
		c.Interval = *interval
	}
	if steps != nil {
		c.Steps = *steps
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	if !logger.ValidLogLevel(c.LogLevel) {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	if c.Interval < 0 {
		return fmt.Errorf("interval must be >= 0, got %v", c.Interval)
	}
	if c.Steps <= 0 {
		return fmt.Errorf("steps must be > 0, got %d", c.Steps)
	}
	if c.BarWidth <= 0 {
		return fmt.Errorf("bar_width must be > 0, got %d", c.BarWidth)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be > 0, got %d", c.Workers)
	}

	return nil
}
