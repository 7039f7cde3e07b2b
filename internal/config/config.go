// Package config provides configuration management for bananasplit.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Version  int            `yaml:"version"`
	Home     string         `yaml:"home"`
	Split    SplitConfig    `yaml:"split"`
	Security SecurityConfig `yaml:"security"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`

	// Warnings holds non-fatal problems for the caller to report; not
	// persisted. ApplyEnvironment does not add to it: an invalid
	// environment value is ignored without a warning.
	Warnings []string `yaml:"-"`
}

// SplitConfig holds default total/threshold share counts. The split
// command does not read them: its --total and --threshold flags have
// their own fixed defaults of 5 and 3.
type SplitConfig struct {
	DefaultTotal     int `yaml:"default_total"`
	DefaultThreshold int `yaml:"default_threshold"`
}

// SecurityConfig defines security settings.
type SecurityConfig struct {
	MemoryLock           bool `yaml:"memory_lock"`
	RecoverBurst         int  `yaml:"recover_burst"`
	RecoverIntervalMilli int  `yaml:"recover_interval_millis"`
}

// OutputConfig defines output formatting settings.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
	Color         string `yaml:"color"`
	Verbose       bool   `yaml:"verbose"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Load reads configuration from the specified file.
func Load(path string) (*Config, error) {
	// #nosec G304 -- config file path is from validated user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes configuration to the specified file.
func Save(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o600)
}

// Path returns the default config file path.
func Path(home string) string {
	return filepath.Join(home, "config.yaml")
}

// GetHome returns the bananasplit home directory path.
func (c *Config) GetHome() string {
	return c.Home
}

// GetLoggingLevel returns the configured logging level.
func (c *Config) GetLoggingLevel() string {
	return c.Logging.Level
}

// GetLoggingFile returns the configured log file path.
func (c *Config) GetLoggingFile() string {
	return c.Logging.File
}

// GetOutputFormat returns the default output format.
func (c *Config) GetOutputFormat() string {
	return c.Output.DefaultFormat
}

// IsVerbose returns true if verbose output is enabled.
func (c *Config) IsVerbose() bool {
	return c.Output.Verbose
}

// GetSecurity returns the security configuration.
func (c *Config) GetSecurity() SecurityConfig {
	return c.Security
}

// DefaultHome returns the default bananasplit home directory.
func DefaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".bananasplit"
	}
	return filepath.Join(home, ".bananasplit")
}
