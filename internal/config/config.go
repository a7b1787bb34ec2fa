// Package config provides configuration management for Sigil.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Version  int           `yaml:"version"`
	Home     string        `yaml:"home"`
	Slip39   Slip39Config  `yaml:"slip39"`
	Security SecurityConfig `yaml:"security"`
	Output   OutputConfig  `yaml:"output"`
	Logging  LoggingConfig `yaml:"logging"`

	// Warnings is a list of non-fatal configuration issues. It is not read
	// from or written to YAML; neither ApplyEnvironment nor the CLI appends
	// to it or prints it.
	Warnings []string `yaml:"-"`
}

// Slip39Config defines default parameters for mnemonic generation.
type Slip39Config struct {
	DefaultIterationExponent int `yaml:"default_iteration_exponent"`
	DefaultGroupThreshold    int `yaml:"default_group_threshold"`
	DefaultMemberThreshold   int `yaml:"default_member_threshold"`
	DefaultMemberCount       int `yaml:"default_member_count"`
}

// SecurityConfig defines security settings.
type SecurityConfig struct {
	// MemoryLock is read from and written to the config file. No code in
	// this module consults it; buffers are not mlocked on its account.
	MemoryLock bool `yaml:"memory_lock"`
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

// GetHome returns the sigil home directory path.
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

// GetSlip39Defaults returns the default SLIP-39 generation parameters.
func (c *Config) GetSlip39Defaults() Slip39Config {
	return c.Slip39
}

// DefaultHome returns the default sigil home directory.
func DefaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".sigil"
	}
	return filepath.Join(home, ".sigil")
}
