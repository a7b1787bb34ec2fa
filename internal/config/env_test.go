package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"1", "1", true},
		{"true", "true", true},
		{"TRUE", "TRUE", true},
		{"yes", "yes", true},
		{"YES", "YES", true},
		{"on", "on", true},
		{"ON", "ON", true},
		{"with spaces", "  true  ", true},
		{"0", "0", false},
		{"false", "false", false},
		{"FALSE", "FALSE", false},
		{"no", "no", false},
		{"off", "off", false},
		{"empty", "", false},
		{"random", "random", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			result := parseBool(tc.input)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestApplyEnvironment_Home(t *testing.T) {
	cfg := Defaults()
	originalHome := cfg.Home

	t.Setenv(EnvHome, "/custom/home")
	ApplyEnvironment(cfg)

	assert.Equal(t, "/custom/home", cfg.Home)
	assert.NotEqual(t, originalHome, cfg.Home)
}

func TestApplyEnvironment_OutputFormat(t *testing.T) {
	cfg := Defaults()

	t.Setenv(EnvOutputFormat, "JSON")
	ApplyEnvironment(cfg)

	assert.Equal(t, "json", cfg.Output.DefaultFormat)
}

func TestApplyEnvironment_Verbose(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{"true", "true", true},
		{"1", "1", true},
		{"yes", "yes", true},
		{"false", "false", false},
		{"0", "0", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Defaults()

			t.Setenv(EnvVerbose, tc.value)
			ApplyEnvironment(cfg)

			assert.Equal(t, tc.expected, cfg.Output.Verbose)
		})
	}
}

func TestApplyEnvironment_LogLevel(t *testing.T) {
	cfg := Defaults()

	t.Setenv(EnvLogLevel, "DEBUG")
	ApplyEnvironment(cfg)

	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestApplyEnvironment_NoColor(t *testing.T) {
	cfg := Defaults()
	originalColor := cfg.Output.Color

	t.Setenv(EnvNoColor, "1")
	ApplyEnvironment(cfg)

	assert.Equal(t, "never", cfg.Output.Color)
	assert.NotEqual(t, originalColor, cfg.Output.Color)
}

func TestApplyEnvironment_IterationExponent(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected int
	}{
		{"valid positive", "3", 3},
		{"zero", "0", 0},
		{"negative", "-1", 0}, // Should not override (need >= 0)
		{"invalid", "abc", 0}, // Should not override
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Defaults()
			originalExp := cfg.Slip39.DefaultIterationExponent

			t.Setenv(EnvIterationExp, tc.value)
			ApplyEnvironment(cfg)

			if tc.name == "negative" || tc.name == "invalid" {
				assert.Equal(t, originalExp, cfg.Slip39.DefaultIterationExponent, "should not override with invalid value")
			} else {
				assert.Equal(t, tc.expected, cfg.Slip39.DefaultIterationExponent)
			}
		})
	}
}

func TestApplyEnvironment_Multiple(t *testing.T) {
	cfg := Defaults()

	t.Setenv(EnvHome, "/custom/home")
	t.Setenv(EnvOutputFormat, "json")
	t.Setenv(EnvVerbose, "true")
	t.Setenv(EnvIterationExp, "2")

	ApplyEnvironment(cfg)

	assert.Equal(t, "/custom/home", cfg.Home)
	assert.Equal(t, "json", cfg.Output.DefaultFormat)
	assert.True(t, cfg.Output.Verbose)
	assert.Equal(t, 2, cfg.Slip39.DefaultIterationExponent)
}
