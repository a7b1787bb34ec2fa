package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/sigil/internal/config"
)

func TestLoadSave_RoundTrip(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")

	cfg := config.Defaults()
	cfg.Slip39.DefaultIterationExponent = 2
	cfg.Output.Verbose = true

	err := config.Save(cfg, path)
	require.NoError(t, err)

	_, err = os.Stat(path)
	require.NoError(t, err)

	loaded, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Version, loaded.Version)
	assert.Equal(t, cfg.Slip39.DefaultIterationExponent, loaded.Slip39.DefaultIterationExponent)
	assert.Equal(t, cfg.Output.Verbose, loaded.Output.Verbose)
}

func TestDefaults(t *testing.T) {
	t.Parallel()
	cfg := config.Defaults()

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "~/.sigil", cfg.Home)
	assert.Equal(t, 0, cfg.Slip39.DefaultIterationExponent)
	assert.Equal(t, 1, cfg.Slip39.DefaultGroupThreshold)
	assert.Equal(t, 2, cfg.Slip39.DefaultMemberThreshold)
	assert.Equal(t, 3, cfg.Slip39.DefaultMemberCount)
	assert.True(t, cfg.Security.MemoryLock)
	assert.Equal(t, "auto", cfg.Output.DefaultFormat)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()
	_, err := config.Load("/nonexistent/config.yaml")
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")

	err := os.WriteFile(path, []byte("invalid: yaml: content: ["), 0o600)
	require.NoError(t, err)

	_, err = config.Load(path)
	assert.Error(t, err)
}

func TestSave_CreatesDirectory(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "subdir", "config.yaml")

	cfg := config.Defaults()
	err := config.Save(cfg, path)
	require.NoError(t, err)

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestApplyEnvironment(t *testing.T) {
	cfg := config.Defaults()

	t.Setenv("SIGIL_HOME", "/custom/home")
	t.Setenv("SIGIL_OUTPUT_FORMAT", "json")
	t.Setenv("SIGIL_VERBOSE", "true")
	t.Setenv("SIGIL_LOG_LEVEL", "debug")
	t.Setenv("SIGIL_ITERATION_EXPONENT", "3")

	config.ApplyEnvironment(cfg)

	assert.Equal(t, "/custom/home", cfg.Home)
	assert.Equal(t, "json", cfg.Output.DefaultFormat)
	assert.True(t, cfg.Output.Verbose)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 3, cfg.Slip39.DefaultIterationExponent)
}

func TestApplyEnvironment_NoColor(t *testing.T) {
	cfg := config.Defaults()

	t.Setenv("NO_COLOR", "1")
	config.ApplyEnvironment(cfg)

	assert.Equal(t, "never", cfg.Output.Color)
}

func TestApplyEnvironment_VerboseValues(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"on", true},
		{"false", false},
		{"0", false},
		{"no", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			cfg := config.Defaults()
			t.Setenv("SIGIL_VERBOSE", tt.value)
			config.ApplyEnvironment(cfg)
			assert.Equal(t, tt.expected, cfg.Output.Verbose)
		})
	}
}

func TestApplyEnvironment_IterationExponent_InvalidValues(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected int
	}{
		{"invalid string", "abc", 0},
		{"negative", "-1", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Defaults()
			t.Setenv("SIGIL_ITERATION_EXPONENT", tt.value)
			config.ApplyEnvironment(cfg)
			assert.Equal(t, tt.expected, cfg.Slip39.DefaultIterationExponent)
		})
	}
}

func TestConfigPath(t *testing.T) {
	t.Parallel()
	path := config.Path("/home/user/.sigil")
	assert.Equal(t, "/home/user/.sigil/config.yaml", path)
}

func TestDefaultHome(t *testing.T) {
	t.Parallel()
	home := config.DefaultHome()
	assert.Contains(t, home, ".sigil")
}
