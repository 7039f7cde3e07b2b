package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/bananasplit/internal/config"
)

func TestLoadSave_RoundTrip(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")

	cfg := config.Defaults()
	cfg.Split.DefaultTotal = 7
	cfg.Split.DefaultThreshold = 4
	cfg.Output.Verbose = true

	err := config.Save(cfg, path)
	require.NoError(t, err)

	_, err = os.Stat(path)
	require.NoError(t, err)

	loaded, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Version, loaded.Version)
	assert.Equal(t, cfg.Split.DefaultTotal, loaded.Split.DefaultTotal)
	assert.Equal(t, cfg.Split.DefaultThreshold, loaded.Split.DefaultThreshold)
	assert.Equal(t, cfg.Output.Verbose, loaded.Output.Verbose)
}

func TestDefaults(t *testing.T) {
	t.Parallel()
	cfg := config.Defaults()

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "~/.bananasplit", cfg.Home)
	assert.Equal(t, 5, cfg.Split.DefaultTotal)
	assert.Equal(t, 3, cfg.Split.DefaultThreshold)
	assert.True(t, cfg.Security.MemoryLock)
	assert.Equal(t, 5, cfg.Security.RecoverBurst)
	assert.Equal(t, 500, cfg.Security.RecoverIntervalMilli)
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

	t.Setenv("BANANASPLIT_HOME", "/custom/home")
	t.Setenv("BANANASPLIT_OUTPUT_FORMAT", "json")
	t.Setenv("BANANASPLIT_VERBOSE", "true")
	t.Setenv("BANANASPLIT_LOG_LEVEL", "debug")
	t.Setenv("BANANASPLIT_DEFAULT_TOTAL", "7")
	t.Setenv("BANANASPLIT_DEFAULT_THRESHOLD", "4")

	config.ApplyEnvironment(cfg)

	assert.Equal(t, "/custom/home", cfg.Home)
	assert.Equal(t, "json", cfg.Output.DefaultFormat)
	assert.True(t, cfg.Output.Verbose)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 7, cfg.Split.DefaultTotal)
	assert.Equal(t, 4, cfg.Split.DefaultThreshold)
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
			t.Setenv("BANANASPLIT_VERBOSE", tt.value)
			config.ApplyEnvironment(cfg)
			assert.Equal(t, tt.expected, cfg.Output.Verbose)
		})
	}
}

func TestApplyEnvironment_InvalidSplitValuesIgnored(t *testing.T) {
	tests := []struct {
		name string
		env  string
	}{
		{"not a number", "abc"},
		{"zero", "0"},
		{"negative", "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Defaults()
			want := cfg.Split.DefaultTotal
			t.Setenv("BANANASPLIT_DEFAULT_TOTAL", tt.env)
			config.ApplyEnvironment(cfg)
			assert.Equal(t, want, cfg.Split.DefaultTotal)
		})
	}
}

func TestConfigPath(t *testing.T) {
	t.Parallel()
	path := config.Path("/home/user/.bananasplit")
	assert.Equal(t, "/home/user/.bananasplit/config.yaml", path)
}

func TestDefaultHome(t *testing.T) {
	t.Parallel()
	home := config.DefaultHome()
	assert.Contains(t, home, ".bananasplit")
}
