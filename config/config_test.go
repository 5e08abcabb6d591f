package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "results/optimal_dispatch.csv", cfg.Input)
	assert.Equal(t, "results/dispatch_plot.png", cfg.Output)
	assert.Empty(t, cfg.HTMLOutput)
	assert.Equal(t, 0, cfg.Day)
	assert.False(t, cfg.Generator)
	assert.Equal(t, 1200, cfg.Chart.Width)
	assert.Equal(t, 800, cfg.Chart.Height)
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "input: data/run.csv\nday: 3\ngenerator: true\nchart:\n  width: 640\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "data/run.csv", cfg.Input)
	assert.Equal(t, 3, cfg.Day)
	assert.True(t, cfg.Generator)
	assert.Equal(t, 640, cfg.Chart.Width)
	// Unset keys keep their defaults.
	assert.Equal(t, 800, cfg.Chart.Height)
	assert.Equal(t, "results/dispatch_plot.png", cfg.Output)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("MG_DAY", "5")
	t.Setenv("MG_CHART__WIDTH", "320")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Day)
	assert.Equal(t, 320, cfg.Chart.Width)
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	_, err := Load("config.toml")
	assert.Error(t, err)
}

func TestLoad_NegativeChartSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("chart:\n  width: -10\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-negative")
}

func TestLoad_NegativeDay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("day: -1\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-negative")
}
