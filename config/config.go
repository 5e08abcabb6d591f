package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds the rendering run parameters. The defaults reproduce the
// optimization model's conventions: first simulated day, no generator layer,
// inputs and outputs under results/.
type Config struct {
	// Input is the CSV produced by the optimization run.
	Input string `json:"input"`
	// Output is the PNG destination, overwritten on every run.
	Output string `json:"output"`
	// HTMLOutput enables an additional interactive chart when non-empty.
	HTMLOutput string `json:"html_output"`
	// Day selects which simulated day to plot, counted from zero.
	Day int `json:"day"`
	// Generator adds the generator production band to the stack.
	Generator bool        `json:"generator"`
	Chart     ChartConfig `json:"chart"`
}

// ChartConfig sets the PNG canvas size in pixels.
type ChartConfig struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.Input == "" {
		c.Input = "results/optimal_dispatch.csv"
	}
	if c.Output == "" {
		c.Output = "results/dispatch_plot.png"
	}
	if c.Chart.Width == 0 {
		c.Chart.Width = 1200
	}
	if c.Chart.Height == 0 {
		c.Chart.Height = 800
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if c.Day < 0 {
		return fmt.Errorf("day must be non-negative, got %d", c.Day)
	}
	if c.Chart.Width < 0 || c.Chart.Height < 0 {
		return fmt.Errorf("chart size must be non-negative")
	}
	return nil
}

// Load reads the configuration from path with MG_-prefixed environment
// overrides. A missing file is not an error: defaults apply, so the binary
// runs with no configuration at all.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	if err := k.Load(env.Provider("MG_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "mg_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
