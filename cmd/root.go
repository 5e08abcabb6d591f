package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/AleOnori98/minigrid-dispatch/config"
	"github.com/AleOnori98/minigrid-dispatch/core/dispatch"
	"github.com/AleOnori98/minigrid-dispatch/core/series"
	"github.com/AleOnori98/minigrid-dispatch/infra/logger"
	"github.com/AleOnori98/minigrid-dispatch/infra/render"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "minigrid-dispatch",
	Short: "Render a dispatch chart from mini-grid optimization results",
	RunE:  run,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logg := logger.New("render")

	ts, err := series.LoadFile(cfg.Input)
	if err != nil {
		return err
	}
	day, err := ts.Day(cfg.Day)
	if err != nil {
		return err
	}
	plan := dispatch.Build(day, cfg.Day, cfg.Generator)

	if dir := filepath.Dir(cfg.Output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("output dir: %w", err)
		}
	}
	f, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("create %s: %w", cfg.Output, err)
	}
	renderer := render.PNGRenderer{Width: cfg.Chart.Width, Height: cfg.Chart.Height}
	if err := renderer.Render(plan, f); err != nil {
		_ = f.Close()
		return fmt.Errorf("render %s: %w", cfg.Output, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", cfg.Output, err)
	}
	logg.Info().Str("path", cfg.Output).Int("day", cfg.Day+1).Msg("dispatch plot saved")

	if cfg.HTMLOutput != "" {
		h, err := os.Create(cfg.HTMLOutput)
		if err != nil {
			return fmt.Errorf("create %s: %w", cfg.HTMLOutput, err)
		}
		if err := render.RenderHTML(plan, h); err != nil {
			_ = h.Close()
			return fmt.Errorf("render %s: %w", cfg.HTMLOutput, err)
		}
		if err := h.Close(); err != nil {
			return fmt.Errorf("close %s: %w", cfg.HTMLOutput, err)
		}
		logg.Info().Str("path", cfg.HTMLOutput).Msg("interactive plot saved")
	}
	return nil
}
