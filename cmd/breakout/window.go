package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/breakout-arcade/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a native window",
	Long: `Open a native window and play with the mouse or keyboard.

Controls:
  ←/→, A/D     - Move paddle (or use the mouse)
  Enter/Space  - Start, resume, play again
  P/Esc        - Pause/resume
  Q            - Quit

Examples:
  breakout window
  breakout window --scale 2`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1.5, "Window scale factor")
}

func runWindow(cmd *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig(cmd)
	if err != nil {
		return err
	}

	logger, closer, err := newLogger("breakout", os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	if err := window.Run(cfg, cfg.Loop.TickRate, flagScale, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
