package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/breakout-arcade/internal/core"
	"github.com/vovakirdan/breakout-arcade/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  ←/→, A/D, H/L  - Move paddle (or use the mouse)
  Enter/Space    - Start, resume, play again
  P/Esc          - Pause/resume
  ?              - More help
  Q/Ctrl+C       - Quit

Examples:
  breakout play
  breakout play --fps 30
  breakout play --config ./my-breakout.yaml --log-file ~/.arcade/breakout.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig(cmd)
	if err != nil {
		return err
	}

	// The terminal belongs to the game; logs only go to --log-file
	logger, closer, err := newLogger("breakout", nil)
	if err != nil {
		return err
	}
	defer closer.Close()

	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Loop.TickRate,
	}

	if err := tui.Run(cfg, rt, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
