// breakout is the classic brick-breaking game, playable in a terminal,
// over SSH, in a browser or in a native window.
//
// Usage:
//
//	breakout play            - Play in this terminal
//	breakout serve           - Start SSH server for remote play
//	breakout web             - Serve the game to browsers
//	breakout window          - Play in a native window
//	breakout config          - Print the default configuration
//
// Global flags:
//
//	--config <path>     - Game config YAML (default: search ~/.arcade/configs, ./configs)
//	--fps <rate>        - Override the tick rate from the config
//	--log-file <path>   - Write logs to a rotating file
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/breakout-arcade/internal/config"
	"github.com/vovakirdan/breakout-arcade/internal/logging"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - break every brick without losing the ball",
	Long: `Breakout is the classic brick-breaking game. Bounce the ball off
your paddle and clear the whole wall of bricks to win; miss the ball
once and the game is over.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  web      - Serve the game to browsers
  window   - Play in a native window
  config   - Print the default configuration

Examples:
  breakout play
  breakout play --config ./my-breakout.yaml
  breakout serve --ssh :2222
  breakout web --addr :8080
  breakout window --scale 2`,
	SilenceUsage:  true,
	SilenceErrors: true, // main prints the error
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second), overrides the config when set")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (rotated)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig loads the game config and applies --fps when given.
func loadGameConfig(cmd *cobra.Command) (config.BreakoutConfig, error) {
	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return config.BreakoutConfig{}, err
	}

	if cmd.Flags().Changed("fps") {
		if flagFPS <= 0 {
			return config.BreakoutConfig{}, fmt.Errorf("--fps must be positive, got %d", flagFPS)
		}
		cfg.Loop.TickRate = flagFPS
	}
	return cfg, nil
}

// newLogger builds the command's logger. Without --log-file output goes
// to fallback, which may be nil to discard it.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, io.Closer, error) {
	return logging.New(logging.Options{
		Level:    flagLogLevel,
		File:     flagLogFile,
		Prefix:   prefix,
		Fallback: fallback,
	})
}
