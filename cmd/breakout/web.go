package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/breakout-arcade/internal/platform/web"
)

var flagWebAddr string

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve the game to browsers",
	Long: `Start an HTTP server with a canvas page. The game runs on the
server; each browser tab gets its own game over a WebSocket.

Endpoints:
  /         - Game page
  /ws       - WebSocket session
  /healthz  - Health check

Examples:
  breakout web
  breakout web --addr 127.0.0.1:9000`,
	Args: cobra.NoArgs,
	RunE: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", ":8080", "HTTP listen address (host:port)")
}

func runWeb(cmd *cobra.Command, _ []string) error {
	game, err := loadGameConfig(cmd)
	if err != nil {
		return err
	}

	logger, closer, err := newLogger("breakout-web", os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg := web.ServerConfig{
		Address: flagWebAddr,
		Game:    game,
	}
	server := web.NewServer(cfg, logger)

	fmt.Printf("Serving Breakout on http://%s\n", displayAddr(flagWebAddr))
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.ListenAndServe(ctx)
}

// displayAddr fills in localhost for addresses without a host.
func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
