package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-extreme/internal/platform/web"
	"github.com/vovakirdan/snake-extreme/internal/registry"
)

var (
	flagHTTPAddr string
	flagWebMode  string
	flagMaxConns int
)

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Start the WebSocket server for browser play",
	Long: `Serve a small browser client and a WebSocket endpoint at /ws.

Every connection runs its own game. Pick a mode per connection with
?mode=snakex_classic and a player name with ?name=alice.

Examples:
  snakex web
  snakex web --http :9000 --mode snakex_classic
  snakex web --max-conns 16`,
	Args: cobra.NoArgs,
	RunE: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagHTTPAddr, "http", ":8080", "HTTP server address (host:port)")
	webCmd.Flags().StringVar(&flagWebMode, "mode", "snakex", "Default mode for new connections")
	webCmd.Flags().IntVar(&flagMaxConns, "max-conns", 64, "Maximum concurrent sessions (0 = no limit)")
}

func runWeb(_ *cobra.Command, _ []string) error {
	if !registry.Exists(flagWebMode) {
		return fmt.Errorf("unknown mode %q, run 'snakex list' to see available modes", flagWebMode)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := web.DefaultConfig()
	cfg.Address = flagHTTPAddr
	cfg.Mode = flagWebMode
	cfg.TickRate = flagFPS
	cfg.MaxConns = flagMaxConns
	cfg.Store = store
	cfg.Logger = serverLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Starting Snake Extreme web server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	return web.NewServer(cfg).ListenAndServe(ctx)
}
