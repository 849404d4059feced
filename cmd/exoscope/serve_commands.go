package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/oxygene76/exoscope/pkg/catalog"
	"github.com/oxygene76/exoscope/pkg/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the ranking page and JSON endpoint over HTTP",
	Long: `
Start the HTTP front end:

  GET /              HTML page with the ranked planets and statistics
  GET /get_planets/  compact JSON summary (planets, closest, summary, total)
  GET /healthz       catalog status

Query parameters: telescope_diameter, min_snr, max_distance,
habitable_only=on, k, start, count. Missing parameters use the configured
defaults; malformed ones are rejected with 400.
`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var serveAddr string

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	store, manager := newPipeline()
	if _, err := store.Snapshot(); err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	if config.StoreConfig().Refresh == catalog.RefreshWatch {
		watcher, err := store.Watch(ctx, config.Catalog.Debounce)
		if err != nil {
			return fmt.Errorf("failed to watch catalog: %w", err)
		}
		defer watcher.Close()
	}

	addr := config.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	srv := server.New(manager, store, config.Defaults, logger, config.Server.Mode)
	logger.Info("starting exoscope server",
		zap.String("addr", addr),
		zap.String("catalog", store.Path()),
		zap.String("refresh", config.Catalog.Refresh))
	return srv.Run(ctx, addr)
}
