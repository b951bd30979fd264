package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/quantrail/fundlens/internal/catalog"
	"github.com/quantrail/fundlens/internal/logging"
	"github.com/quantrail/fundlens/internal/mcp"
	"github.com/quantrail/fundlens/internal/search"
)

// newServeCmd creates the serve command for MCP mode.
func newServeCmd() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server on stdio",
		Long: `Serve the catalog search engine to AI clients over the Model Context
Protocol. stdout carries the JSON-RPC stream, so logs go only to
~/.fundlens/logs/.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			cleanup, err := logging.SetupMCPMode(cfg.Server.LogLevel)
			if err != nil {
				return fmt.Errorf("failed to setup logging: %w", err)
			}
			defer cleanup()

			engine, metrics, err := buildEngine(cfg)
			if err != nil {
				slog.Error("failed to build engine", "error", err)
				return err
			}

			server, err := mcp.NewServer(engine, metrics)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if watch || cfg.Catalog.Watch {
				if cfg.Catalog.Path == "" {
					return fmt.Errorf("--watch requires --catalog (the embedded dataset cannot change)")
				}
				debounce, err := cfg.WatchDebounce()
				if err != nil {
					return err
				}
				startWatcher(ctx, cfg.Catalog.Path, debounce, engine)
			}

			return server.Serve(ctx)
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "Reload the catalog when the file changes")
	return cmd
}

func startWatcher(ctx context.Context, path string, debounce time.Duration, engine *search.Engine) {
	w := catalog.NewWatcher(path, debounce, func(snap *catalog.Snapshot) {
		if err := engine.Reload(snap); err != nil {
			slog.Error("failed to swap catalog", "error", err)
		}
	}, slog.Default())

	go func() {
		if err := w.Run(ctx); err != nil {
			slog.Error("catalog watcher stopped", "error", err)
		}
	}()
}
