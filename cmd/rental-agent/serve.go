package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/joestump/rental-agent/internal/handler"
	"github.com/joestump/rental-agent/internal/ollama"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard and JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = cfg.HTTP.Addr
			}

			database, archive, err := openArchive()
			if err != nil {
				return err
			}
			defer closeDB(database)

			gen, err := newGenerator()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			// Seeds the saved-posts gauge.
			if _, err := archive.Counts(ctx); err != nil {
				slog.Warn("count saved posts", "error", err)
			}

			prober := ollama.New(cfg)
			router := handler.NewRouter(handler.Deps{
				SessionManager: handler.NewSessionManager(database, cfg.DB.Driver, cfg.SessionLifetime),
				Generator:      gen,
				Prober:         prober,
				Archive:        archive,
				OutputDir:      cfg.OutputDir,
			})

			srv := &http.Server{
				Addr:              addr,
				Handler:           router,
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				slog.Info("listening", "addr", addr, "ollama", prober.BaseURL(), "output_dir", cfg.OutputDir)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			case <-ctx.Done():
			}

			slog.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: config http.addr)")
	return cmd
}
