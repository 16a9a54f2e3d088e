package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/pablotanner/RocketRealtor/internal/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func serveCmd() *cobra.Command {
	var autoMigrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(true)
			if err != nil {
				return err
			}
			defer a.close()

			if autoMigrate {
				if err := runMigrations(cmd.Context(), a); err != nil {
					return err
				}
			}

			handler := httpapi.NewHandler(a.cfg.HTTP.IdentityHeader, a.services(), a.ping, a.metrics, a.logger)
			srv := httpapi.NewServer(a.cfg.HTTP.Addr, handler, a.logger)

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.Start()
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(sigCh)

			select {
			case sig := <-sigCh:
				a.logger.Info("shutdown signal received", zap.String("signal", sig.String()))
			case err := <-errCh:
				if err != nil {
					a.logger.Error("HTTP server failed", zap.Error(err))
					return err
				}
				return nil
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Stop(shutdownCtx); err != nil {
				a.logger.Error("graceful shutdown failed", zap.Error(err))
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&autoMigrate, "migrate", false, "run schema migrations before serving")
	return cmd
}
