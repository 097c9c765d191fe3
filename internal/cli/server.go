package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/martijn/watchlist/internal/api"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServerCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "server",
		Short: "Start the web server",
		Long:  "Start the web server that serves the watchlist",
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := opts.initServices()
			if err != nil {
				return err
			}
			defer services.Close()

			server, err := api.NewServer(
				opts.cfg,
				opts.logger,
				services.AuthService,
				services.OwnerService,
				services.MovieService,
			)
			if err != nil {
				return err
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for interrupt signal or server error
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigChan)

			opts.logger.Info("server is ready, press Ctrl+C to stop")

			select {
			case err := <-serverErr:
				return fmt.Errorf("server error: %w", err)
			case <-sigChan:
				opts.logger.Info("shutting down gracefully")
			case <-cmd.Context().Done():
				opts.logger.Info("context cancelled, shutting down")
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("server shutdown error: %w", err)
			}

			opts.logger.Info("server stopped")
			return nil
		},
	}
}
