package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/aretw0/bloch"
	httpAdapter "github.com/aretw0/bloch/internal/adapters/http"
	"github.com/aretw0/bloch/internal/presentation/tui"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long:  `Serves the interactive Bloch sphere page, the JSON API and circuit images over HTTP.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			port := a.cfg.Server.Port
			if cmd.Flags().Changed("port") {
				port, _ = cmd.Flags().GetString("port")
			}
			if _, err := strconv.ParseUint(port, 10, 16); err != nil {
				return fmt.Errorf("invalid port %q", port)
			}

			opts := []httpAdapter.Option{httpAdapter.WithLogger(a.logger)}
			if a.recorder != nil {
				opts = append(opts, httpAdapter.WithMetrics(a.cfg.Metrics.Path, a.recorder.Handler()))
			}

			srv := &http.Server{
				Addr:    ":" + port,
				Handler: httpAdapter.NewHandler(a.engine, opts...),
			}

			if tui.IsTerminal(os.Stdout) {
				tui.PrintBanner(cmd.OutOrStdout(), bloch.Version)
			}

			// Channel to listen for errors coming from the listener.
			serverErrors := make(chan error, 1)

			go func() {
				a.logger.Info("Starting Bloch server", "address", srv.Addr, "projection", a.engine.Projection())
				serverErrors <- srv.ListenAndServe()
			}()

			shutdown := make(chan os.Signal, 1)
			signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(shutdown)

			select {
			case err := <-serverErrors:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return fmt.Errorf("server error: %w", err)

			case sig := <-shutdown:
				a.logger.Info("Start shutdown", "signal", sig.String())

				timeout := a.cfg.Server.ShutdownTimeout
				ctx, cancel := context.WithTimeout(context.Background(), timeout)
				defer cancel()

				if err := srv.Shutdown(ctx); err != nil {
					a.logger.Error("Graceful shutdown did not complete", "timeout", timeout, "err", err)
					if err := srv.Close(); err != nil {
						return fmt.Errorf("could not stop server: %w", err)
					}
				}
				a.logger.Info("Bloch server stopped gracefully")
				return nil
			}
		},
	}
	cmd.Flags().StringP("port", "p", "", "Port to listen on (default from config)")
	return cmd
}
