package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/spf13/cobra"

	"tweet_sentiment/internal/api"
)

func serveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the reports and inserts over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.signalContext(cmd.Context())
			defer cancel()

			s, err := a.connect(ctx)
			if err != nil {
				return err
			}
			defer s.close()

			handler := api.NewHandler(s.reports, s.ingest, s.db, a.logger)
			srv := &http.Server{
				Addr:         a.cfg.HTTP.Addr,
				Handler:      api.NewRouter(handler),
				ReadTimeout:  a.cfg.HTTP.ReadTimeout,
				WriteTimeout: a.cfg.HTTP.WriteTimeout,
			}

			errCh := make(chan error, 1)
			go func() {
				a.logger.Info("http server listening", "addr", srv.Addr)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				if err != nil {
					a.logger.Error("http server failed", "error", err)
					return err
				}
				return nil
			case <-ctx.Done():
			}

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), a.cfg.HTTP.ShutdownTimeout)
			defer shutdownCancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				a.logger.Error("http server shutdown failed", "error", err)
				return err
			}
			a.logger.Info("http server stopped")
			return nil
		},
	}
}
