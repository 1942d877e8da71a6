package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/schoollibrary/lendingengine/library/api/httpapi"
	"github.com/schoollibrary/lendingengine/library/shared/shell"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the lending engine over HTTP",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		e, closeEngine, err := openEngine(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer closeEngine()

		gin.SetMode(gin.ReleaseMode)
		server := &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           httpapi.NewRouter(e, logger),
			ReadHeaderTimeout: 5 * time.Second,
		}

		serveErr := make(chan error, 1)
		go func() {
			logger.Info("http server listening", "addr", cfg.HTTPAddr)
			serveErr <- server.ListenAndServe()
		}()

		select {
		case err = <-serveErr:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-ctx.Done():
		}

		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err = server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http server shutdown failed", shell.LogAttrError, err.Error())
			return err
		}

		return nil
	},
}
