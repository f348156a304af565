// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/danielhkuo/pollbooth/middleware"
	"github.com/danielhkuo/pollbooth/router"
)

const shutdownTimeout = 10 * time.Second

// NewServeCommand creates the serve command.
func NewServeCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
}

func runServe(ctx context.Context, opts *RootOptions) error {
	logger := opts.Logger
	cfg := opts.Config
	if err := cfg.RequireSecrets(); err != nil {
		return err
	}

	undo := zap.ReplaceGlobals(logger.Desugar())
	defer undo()

	store, closeStore, err := openStore(cfg)
	if err != nil {
		logger.Errorw("database connection failed", "error", err)
		return err
	}
	defer closeStore()
	logger.Infow("database ready", "type", cfg.DatabaseType)

	mux := router.NewRouter(opts.service(store), cfg, logger)

	server := &http.Server{
		Handler:           middleware.CORS(mux),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Warnw("graceful shutdown failed", "error", err)
		}
	}()

	logger.Infow("listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Errorw("server closed", "error", err)
		return err
	}
	logger.Infow("server closed")
	return nil
}
