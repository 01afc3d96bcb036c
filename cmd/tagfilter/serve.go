// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/taibuivan/tagfilter/internal/api"
	"github.com/taibuivan/tagfilter/internal/platform/config"
	"github.com/taibuivan/tagfilter/internal/platform/constants"
	"github.com/taibuivan/tagfilter/internal/platform/metrics"
	"github.com/taibuivan/tagfilter/internal/platform/migration"
	"github.com/taibuivan/tagfilter/internal/taxonomy"
	"github.com/taibuivan/tagfilter/internal/views"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

/*
runServe is the server startup sequence.

 1. Logger and configuration.
 2. Database (postgres or sqlite) and the optional Redis result cache.
 3. Migrations (postgres only; sqlite applies its embedded schema on open).
 4. View catalog, metrics and handlers.
 5. HTTP server with graceful shutdown.
*/
func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}

	log := newLogger(os.Stdout, false)
	slog.SetDefault(log)
	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Debug {
		log = newLogger(os.Stdout, true)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("database_driver", cfg.DatabaseDriver),
		slog.Bool("cache_enabled", cfg.CacheEnabled()),
	)

	// Bounded so misconfiguration fails fast instead of hanging
	startupCtx, startupCancel := context.WithTimeout(parent, constants.ShutdownTimeout)
	defer startupCancel()

	a, err := openApp(startupCtx, cfg, log)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer a.Close()

	if cfg.DatabaseDriver == config.DriverPostgres {
		if err := migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
	}

	catalog, err := a.loadViews()
	if err != nil {
		return err
	}

	m := metrics.New()
	liveness, readiness := api.NewHealthHandlers(a.checks, log)

	// Cancelled on shutdown so background workers (rate limiter sweep) stop
	serverCtx, serverCancel := context.WithCancel(parent)
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Taxonomy:  taxonomy.NewHandler(taxonomy.NewService(a.terms, log)),
		Views:     views.NewHandler(catalog, a.newExecutor(m, m)),
		Metrics:   m.Handler(),
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(quit)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case <-parent.Done():
		log.Info("shutdown_context_cancelled")
	}

	log.Info("server_shutting_down", slog.Duration("timeout", constants.ShutdownTimeout))
	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("server_stopped_cleanly")
	return nil
}
