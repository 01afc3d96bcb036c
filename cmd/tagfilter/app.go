// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/taibuivan/tagfilter/internal/api"
	"github.com/taibuivan/tagfilter/internal/content"
	"github.com/taibuivan/tagfilter/internal/platform/config"
	"github.com/taibuivan/tagfilter/internal/platform/constants"
	pgstore "github.com/taibuivan/tagfilter/internal/platform/postgres"
	redisstore "github.com/taibuivan/tagfilter/internal/platform/redis"
	"github.com/taibuivan/tagfilter/internal/platform/sqlite"
	"github.com/taibuivan/tagfilter/internal/taxonomy"
	"github.com/taibuivan/tagfilter/internal/views"
	"github.com/taibuivan/tagfilter/internal/views/argument"
)

// newLogger builds the JSON process logger with the app attribute attached.
func newLogger(out io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))
	return logger.With(slog.String("app", constants.AppName))
}

// app holds the storage-backed collaborators shared by serve and resolve.
type app struct {
	cfg     *config.Config
	log     *slog.Logger
	terms   taxonomy.Repository
	content content.Repository
	cache   views.ResultCache
	checks  []api.Check
	closers []func()
}

// openApp connects the configured database and, when REDIS_URL is set, the result cache.
func openApp(ctx context.Context, cfg *config.Config, log *slog.Logger) (*app, error) {
	a := &app{cfg: cfg, log: log, cache: views.NopCache{}}

	switch cfg.DatabaseDriver {
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.DatabaseURL, log)
		if err != nil {
			return nil, err
		}
		a.useSQLite(db)

	default:
		pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
		if err != nil {
			return nil, err
		}
		a.usePostgres(pool)
	}

	if cfg.CacheEnabled() {
		client, err := redisstore.NewClient(ctx, cfg.RedisURL, log)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.useRedis(client)
	}

	return a, nil
}

func (a *app) useSQLite(db *sql.DB) {
	a.terms = taxonomy.NewSQLiteRepository(db)
	a.content = content.NewSQLiteRepository(db)
	a.checks = append(a.checks, api.Check{Name: "sqlite", Probe: func(ctx context.Context) error {
		return sqlite.Ping(ctx, db)
	}})
	a.closers = append(a.closers, func() {
		a.log.Info("closing_sqlite_database")
		_ = db.Close()
	})
}

func (a *app) usePostgres(pool *pgxpool.Pool) {
	a.terms = taxonomy.NewPostgresRepository(pool)
	a.content = content.NewPostgresRepository(pool)
	a.checks = append(a.checks, api.Check{Name: "postgres", Probe: func(ctx context.Context) error {
		return pgstore.Ping(ctx, pool)
	}})
	a.closers = append(a.closers, func() {
		a.log.Info("closing_postgres_pool")
		pool.Close()
	})
}

func (a *app) useRedis(client *goredis.Client) {
	a.cache = views.NewRedisCache(client)
	a.checks = append(a.checks, api.Check{Name: "redis", Probe: func(ctx context.Context) error {
		return redisstore.Ping(ctx, client)
	}})
	a.closers = append(a.closers, func() {
		a.log.Info("closing_redis_client")
		if err := client.Close(); err != nil {
			a.log.Error("redis_close_failed", slog.Any("error", err))
		}
	})
}

// Close releases connections in reverse order of opening.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

// loadViews reads the view catalog named by VIEWS_FILE.
func (a *app) loadViews() (*views.Catalog, error) {
	catalog, err := views.LoadFile(a.cfg.ViewsFile, argument.DefaultRegistry())
	if err != nil {
		return nil, fmt.Errorf("load views: %w", err)
	}
	a.log.Info("views_loaded", slog.String("file", a.cfg.ViewsFile), slog.Int("count", len(catalog.List())))
	return catalog, nil
}

// newExecutor wires an executor; observer and recorder may be nil.
func (a *app) newExecutor(observer argument.Observer, recorder views.Recorder) *views.Executor {
	return views.NewExecutor(views.ExecutorConfig{
		Registry:  argument.DefaultRegistry(),
		Arguments: argument.Dependencies{Terms: a.terms, Observer: observer, Logger: a.log},
		Content:   a.content,
		Cache:     a.cache,
		Recorder:  recorder,
		Logger:    a.log,
	})
}
