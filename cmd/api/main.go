// Package main is the entry point for the Wayfarer API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/wayfarer-app/backend/internal/config"
	"github.com/wayfarer-app/backend/internal/handler"
	"github.com/wayfarer-app/backend/internal/kv"
	"github.com/wayfarer-app/backend/internal/middleware"
	"github.com/wayfarer-app/backend/internal/store"
	"github.com/wayfarer-app/backend/migrations"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// The default text logger is still active here; good enough for a fatal.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// log/slog is the stdlib structured logger introduced in Go 1.21.
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Persistence backend ----------------------------------------------
	// DATABASE_URL selects the Postgres backend; otherwise state lives in a
	// local JSON file. Either way the store sees the same kv.Store contract.
	var backend kv.Store
	if cfg.DatabaseURL != "" {
		if err := migrate(cfg.DatabaseURL); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}

		// pgxpool manages a pool of Postgres connections.
		// New() does not open connections immediately — the first query does.
		pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to create database pool", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		// Verify the DB is reachable before accepting traffic.
		if err := pool.Ping(context.Background()); err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		slog.Info("database connection established")
		backend = kv.NewPG(pool)
	} else {
		fileStore, err := kv.NewFile(cfg.DataFile)
		if err != nil {
			slog.Error("failed to open data file", "error", err)
			os.Exit(1)
		}
		slog.Info("using file persistence", "path", cfg.DataFile)
		backend = fileStore
	}

	// --- Travel store -----------------------------------------------------
	// Load must complete before the server accepts traffic: a mutation on an
	// unloaded store would otherwise clobber persisted data with empty state.
	travel := store.New(backend)
	if err := travel.Load(context.Background()); err != nil {
		slog.Error("failed to load travel store", "error", err)
		os.Exit(1)
	}
	slog.Info("travel store loaded",
		"trips", len(travel.Trips()),
		"expenses", len(travel.Expenses()),
		"bookmarks", len(travel.Bookmarks()),
	)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer.
	// RequestID generates a unique trace ID per request.
	// RealIP sets r.RemoteAddr from X-Forwarded-For / X-Real-IP (safe behind a proxy).
	// SlogLogger writes one structured JSON log line per request.
	// Recoverer catches panics and returns HTTP 500 instead of crashing.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	r.Mount("/", handler.NewServer(travel).Routes())

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// migrate brings the kv_blobs schema up to date using the embedded goose
// migrations. goose needs a database/sql handle, so a short-lived one is
// opened just for this.
func migrate(dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.UpContext(context.Background(), db, ".")
}
