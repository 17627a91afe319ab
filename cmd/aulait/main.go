// Package main is the entry point for the Au Lait content server.
// It loads configuration, assembles the storage tier chain, sets up
// routing, and starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aulait/internal/cache"
	"aulait/internal/config"
	"aulait/internal/database"
	"aulait/internal/handlers"
	"aulait/internal/middleware"
	"aulait/internal/router"
	"aulait/internal/storage"
	"aulait/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Assemble the storage tiers in fallback priority order. The durable
	// content file is always first; PostgreSQL and Valkey join only when
	// configured; the in-process memory tier is always last.
	tiers := []store.Adapter{store.NewFileAdapter(cfg.ContentFile)}

	if cfg.DBConfigured() {
		db, err := database.Connect(cfg.DSN())
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := database.Migrate(db); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}

		// Seed the default document (no-op if content already exists).
		if cfg.IsDev() {
			if err := database.Seed(db); err != nil {
				slog.Error("failed to seed database", "error", err)
				os.Exit(1)
			}
		}

		tiers = append(tiers, store.NewPostgresAdapter(db))
	} else {
		slog.Info("postgres tier not configured")
	}

	if cfg.ValkeyConfigured() {
		// A dead Valkey is a degraded tier, not a fatal error: the file
		// tier still serves.
		valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			slog.Warn("valkey unreachable, skipping tier", "error", err)
		} else {
			defer valkeyClient.Close()
			tiers = append(tiers, store.NewValkeyAdapter(valkeyClient))
		}
	} else {
		slog.Info("valkey tier not configured")
	}

	tiers = append(tiers, store.NewMemoryAdapter())

	contentStore := store.New(tiers)
	slog.Info("content store assembled", "tiers", contentStore.Tiers())

	// Connect to S3-compatible object storage (optional, app works without it).
	storageClient, err := storage.New(
		cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
		cfg.S3Bucket, cfg.S3PublicURL,
	)
	if err != nil {
		slog.Error("failed to initialize S3 storage", "error", err)
		os.Exit(1)
	}
	if storageClient != nil {
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
	} else {
		slog.Warn("s3 storage not configured, media uploads disabled")
	}

	contentHandlers := handlers.NewContent(contentStore, cfg.AdminPasscode)
	mediaHandlers := handlers.NewMedia(storageClient)

	// 30 mutating requests per minute per client IP.
	limiter := middleware.NewRateLimiter(30, time.Minute)
	defer limiter.Stop()

	r := router.New(contentHandlers, mediaHandlers, limiter)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
