// Package main is the entry point for the OXONN Technologies site backend.
// It loads configuration, connects to the optional collaborators (rate
// limiter store, email provider, CRM database, S3 content source), sets up
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

	"oxonnsite/internal/blog"
	"oxonnsite/internal/config"
	"oxonnsite/internal/database"
	"oxonnsite/internal/dispatch"
	"oxonnsite/internal/handlers"
	"oxonnsite/internal/ratelimit"
	"oxonnsite/internal/router"
	"oxonnsite/internal/store"
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
		"content_dir", cfg.ContentDir,
		"cache_ttl", cfg.CacheTTL.String(),
	)

	// Insight content source: S3 when configured, local directory otherwise.
	var source blog.Source = blog.NewDirSource(cfg.ContentDir)
	s3Source, err := blog.NewS3Source(cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3Prefix)
	if err != nil {
		slog.Error("failed to initialize s3 content source", "error", err)
		os.Exit(1)
	}
	if s3Source != nil {
		slog.Info("s3 content source active", "bucket", cfg.S3Bucket, "prefix", cfg.S3Prefix)
		source = s3Source
	}
	library := blog.New(source, cfg.CacheTTL)

	// Rate limiter: Redis-backed sliding window, or a fail-open no-op when
	// no backing store is configured.
	var limiter ratelimit.Limiter = ratelimit.Noop{}
	if cfg.RedisAddr != "" {
		client, err := ratelimit.Connect(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			slog.Error("failed to connect to redis", "error", err)
			os.Exit(1)
		}
		defer client.Close()
		limiter = ratelimit.NewRedis(client, cfg.RateLimit, cfg.RateWindow)
	} else {
		slog.Warn("rate limiter not configured, all submissions allowed")
	}

	// Email delivery and audience registration: Resend when a key is
	// present, log-only fallbacks otherwise.
	var mailer dispatch.Mailer = dispatch.LogMailer{}
	var audience dispatch.Audience = dispatch.LogAudience{}
	if cfg.ResendAPIKey != "" {
		resend := dispatch.NewResend(cfg.ResendAPIKey, cfg.ResendAudienceID)
		mailer = resend
		if cfg.ResendAudienceID != "" {
			audience = resend
		} else {
			slog.Warn("resend audience not configured, newsletter signups logged only")
		}
	} else {
		slog.Warn("email provider not configured, submissions logged only")
	}

	// Optional CRM database for recording submissions.
	var submissions *store.SubmissionStore
	var subscribers *store.SubscriberStore
	if cfg.DatabaseURL != "" {
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := database.Migrate(db); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}

		submissions = store.NewSubmissionStore(db)
		subscribers = store.NewSubscriberStore(db)
	} else {
		slog.Warn("crm database not configured, submissions not recorded")
	}

	contentHandlers := handlers.NewContent(library)
	formHandlers := handlers.NewForms(limiter, mailer, audience, submissions, subscribers, cfg.ContactEmail, cfg.MailFrom)

	r := router.New(contentHandlers, formHandlers)

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
