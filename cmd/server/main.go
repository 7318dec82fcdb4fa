package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	finboardroot "github.com/avelikov/finboard"
	"github.com/avelikov/finboard/internal/action"
	"github.com/avelikov/finboard/internal/auth"
	"github.com/avelikov/finboard/internal/config"
	"github.com/avelikov/finboard/internal/handler"
	"github.com/avelikov/finboard/internal/middleware"
	"github.com/avelikov/finboard/internal/repository"
	"github.com/avelikov/finboard/internal/webcache"
)

func main() {
	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Setup context with graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Run migrations
	migrationsFS, err := fs.Sub(finboardroot.MigrationsFS, "migrations")
	if err != nil {
		slog.Error("failed to load embedded migrations", "error", err)
		os.Exit(1)
	}
	if err := repository.RunMigrations(cfg.DatabaseURL, migrationsFS); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Initialize repositories
	invoiceRepo := repository.NewInvoiceRepository(pool)
	userRepo := repository.NewUserRepository(pool)

	// Provision the demo sign-in account when configured
	if cfg.SeedUserEmail != "" && cfg.SeedUserPassword != "" {
		hash, err := auth.HashPassword(cfg.SeedUserPassword)
		if err != nil {
			slog.Error("failed to hash seed password", "error", err)
			os.Exit(1)
		}
		if err := userRepo.Ensure(ctx, "Demo User", cfg.SeedUserEmail, hash); err != nil {
			slog.Error("failed to seed user", "error", err)
			os.Exit(1)
		}
	}

	// Initialize collaborators
	sessionTTL := time.Duration(cfg.SessionTTLHours) * time.Hour
	provider := auth.NewCredentialsProvider(userRepo, []byte(cfg.SessionSecret), sessionTTL)
	cache := webcache.New()
	actions := action.New(invoiceRepo, cache, provider)

	// Initialize handler
	h := handler.New(handler.Deps{
		Cfg:      cfg,
		Actions:  actions,
		Invoices: invoiceRepo,
		Cache:    cache,
	})

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(
		middleware.Recover(),
		middleware.RequestLogger(),
	)
	h.Register(r)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
	}

	go func() {
		slog.Info("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
