package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"spotterapi/internal/app"
	"spotterapi/internal/buildinfo"
	"spotterapi/internal/config"
	"spotterapi/internal/logger"
	"spotterapi/internal/otel"
)

const shutdownTimeout = 10 * time.Second

// @title Spotter Trucking API
// @version 1.0
// @description Trip planning for property-carrying drivers: routes, stops, ELD daily logs and Hours of Service checks.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.Server.Debug, cfg.Server.LogLevel)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	if err := run(cfg, zl); err != nil {
		zl.Error("server stopped", zap.Error(err))
		_ = zl.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.AppConfig, zl *zap.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, cfg.Telemetry.ServiceName, zl)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			zl.Warn("tracing shutdown failed", zap.Error(err))
		}
	}()

	fiberApp, err := app.New(cfg, zl, app.Options{})
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.Server.Port
		zl.Info("starting server",
			zap.String("addr", addr),
			zap.String("build", buildinfo.Current().String()),
			zap.Bool("debug", cfg.Server.Debug),
		)
		errCh <- fiberApp.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	zl.Info("shutting down")
	if err := fiberApp.ShutdownWithTimeout(shutdownTimeout); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}
