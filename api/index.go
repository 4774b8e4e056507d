// Package handler is the serverless entry point. The platform calls Handler for
// every request; the Fiber app is built once per instance.
package handler

import (
	"context"
	"net/http"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"go.uber.org/zap"

	"spotterapi/internal/app"
	"spotterapi/internal/config"
	"spotterapi/internal/logger"
	"spotterapi/internal/otel"
)

var (
	once    sync.Once
	handler http.HandlerFunc
	initErr error

	initTracing = otel.Init
)

func build() {
	cfg, err := config.Load()
	if err != nil {
		initErr = err
		return
	}
	if err := cfg.Validate(); err != nil {
		initErr = err
		return
	}

	zl, err := logger.New(cfg.Server.Debug, cfg.Server.LogLevel)
	if err != nil {
		initErr = err
		return
	}

	// No shutdown hook here; the batcher flushes while the instance is warm.
	if _, err := initTracing(context.Background(), cfg.Telemetry.ServiceName, zl); err != nil {
		zl.Warn("tracing disabled", zap.Error(err))
	}

	var fiberApp *fiber.App
	if fiberApp, initErr = app.New(cfg, zl, app.Options{}); initErr != nil {
		zl.Error("app init failed", zap.Error(initErr))
		return
	}
	handler = adaptor.FiberApp(fiberApp)
}

// Handler serves a single request through the shared Fiber app.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(build)
	if initErr != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"request_id":"","error":{"code":"INTERNAL_ERROR","message":"service misconfigured"}}`))
		return
	}
	handler(w, r)
}
