package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"spotterapi/internal/otel"
)

func TestHandlerInitializesTracingOnce(t *testing.T) {
	t.Setenv("DEBUG", "true")
	t.Setenv("OTEL_SDK_DISABLED", "true")

	var calls int
	var gotService string
	initTracing = func(ctx context.Context, serviceName string, log *zap.Logger) (otel.ShutdownFunc, error) {
		calls++
		gotService = serviceName
		return otel.Init(ctx, serviceName, log)
	}
	t.Cleanup(func() { initTracing = otel.Init })

	for _, path := range []string{"/healthz", "/api/health/"} {
		rec := httptest.NewRecorder()
		Handler(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	assert.Equal(t, 1, calls)
	assert.Equal(t, "spotter-api", gotService)
}
