package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"spotterapi/internal/service"
)

// RegisterRoutes attaches the API routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, tripSvc service.TripService, version string, log *zap.Logger) {
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")
	api.Get("/health", HealthCheck(version, time.Now))
	api.Post("/calculate-route", CalculateRoute(tripSvc, log))
	api.Post("/validate-locations", ValidateLocations(tripSvc, log))
	api.Post("/hos/check", HOSCheck(tripSvc, log))
}
