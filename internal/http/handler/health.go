package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"spotterapi/internal/model"
)

const serviceName = "Spotter Trucking API"

// HealthCheck reports that the process is serving requests. It makes no upstream calls.
//
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  model.HealthStatus
// @Router       /api/health/ [get]
func HealthCheck(version string, now func() time.Time) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(model.HealthStatus{
			Status:    "healthy",
			Timestamp: now(),
			Version:   version,
			Service:   serviceName,
			Endpoints: map[string]string{
				"calculate_route":    "/api/calculate-route/",
				"validate_locations": "/api/validate-locations/",
				"hos_check":          "/api/hos/check/",
				"health":             "/api/health/",
			},
		})
	}
}

// LivenessProbe is the bare probe used by orchestrators.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
