package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"spotterapi/internal/http/middleware"
	"spotterapi/internal/routing"
	"spotterapi/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "MISSING_FIELD", "ROUTE_NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: middleware.RequestIDFrom(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// writeServiceError translates service and upstream errors into the error envelope.
// Only sentinel-derived messages reach the client; everything else is logged.
func writeServiceError(c *fiber.Ctx, log *zap.Logger, err error, internalMsg string) error {
	switch {
	case errors.Is(err, service.ErrMissingField):
		return writeError(c, fiber.StatusBadRequest, "MISSING_FIELD", err.Error())
	case errors.Is(err, service.ErrInvalidInput):
		return writeError(c, fiber.StatusBadRequest, "INVALID_REQUEST", err.Error())
	case errors.Is(err, routing.ErrLocationNotFound), errors.Is(err, routing.ErrInvalidLocation):
		return writeError(c, fiber.StatusUnprocessableEntity, "LOCATION_NOT_FOUND", "could not geocode one of the locations")
	case errors.Is(err, routing.ErrRouteNotFound):
		return writeError(c, fiber.StatusUnprocessableEntity, "ROUTE_NOT_FOUND", "no drivable route between the locations")
	case errors.Is(err, routing.ErrUpstreamTimeout):
		log.Warn("upstream timeout", zap.String("request_id", middleware.RequestIDFrom(c)), zap.Error(err))
		return writeError(c, fiber.StatusGatewayTimeout, "UPSTREAM_TIMEOUT", "routing service timed out")
	case errors.Is(err, routing.ErrUpstream):
		log.Error("upstream failure", zap.String("request_id", middleware.RequestIDFrom(c)), zap.Error(err))
		return writeError(c, fiber.StatusBadGateway, "UPSTREAM_UNAVAILABLE", "routing service unavailable")
	default:
		log.Error("request failed", zap.String("request_id", middleware.RequestIDFrom(c)), zap.Error(err))
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", internalMsg)
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var e *fiber.Error
		if errors.As(err, &e) {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "BODY_TOO_LARGE", "request body too large")
		default:
			log.Error("unhandled error", zap.String("request_id", middleware.RequestIDFrom(c)), zap.Error(err))
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
