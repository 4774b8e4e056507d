package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"spotterapi/internal/model"
	"spotterapi/internal/service"
)

const routeCalculationFailed = "internal server error during route calculation"

// CalculateRouteRequest is the body of POST /api/calculate-route/.
type CalculateRouteRequest struct {
	CurrentLocation *string    `json:"current_location" validate:"required" example:"New York, NY"`
	PickupLocation  *string    `json:"pickup_location" validate:"required" example:"Philadelphia, PA"`
	DropoffLocation *string    `json:"dropoff_location" validate:"required" example:"Atlanta, GA"`
	CycleUsed       *float64   `json:"cycle_used" validate:"required,gte=0,lte=70" example:"45"`
	StartTime       *time.Time `json:"start_time,omitempty"`
}

// ValidateLocationsRequest is the body of POST /api/validate-locations/.
type ValidateLocationsRequest struct {
	CurrentLocation *string `json:"current_location,omitempty"`
	PickupLocation  *string `json:"pickup_location,omitempty"`
	DropoffLocation *string `json:"dropoff_location,omitempty"`
}

// HOSCheckRequest is the body of POST /api/hos/check/.
type HOSCheckRequest struct {
	CycleUsed     *float64 `json:"cycle_used" validate:"required,gte=0,lte=70" example:"45"`
	DriveHours    *float64 `json:"drive_hours" validate:"required,gte=0" example:"20"`
	LastResetDate string   `json:"last_reset_date,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2026-10-12"`
}

// bindBody parses and validates a JSON body, writing the error response itself.
// It returns false when the handler must stop.
func bindBody(c *fiber.Ctx, v any) (bool, error) {
	if err := c.BodyParser(v); err != nil {
		return false, writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid JSON body")
	}
	fe, err := validateBody(v)
	if err != nil {
		return false, writeError(c, fiber.StatusBadRequest, "INVALID_REQUEST", "invalid request")
	}
	if fe != nil {
		if fe.Missing {
			return false, writeError(c, fiber.StatusBadRequest, "MISSING_FIELD", "missing required field: "+fe.Field)
		}
		return false, writeError(c, fiber.StatusBadRequest, "INVALID_REQUEST", "invalid value for field: "+fe.Field)
	}
	return true, nil
}

// CalculateRoute plans a trip.
//
// @Summary      Calculate a trip
// @Description  Geocodes the locations, routes through them and returns stops, fuel stops, ELD daily logs and HOS status.
// @Tags         trips
// @Accept       json
// @Produce      json
// @Param        request  body      CalculateRouteRequest  true  "Trip request"
// @Success      200      {object}  model.TripPlan
// @Failure      400      {object}  errorPayload
// @Failure      422      {object}  errorPayload
// @Failure      500      {object}  errorPayload
// @Failure      502      {object}  errorPayload
// @Failure      504      {object}  errorPayload
// @Router       /api/calculate-route/ [post]
func CalculateRoute(svc service.TripService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CalculateRouteRequest
		if ok, err := bindBody(c, &body); !ok {
			return err
		}

		req := model.TripRequest{
			CurrentLocation: *body.CurrentLocation,
			PickupLocation:  *body.PickupLocation,
			DropoffLocation: *body.DropoffLocation,
			CycleUsed:       *body.CycleUsed,
		}
		if body.StartTime != nil {
			req.StartTime = *body.StartTime
		}

		plan, err := svc.PlanTrip(c.UserContext(), req)
		if err != nil {
			return writeServiceError(c, log, err, routeCalculationFailed)
		}
		return c.JSON(plan)
	}
}

// ValidateLocations checks which addresses can be geocoded.
//
// @Summary      Validate locations
// @Description  Geocodes any of the three trip addresses and reports which ones resolve.
// @Tags         trips
// @Accept       json
// @Produce      json
// @Param        request  body      ValidateLocationsRequest  true  "Addresses to check"
// @Success      200      {object}  model.LocationValidation
// @Failure      400      {object}  errorPayload
// @Failure      502      {object}  errorPayload
// @Failure      504      {object}  errorPayload
// @Router       /api/validate-locations/ [post]
func ValidateLocations(svc service.TripService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ValidateLocationsRequest
		if ok, err := bindBody(c, &body); !ok {
			return err
		}

		var inputs []service.LocationInput
		for _, f := range []struct {
			name  string
			value *string
		}{
			{"current_location", body.CurrentLocation},
			{"pickup_location", body.PickupLocation},
			{"dropoff_location", body.DropoffLocation},
		} {
			if f.value != nil {
				inputs = append(inputs, service.LocationInput{Field: f.name, Address: *f.value})
			}
		}

		res, err := svc.ValidateLocations(c.UserContext(), inputs)
		if err != nil {
			return writeServiceError(c, log, err, "internal server error")
		}
		return c.JSON(res)
	}
}

// HOSCheck runs the Hours of Service helpers for a hypothetical drive.
//
// @Summary      Check HOS availability
// @Description  Returns available drive time, feasibility, the required rest periods and cycle reset eligibility.
// @Tags         hos
// @Accept       json
// @Produce      json
// @Param        request  body      HOSCheckRequest  true  "HOS inputs"
// @Success      200      {object}  model.HOSCheck
// @Failure      400      {object}  errorPayload
// @Router       /api/hos/check/ [post]
func HOSCheck(svc service.TripService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body HOSCheckRequest
		if ok, err := bindBody(c, &body); !ok {
			return err
		}

		req := service.HOSCheckRequest{CycleUsed: *body.CycleUsed, DriveHours: *body.DriveHours}
		if body.LastResetDate != "" {
			d, err := time.Parse(time.DateOnly, body.LastResetDate)
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_REQUEST", "invalid value for field: last_reset_date")
			}
			req.LastResetDate = &d
		}

		res, err := svc.CheckHOS(c.UserContext(), req)
		if err != nil {
			return writeServiceError(c, log, err, "internal server error")
		}
		return c.JSON(res)
	}
}
