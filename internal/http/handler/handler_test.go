package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"spotterapi/internal/http/middleware"
	"spotterapi/internal/model"
	"spotterapi/internal/routing"
	"spotterapi/internal/service"
	serviceMocks "spotterapi/internal/service/mocks"
)

func newTestApp(svc service.TripService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(zap.NewNop())})
	app.Use(middleware.RequestID())
	RegisterRoutes(app, svc, "1.2.3", zap.NewNop())
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (*http.Response, []byte) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.RequestIDHeader, "req-1")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func decodeError(t *testing.T, body []byte) errorPayload {
	t.Helper()
	var p errorPayload
	require.NoError(t, json.Unmarshal(body, &p))
	return p
}

func TestHealthCheck(t *testing.T) {
	app := newTestApp(new(serviceMocks.MockTripService))

	for _, path := range []string{"/api/health/", "/api/health"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)

		var body model.HealthStatus
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "healthy", body.Status)
		assert.Equal(t, "1.2.3", body.Version)
		assert.Equal(t, "Spotter Trucking API", body.Service)
		assert.Equal(t, "/api/calculate-route/", body.Endpoints["calculate_route"])
		assert.False(t, body.Timestamp.IsZero())
	}
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCalculateRoute(t *testing.T) {
	validBody := `{"current_location":"New York, NY","pickup_location":"Philadelphia, PA","dropoff_location":"Atlanta, GA","cycle_used":45}`

	t.Run("success", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockTripService)
		app := newTestApp(mockSvc)

		plan := &model.TripPlan{
			Summary: model.TripSummary{TotalMiles: 880},
			Stops:   []model.Stop{{Type: model.StopPickup}},
		}
		mockSvc.On("PlanTrip", mock.Anything, model.TripRequest{
			CurrentLocation: "New York, NY",
			PickupLocation:  "Philadelphia, PA",
			DropoffLocation: "Atlanta, GA",
			CycleUsed:       45,
		}).Return(plan, nil).Once()

		resp, body := postJSON(t, app, "/api/calculate-route/", validBody)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var got model.TripPlan
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, 880.0, got.Summary.TotalMiles)
		assert.Equal(t, model.StopPickup, got.Stops[0].Type)
		mockSvc.AssertExpectations(t)
	})

	t.Run("start time is forwarded", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockTripService)
		app := newTestApp(mockSvc)

		mockSvc.On("PlanTrip", mock.Anything, mock.MatchedBy(func(r model.TripRequest) bool {
			return r.StartTime.Equal(time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)) && r.CycleUsed == 0
		})).Return(&model.TripPlan{}, nil).Once()

		resp, _ := postJSON(t, app, "/api/calculate-route",
			`{"current_location":"a","pickup_location":"b","dropoff_location":"c","cycle_used":0,"start_time":"2026-10-19T08:00:00-04:00"}`)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"malformed json", `{"current_location":`, nil, 400, "INVALID_BODY", "invalid JSON body"},
		{"missing dropoff", `{"current_location":"a","pickup_location":"b","cycle_used":1}`, nil, 400, "MISSING_FIELD", "missing required field: dropoff_location"},
		{"missing cycle", `{"current_location":"a","pickup_location":"b","dropoff_location":"c"}`, nil, 400, "MISSING_FIELD", "missing required field: cycle_used"},
		{"cycle too high", `{"current_location":"a","pickup_location":"b","dropoff_location":"c","cycle_used":71}`, nil, 400, "INVALID_REQUEST", "invalid value for field: cycle_used"},
		{"blank address", validBody, fmt.Errorf("%w: pickup_location", service.ErrMissingField), 400, "MISSING_FIELD", "missing required field: pickup_location"},
		{"location not found", validBody, fmt.Errorf("pickup_location: %w", routing.ErrLocationNotFound), 422, "LOCATION_NOT_FOUND", ""},
		{"route not found", validBody, routing.ErrRouteNotFound, 422, "ROUTE_NOT_FOUND", ""},
		{"upstream timeout", validBody, routing.ErrUpstreamTimeout, 504, "UPSTREAM_TIMEOUT", ""},
		{"upstream down", validBody, &routing.StatusError{Service: "openrouteservice", StatusCode: 503}, 502, "UPSTREAM_UNAVAILABLE", ""},
		{"unexpected", validBody, errors.New("boom"), 500, "INTERNAL_ERROR", "internal server error during route calculation"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(serviceMocks.MockTripService)
			app := newTestApp(mockSvc)
			if tt.svcErr != nil {
				mockSvc.On("PlanTrip", mock.Anything, mock.Anything).Return(nil, tt.svcErr).Once()
			}

			resp, body := postJSON(t, app, "/api/calculate-route/", tt.body)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			p := decodeError(t, body)
			assert.Equal(t, "req-1", p.RequestID)
			assert.Equal(t, tt.wantCode, p.Error.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, p.Error.Message)
			}
			assert.NotContains(t, p.Error.Message, "boom")
			if tt.svcErr == nil {
				mockSvc.AssertNotCalled(t, "PlanTrip", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestValidateLocations(t *testing.T) {
	t.Run("only provided fields are checked", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockTripService)
		app := newTestApp(mockSvc)

		res := &model.LocationValidation{Valid: true, Results: []model.LocationCheck{{Field: "pickup_location", Valid: true}}}
		mockSvc.On("ValidateLocations", mock.Anything, []service.LocationInput{
			{Field: "pickup_location", Address: "Philadelphia, PA"},
		}).Return(res, nil).Once()

		resp, body := postJSON(t, app, "/api/validate-locations/", `{"pickup_location":"Philadelphia, PA"}`)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var got model.LocationValidation
		require.NoError(t, json.Unmarshal(body, &got))
		assert.True(t, got.Valid)
		mockSvc.AssertExpectations(t)
	})

	t.Run("no fields", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockTripService)
		app := newTestApp(mockSvc)
		mockSvc.On("ValidateLocations", mock.Anything, []service.LocationInput(nil)).
			Return(nil, fmt.Errorf("%w: location", service.ErrMissingField)).Once()

		resp, body := postJSON(t, app, "/api/validate-locations/", `{}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "MISSING_FIELD", decodeError(t, body).Error.Code)
	})
}

func TestHOSCheck(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockTripService)
		app := newTestApp(mockSvc)

		reset := time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)
		mockSvc.On("CheckHOS", mock.Anything, service.HOSCheckRequest{CycleUsed: 45, DriveHours: 20, LastResetDate: &reset}).
			Return(&model.HOSCheck{Feasibility: model.Feasibility{RequiresRest: true}}, nil).Once()

		resp, body := postJSON(t, app, "/api/hos/check/", `{"cycle_used":45,"drive_hours":20,"last_reset_date":"2026-10-12"}`)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var got model.HOSCheck
		require.NoError(t, json.Unmarshal(body, &got))
		assert.True(t, got.Feasibility.RequiresRest)
		mockSvc.AssertExpectations(t)
	})

	t.Run("bad date", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockTripService)
		app := newTestApp(mockSvc)

		resp, body := postJSON(t, app, "/api/hos/check/", `{"cycle_used":45,"drive_hours":20,"last_reset_date":"12/10/2026"}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "invalid value for field: last_reset_date", decodeError(t, body).Error.Message)
	})

	t.Run("negative drive hours", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockTripService)
		app := newTestApp(mockSvc)

		resp, body := postJSON(t, app, "/api/hos/check/", `{"cycle_used":45,"drive_hours":-2}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_REQUEST", decodeError(t, body).Error.Code)
	})
}

func TestErrorHandler(t *testing.T) {
	app := newTestApp(new(serviceMocks.MockTripService))

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var p errorPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&p))
	assert.Equal(t, "NOT_FOUND", p.Error.Code)
	assert.NotEmpty(t, p.RequestID)
}
