package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"spotterapi/internal/eld"
	"spotterapi/internal/geo"
	"spotterapi/internal/hos"
	"spotterapi/internal/model"
	"spotterapi/internal/planner"
	"spotterapi/internal/routing"
)

var (
	ErrMissingField = errors.New("missing required field")
	ErrInvalidInput = errors.New("invalid input")
)

// LocationInput is one address to validate, tagged with the request field it came from.
type LocationInput struct {
	Field   string
	Address string
}

// HOSCheckRequest is the input of the stateless HOS helpers.
type HOSCheckRequest struct {
	CycleUsed     float64
	DriveHours    float64
	LastResetDate *time.Time
}

// TripService defines the trip planning use cases.
type TripService interface {
	// PlanTrip geocodes the three trip addresses, routes through them and plans the
	// stops, daily logs and HOS status of the trip.
	PlanTrip(ctx context.Context, req model.TripRequest) (*model.TripPlan, error)

	// ValidateLocations geocodes each input. Addresses the geocoder cannot resolve are
	// reported as invalid; upstream failures fail the whole call.
	ValidateLocations(ctx context.Context, inputs []LocationInput) (*model.LocationValidation, error)

	// CheckHOS runs the HOS helpers for a hypothetical drive.
	CheckHOS(ctx context.Context, req HOSCheckRequest) (*model.HOSCheck, error)
}

// Options tunes the trip service.
type Options struct {
	Location       *time.Location
	RouteMaxPoints int
	Now            func() time.Time
}

type tripService struct {
	geocoder  routing.Geocoder
	router    routing.Router
	planner   *planner.Planner
	hos       *hos.Calculator
	loc       *time.Location
	maxPoints int
	now       func() time.Time
	logger    *zap.Logger
}

// NewTripService constructs a TripService.
func NewTripService(geocoder routing.Geocoder, router routing.Router, p *planner.Planner, calc *hos.Calculator, opts Options, logger *zap.Logger) TripService {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &tripService{
		geocoder:  geocoder,
		router:    router,
		planner:   p,
		hos:       calc,
		loc:       opts.Location,
		maxPoints: opts.RouteMaxPoints,
		now:       opts.Now,
		logger:    logger,
	}
}

func (s *tripService) PlanTrip(ctx context.Context, req model.TripRequest) (*model.TripPlan, error) {
	addresses := []LocationInput{
		{Field: "current_location", Address: geo.NormalizeAddress(req.CurrentLocation)},
		{Field: "pickup_location", Address: geo.NormalizeAddress(req.PickupLocation)},
		{Field: "dropoff_location", Address: geo.NormalizeAddress(req.DropoffLocation)},
	}
	for _, a := range addresses {
		if a.Address == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingField, a.Field)
		}
	}
	if err := hos.ValidateCycleUsed(req.CycleUsed); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	start := req.StartTime
	if start.IsZero() {
		start = s.now().In(s.loc)
	}

	locations := make([]model.Location, len(addresses))
	g, gctx := errgroup.WithContext(ctx)
	for i, a := range addresses {
		g.Go(func() error {
			loc, err := s.geocoder.Geocode(gctx, a.Address)
			if err != nil {
				return fmt.Errorf("%s: %w", a.Field, err)
			}
			locations[i] = loc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	route, err := s.router.Directions(ctx, locations)
	if err != nil {
		return nil, err
	}

	trip := model.TripLocations{Current: locations[0], Pickup: locations[1], Dropoff: locations[2]}
	plan := s.planner.Plan(planner.Input{
		Start:     start,
		CycleUsed: req.CycleUsed,
		Locations: trip,
		Route:     route,
	})
	logs := eld.DailyLogs(plan.Timeline)
	status := s.hos.Compliance(req.CycleUsed, start, plan.Timeline, logs)

	summary := model.TripSummary{
		TotalDriveTime: geo.Round(status.TripDriveTime, 2),
		TotalDutyTime:  geo.Round(status.TripDutyTime, 2),
		TotalDays:      len(logs),
		TotalMiles:     geo.Round(route.Distance, 1),
		ArrivalTime:    plan.End,
	}
	for _, l := range logs {
		if l.TotalDriveTime > 0 {
			summary.DaysWithDriving++
		}
	}

	s.logger.Info("trip planned",
		zap.Float64("miles", summary.TotalMiles),
		zap.Float64("drive_hours", summary.TotalDriveTime),
		zap.Int("days", summary.TotalDays),
		zap.Int("stops", len(plan.Stops)),
		zap.Int("fuel_stops", len(plan.FuelStops)),
		zap.Int("violations", len(status.Violations)),
	)

	return &model.TripPlan{
		Locations: trip,
		Route:     s.responseRoute(route),
		Stops:     plan.Stops,
		FuelStops: plan.FuelStops,
		ELDLogs:   logs,
		HOSStatus: status,
		Summary:   summary,
	}, nil
}

// responseRoute thins and rounds the route geometry for the client.
func (s *tripService) responseRoute(route model.RouteData) model.RouteData {
	legs := make([]model.RouteLeg, len(route.Legs))
	for i, l := range route.Legs {
		legs[i] = model.RouteLeg{
			From:     l.From,
			To:       l.To,
			Distance: geo.Round(l.Distance, 2),
			Duration: geo.Round(l.Duration, 2),
		}
	}
	return model.RouteData{
		Distance:    geo.Round(route.Distance, 2),
		Duration:    geo.Round(route.Duration, 2),
		Coordinates: geo.RoundCoordinates(geo.Thin(route.Coordinates, s.maxPoints)),
		Legs:        legs,
	}
}

func (s *tripService) ValidateLocations(ctx context.Context, inputs []LocationInput) (*model.LocationValidation, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: location", ErrMissingField)
	}

	results := make([]model.LocationCheck, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	for i, in := range inputs {
		address := geo.NormalizeAddress(in.Address)
		results[i] = model.LocationCheck{Field: in.Field, Input: in.Address}
		if address == "" {
			results[i].Error = "address is empty"
			continue
		}
		g.Go(func() error {
			loc, err := s.geocoder.Geocode(gctx, address)
			switch {
			case err == nil:
				results[i].Valid = true
				results[i].Location = &loc
			case errors.Is(err, routing.ErrLocationNotFound), errors.Is(err, routing.ErrInvalidLocation):
				results[i].Error = fmt.Sprintf("could not geocode location: %s", address)
			default:
				return fmt.Errorf("%s: %w", in.Field, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &model.LocationValidation{Valid: true, Results: results}
	for _, r := range results {
		res.Valid = res.Valid && r.Valid
	}
	return res, nil
}

func (s *tripService) CheckHOS(_ context.Context, req HOSCheckRequest) (*model.HOSCheck, error) {
	if err := hos.ValidateCycleUsed(req.CycleUsed); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if req.DriveHours < 0 || math.IsNaN(req.DriveHours) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, hos.ErrNegativeDriveTime)
	}

	res := &model.HOSCheck{
		Available:   s.hos.AvailableDriveTime(req.CycleUsed),
		Feasibility: s.hos.Feasibility(req.CycleUsed, req.DriveHours),
		RestPeriods: s.hos.RequiredRestPeriods(req.DriveHours),
	}
	if req.LastResetDate != nil {
		reset := s.hos.CycleResetEligibility(req.CycleUsed, *req.LastResetDate)
		res.CycleReset = &reset
	}
	return res, nil
}
