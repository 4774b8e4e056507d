// Package routing talks to the third-party geocoding and directions services.
package routing

import (
	"context"
	"errors"
	"fmt"

	"spotterapi/internal/model"
)

var (
	// ErrLocationNotFound is returned when the geocoder has no match for an address.
	ErrLocationNotFound = errors.New("location not found")
	// ErrInvalidLocation is returned when the geocoder answers with unusable coordinates.
	ErrInvalidLocation = errors.New("invalid location coordinates")
	// ErrRouteNotFound is returned when no drivable route connects the waypoints.
	ErrRouteNotFound = errors.New("no drivable route between locations")
	// ErrUpstream marks failures of a third-party service.
	ErrUpstream = errors.New("upstream service unavailable")
	// ErrUpstreamTimeout marks third-party calls that ran out of time.
	ErrUpstreamTimeout = errors.New("upstream service timed out")
)

// Geocoder resolves a free-form address to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (model.Location, error)
}

// Router computes a driving route through the given waypoints, in order.
type Router interface {
	Directions(ctx context.Context, waypoints []model.Location) (model.RouteData, error)
}

// StatusError is a non-2xx answer from an upstream service.
type StatusError struct {
	Service    string
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s responded with status %d", e.Service, e.StatusCode)
}

// Unwrap makes every StatusError match ErrUpstream.
func (e *StatusError) Unwrap() error {
	return ErrUpstream
}

// Retryable reports whether the status is worth another attempt.
func (e *StatusError) Retryable() bool {
	return e.StatusCode == 429 || e.StatusCode >= 500
}
