package routing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/twpayne/go-polyline"
	"go.uber.org/zap"

	"spotterapi/internal/config"
	"spotterapi/internal/geo"
	"spotterapi/internal/model"
)

// ORS error codes meaning the waypoints cannot be connected by road.
const (
	orsRouteNotFound = 2009
	orsPointNotFound = 2010
)

// orsRouter implements Router with the OpenRouteService directions API.
type orsRouter struct {
	baseURL string
	apiKey  string
	profile string
	up      *upstream
}

type orsRequest struct {
	Coordinates  [][2]float64 `json:"coordinates"`
	Instructions bool         `json:"instructions"`
}

type orsResponse struct {
	Routes []orsRoute `json:"routes"`
}

type orsRoute struct {
	Summary struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
	} `json:"summary"`
	Segments []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
	} `json:"segments"`
	Geometry  string `json:"geometry"`
	WayPoints []int  `json:"way_points"`
}

type orsError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// NewOpenRouteService creates a Router for the configured ORS endpoint and profile.
func NewOpenRouteService(cfg config.RoutingConfig, client *http.Client, metrics *Metrics, logger *zap.Logger) Router {
	return &orsRouter{
		baseURL: strings.TrimRight(cfg.ORSBaseURL, "/"),
		apiKey:  cfg.ORSAPIKey,
		profile: cfg.ORSProfile,
		up:      newUpstream("openrouteservice", client, cfg.MaxRetries, metrics, logger),
	}
}

// Directions returns the route through waypoints with one leg per consecutive pair.
// Distances are in miles and durations in hours.
func (r *orsRouter) Directions(ctx context.Context, waypoints []model.Location) (model.RouteData, error) {
	if len(waypoints) < 2 {
		return model.RouteData{}, fmt.Errorf("directions: at least two waypoints required: %w", ErrRouteNotFound)
	}

	coords := make([][2]float64, len(waypoints))
	for i, w := range waypoints {
		coords[i] = w.Coords()
	}
	payload, err := json.Marshal(orsRequest{Coordinates: coords})
	if err != nil {
		return model.RouteData{}, fmt.Errorf("directions: encode request: %w", err)
	}
	endpoint := fmt.Sprintf("%s/directions/%s", r.baseURL, r.profile)

	body, err := r.up.fetch(ctx, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", r.apiKey)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		return req, nil
	})
	if err != nil {
		if routeNotFound(err) {
			return model.RouteData{}, fmt.Errorf("directions: %w", ErrRouteNotFound)
		}
		return model.RouteData{}, fmt.Errorf("directions: %w", err)
	}

	var res orsResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return model.RouteData{}, fmt.Errorf("directions: decode response: %w: %v", ErrUpstream, err)
	}
	if len(res.Routes) == 0 {
		return model.RouteData{}, fmt.Errorf("directions: %w", ErrRouteNotFound)
	}

	route := res.Routes[0]
	data := model.RouteData{
		Distance: route.Summary.Distance / geo.MetersPerMile,
		Duration: route.Summary.Duration / 3600,
	}

	data.Coordinates, err = decodeGeometry(route.Geometry)
	if err != nil {
		return model.RouteData{}, fmt.Errorf("directions: %w: %v", ErrUpstream, err)
	}
	if len(data.Coordinates) == 0 {
		data.Coordinates = coords
	}

	data.Legs = buildLegs(route, waypoints, data)
	return data, nil
}

// routeNotFound reports whether a failed call means the waypoints are not routable.
func routeNotFound(err error) bool {
	var serr *StatusError
	if !errors.As(err, &serr) {
		return false
	}
	if serr.StatusCode == http.StatusNotFound {
		return true
	}
	var body orsError
	if json.Unmarshal(serr.Body, &body) != nil {
		return false
	}
	return body.Error.Code == orsRouteNotFound || body.Error.Code == orsPointNotFound ||
		strings.Contains(strings.ToLower(body.Error.Message), "routable point")
}

// decodeGeometry decodes an encoded polyline into [lon, lat] pairs.
func decodeGeometry(encoded string) ([][2]float64, error) {
	if encoded == "" {
		return nil, nil
	}
	latLngs, _, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, fmt.Errorf("decode geometry: %w", err)
	}
	out := make([][2]float64, 0, len(latLngs))
	for _, ll := range latLngs {
		if len(ll) < 2 {
			continue
		}
		out = append(out, [2]float64{ll[1], ll[0]})
	}
	return out, nil
}

// buildLegs uses the ORS segments when present. Otherwise the total distance and
// duration are split in proportion to the straight-line length of each leg.
func buildLegs(route orsRoute, waypoints []model.Location, data model.RouteData) []model.RouteLeg {
	legs := make([]model.RouteLeg, len(waypoints)-1)
	for i := range legs {
		legs[i].From = waypoints[i].Address
		legs[i].To = waypoints[i+1].Address
	}

	if len(route.Segments) == len(legs) {
		for i, s := range route.Segments {
			legs[i].Distance = s.Distance / geo.MetersPerMile
			legs[i].Duration = s.Duration / 3600
		}
		return legs
	}

	lengths := make([]float64, len(legs))
	var total float64
	for i := range legs {
		lengths[i] = legLength(route, data.Coordinates, waypoints, i)
		total += lengths[i]
	}
	for i := range legs {
		share := 1 / float64(len(legs))
		if total > 0 {
			share = lengths[i] / total
		}
		legs[i].Distance = data.Distance * share
		legs[i].Duration = data.Duration * share
	}
	return legs
}

// legLength measures leg i along the geometry when way_points index it, otherwise as
// the great-circle distance between its waypoints.
func legLength(route orsRoute, coords [][2]float64, waypoints []model.Location, i int) float64 {
	if len(route.WayPoints) == len(waypoints) {
		from, to := route.WayPoints[i], route.WayPoints[i+1]
		if from >= 0 && from <= to && to < len(coords) {
			return geo.PathLength(coords[from : to+1])
		}
	}
	return geo.Haversine(waypoints[i].Coords(), waypoints[i+1].Coords())
}
