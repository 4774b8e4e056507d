package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"spotterapi/internal/config"
	"spotterapi/internal/geo"
	"spotterapi/internal/model"
)

// nominatimGeocoder implements Geocoder on top of the OpenStreetMap Nominatim search API.
type nominatimGeocoder struct {
	baseURL   string
	userAgent string
	up        *upstream
}

type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// NewNominatim creates a Geocoder for the configured Nominatim instance.
func NewNominatim(cfg config.RoutingConfig, client *http.Client, metrics *Metrics, logger *zap.Logger) Geocoder {
	return &nominatimGeocoder{
		baseURL:   strings.TrimRight(cfg.NominatimBaseURL, "/"),
		userAgent: cfg.NominatimUserAgent,
		up:        newUpstream("nominatim", client, cfg.MaxRetries, metrics, logger),
	}
}

// Geocode returns the best match for address. The returned address is the geocoder's
// display name when it has one.
func (g *nominatimGeocoder) Geocode(ctx context.Context, address string) (model.Location, error) {
	q := url.Values{}
	q.Set("q", address)
	q.Set("format", "json")
	q.Set("limit", "1")
	endpoint := g.baseURL + "/search?" + q.Encode()

	body, err := g.up.fetch(ctx, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", g.userAgent)
		req.Header.Set("Accept", "application/json")
		return req, nil
	})
	if err != nil {
		return model.Location{}, fmt.Errorf("geocode %q: %w", address, err)
	}

	var places []nominatimPlace
	if err := json.Unmarshal(body, &places); err != nil {
		return model.Location{}, fmt.Errorf("geocode %q: decode response: %w: %v", address, ErrUpstream, err)
	}
	if len(places) == 0 {
		return model.Location{}, fmt.Errorf("geocode %q: %w", address, ErrLocationNotFound)
	}

	p := places[0]
	lat, errLat := strconv.ParseFloat(p.Lat, 64)
	lon, errLon := strconv.ParseFloat(p.Lon, 64)
	if errLat != nil || errLon != nil || !geo.ValidCoordinates(lat, lon) {
		return model.Location{}, fmt.Errorf("geocode %q: %w", address, ErrInvalidLocation)
	}

	name := p.DisplayName
	if name == "" {
		name = address
	}
	return model.Location{Address: name, Latitude: lat, Longitude: lon}, nil
}
