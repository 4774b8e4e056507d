package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

// ServerConfig holds HTTP server and deployment settings.
type ServerConfig struct {
	AppHost      string   `env:"APP_HOST" envDefault:"localhost:8080"`
	Port         string   `env:"PORT" envDefault:"8080"`
	Debug        bool     `env:"DEBUG" envDefault:"false"`
	SecretKey    string   `env:"DJANGO_SECRET_KEY"`
	Timezone     string   `env:"APP_TIMEZONE" envDefault:"UTC"`
	LogLevel     string   `env:"LOG_LEVEL" envDefault:"info"`
	AllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envDefault:"*" envSeparator:","`
}

// RoutingConfig holds settings for the upstream routing and geocoding services.
type RoutingConfig struct {
	ORSBaseURL         string        `env:"ORS_BASE_URL" envDefault:"https://api.openrouteservice.org/v2"`
	ORSAPIKey          string        `env:"OPENROUTESERVICE_API_KEY"`
	ORSProfile         string        `env:"ORS_PROFILE" envDefault:"driving-car"`
	NominatimBaseURL   string        `env:"NOMINATIM_BASE_URL" envDefault:"https://nominatim.openstreetmap.org"`
	NominatimUserAgent string        `env:"NOMINATIM_USER_AGENT" envDefault:"spotter-service-backend"`
	Timeout            time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"30s"`
	MaxRetries         int           `env:"UPSTREAM_MAX_RETRIES" envDefault:"2"`
}

// PlanningConfig tunes trip planning.
type PlanningConfig struct {
	AverageSpeedMPH float64 `env:"AVERAGE_SPEED_MPH" envDefault:"55"`
	RouteMaxPoints  int     `env:"ROUTE_MAX_POINTS" envDefault:"500"`
}

// TelemetryConfig toggles metrics and names the service for tracing.
type TelemetryConfig struct {
	MetricsEnabled bool   `env:"METRICS_ENABLED" envDefault:"true"`
	ServiceName    string `env:"OTEL_SERVICE_NAME" envDefault:"spotter-api"`
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Server    ServerConfig
	Routing   RoutingConfig
	Planning  PlanningConfig
	Telemetry TelemetryConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// Validate checks the settings the service cannot start without.
// Credentials are only enforced outside DEBUG so local runs work against fakes.
func (c *AppConfig) Validate() error {
	var errs []error
	if !c.Server.Debug {
		if c.Routing.ORSAPIKey == "" {
			errs = append(errs, errors.New("OPENROUTESERVICE_API_KEY is required"))
		}
		if c.Server.SecretKey == "" {
			errs = append(errs, errors.New("DJANGO_SECRET_KEY is required"))
		}
	}
	if _, err := time.LoadLocation(c.Server.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("APP_TIMEZONE: %w", err))
	}
	if c.Routing.Timeout <= 0 {
		errs = append(errs, errors.New("UPSTREAM_TIMEOUT must be positive"))
	}
	if c.Routing.MaxRetries < 0 {
		errs = append(errs, errors.New("UPSTREAM_MAX_RETRIES must not be negative"))
	}
	if c.Planning.AverageSpeedMPH <= 0 {
		errs = append(errs, errors.New("AVERAGE_SPEED_MPH must be positive"))
	}
	if c.Planning.RouteMaxPoints < 2 {
		errs = append(errs, errors.New("ROUTE_MAX_POINTS must be at least 2"))
	}
	return errors.Join(errs...)
}

// Location resolves the configured timezone, falling back to UTC.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Server.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
