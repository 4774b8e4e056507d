// Package app assembles the HTTP application shared by the server binary and
// the serverless entry point.
package app

import (
	"fmt"
	"strings"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"spotterapi/docs"
	"spotterapi/internal/buildinfo"
	"spotterapi/internal/config"
	"spotterapi/internal/hos"
	handlers "spotterapi/internal/http/handler"
	"spotterapi/internal/http/middleware"
	"spotterapi/internal/planner"
	"spotterapi/internal/routing"
	"spotterapi/internal/service"
)

const bodyLimit = 1 << 20

// Options overrides the defaults New wires from the config.
type Options struct {
	// Registerer and Gatherer default to the Prometheus default registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer

	// TripService replaces the upstream-backed service, mainly in tests.
	TripService service.TripService
}

// NewTripService wires the trip service against the live geocoding and routing APIs.
func NewTripService(cfg *config.AppConfig, log *zap.Logger, reg prometheus.Registerer) (service.TripService, error) {
	metrics, err := routing.NewMetrics(reg)
	if err != nil {
		return nil, fmt.Errorf("register upstream metrics: %w", err)
	}

	client := routing.NewHTTPClient(cfg.Routing.Timeout)
	geocoder := routing.NewNominatim(cfg.Routing, client, metrics, log)
	router := routing.NewOpenRouteService(cfg.Routing, client, metrics, log)

	return service.NewTripService(
		geocoder,
		router,
		planner.New(cfg.Planning.AverageSpeedMPH),
		hos.NewCalculator(),
		service.Options{
			Location:       cfg.Location(),
			RouteMaxPoints: cfg.Planning.RouteMaxPoints,
		},
		log,
	), nil
}

// New builds the Fiber app: middleware, API routes, Swagger UI and, when
// enabled, the /metrics endpoint.
func New(cfg *config.AppConfig, log *zap.Logger, opts Options) (*fiber.App, error) {
	if opts.Registerer == nil {
		opts.Registerer = prometheus.DefaultRegisterer
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}

	tripSvc := opts.TripService
	if tripSvc == nil {
		var err error
		if tripSvc, err = NewTripService(cfg, log, opts.Registerer); err != nil {
			return nil, err
		}
	}

	app := fiber.New(fiber.Config{
		AppName:               "spotter-api",
		ErrorHandler:          handlers.ErrorHandler(log),
		BodyLimit:             bodyLimit,
		DisableStartupMessage: true,
	})

	app.Use(recover.New(recover.Config{EnableStackTrace: cfg.Server.Debug}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.Server.AllowOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, " + middleware.RequestIDHeader,
	}))
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == "/metrics" || c.Path() == "/healthz"
	})))
	app.Use(middleware.Logger(log))

	if cfg.Telemetry.MetricsEnabled {
		prom, err := middleware.NewPrometheusMiddleware(opts.Registerer)
		if err != nil {
			return nil, fmt.Errorf("register http metrics: %w", err)
		}
		app.Use(prom.Handler())
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	handlers.RegisterRoutes(app, tripSvc, buildinfo.Version, log)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
		}

		docs.SwaggerInfo.Host = publicHost(c.Get("X-Forwarded-Host"), c.Get("Host"), cfg.Server.AppHost)
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	return app, nil
}

// publicHost picks the host Swagger advertises: the proxy's forwarded host,
// then the request Host, then APP_HOST.
func publicHost(forwarded, host, fallback string) string {
	if h := strings.TrimSpace(strings.Split(forwarded, ",")[0]); h != "" {
		return h
	}
	if host != "" {
		return host
	}
	return fallback
}
