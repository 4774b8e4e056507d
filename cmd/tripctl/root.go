package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"spotterapi/internal/app"
	"spotterapi/internal/config"
	"spotterapi/internal/hos"
	"spotterapi/internal/logger"
	"spotterapi/internal/planner"
	"spotterapi/internal/service"
)

// deps builds what the commands need. Tests swap the trip service.
type deps struct {
	newTripService func(cfg *config.AppConfig, log *zap.Logger) (service.TripService, error)
}

func defaultDeps() deps {
	return deps{
		newTripService: func(cfg *config.AppConfig, log *zap.Logger) (service.TripService, error) {
			// Private registry: the CLI exposes no metrics endpoint.
			return app.NewTripService(cfg, log, prometheus.NewRegistry())
		},
	}
}

type rootOptions struct {
	debug bool
	cfg   *config.AppConfig
	log   *zap.Logger
}

func newRootCmd(d deps) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "tripctl",
		Short: "Plan HOS-compliant truck trips from the command line",
		Long: `tripctl runs the trip planner and the Hours of Service helpers locally.

Upstream credentials and tuning come from the same environment variables as the API
(OPENROUTESERVICE_API_KEY, NOMINATIM_USER_AGENT, AVERAGE_SPEED_MPH, ...).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			level := cfg.Server.LogLevel
			if !opts.debug {
				level = "warn"
			}
			log, err := logger.New(opts.debug, level)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			opts.cfg, opts.log = cfg, log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.log != nil {
				_ = opts.log.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "verbose development logging")

	root.AddCommand(
		newPlanCmd(opts, d),
		newHOSCmd(opts),
		newVersionCmd(),
	)
	return root
}

// statelessTripService serves the HOS helpers, which need no upstreams.
func statelessTripService(cfg *config.AppConfig, log *zap.Logger) service.TripService {
	return service.NewTripService(nil, nil,
		planner.New(cfg.Planning.AverageSpeedMPH),
		hos.NewCalculator(),
		service.Options{Location: cfg.Location(), RouteMaxPoints: cfg.Planning.RouteMaxPoints},
		log,
	)
}
