package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"spotterapi/internal/service"
)

func newHOSCmd(root *rootOptions) *cobra.Command {
	var (
		cycleUsed, driveHours float64
		lastReset             string
	)
	cmd := &cobra.Command{
		Use:   "hos",
		Short: "Check available hours and rest needs for a planned drive",
		Example: `  tripctl hos --cycle-used 45 --drive-hours 20 --last-reset 2026-10-12`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := service.HOSCheckRequest{CycleUsed: cycleUsed, DriveHours: driveHours}
			if lastReset != "" {
				d, err := time.Parse(time.DateOnly, lastReset)
				if err != nil {
					return fmt.Errorf("--last-reset: %w", err)
				}
				req.LastResetDate = &d
			}

			res, err := statelessTripService(root.cfg, root.log).CheckHOS(cmd.Context(), req)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&cycleUsed, "cycle-used", 0, "hours already used in the 70h/8-day cycle")
	f.Float64Var(&driveHours, "drive-hours", 0, "driving hours the trip needs")
	f.StringVar(&lastReset, "last-reset", "", "date of the last 34h restart (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("cycle-used")
	_ = cmd.MarkFlagRequired("drive-hours")
	return cmd
}
