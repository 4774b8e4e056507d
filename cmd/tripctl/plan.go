package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"spotterapi/internal/geo"
	"spotterapi/internal/logsheet"
	"spotterapi/internal/model"
)

type planOptions struct {
	current, pickup, dropoff string
	cycleUsed                float64
	start                    string
	output                   string
}

func newPlanCmd(root *rootOptions, d deps) *cobra.Command {
	o := &planOptions{}
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan a trip and print its stops and daily logs",
		Example: `  tripctl plan --current "Chicago, IL" --pickup "Gary, IN" --dropoff "Memphis, TN" --cycle-used 20
  tripctl plan --current "New York, NY" --pickup "Philadelphia, PA" --dropoff "Atlanta, GA" --cycle-used 45 -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := model.TripRequest{
				CurrentLocation: o.current,
				PickupLocation:  o.pickup,
				DropoffLocation: o.dropoff,
				CycleUsed:       o.cycleUsed,
			}
			if o.start != "" {
				t, err := time.Parse(time.RFC3339, o.start)
				if err != nil {
					return fmt.Errorf("--start: %w", err)
				}
				req.StartTime = t
			}
			if o.output != "text" && o.output != "json" {
				return fmt.Errorf("--output must be text or json, got %q", o.output)
			}

			svc, err := d.newTripService(root.cfg, root.log)
			if err != nil {
				return err
			}
			plan, err := svc.PlanTrip(cmd.Context(), req)
			if err != nil {
				return err
			}

			if o.output == "json" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(plan)
			}
			printPlan(cmd.OutOrStdout(), plan)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.current, "current", "", "current location")
	f.StringVar(&o.pickup, "pickup", "", "pickup location")
	f.StringVar(&o.dropoff, "dropoff", "", "dropoff location")
	f.Float64Var(&o.cycleUsed, "cycle-used", 0, "hours already used in the 70h/8-day cycle")
	f.StringVar(&o.start, "start", "", "trip start time (RFC3339); defaults to now")
	f.StringVarP(&o.output, "output", "o", "text", "output format: text or json")
	for _, name := range []string{"current", "pickup", "dropoff", "cycle-used"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func printPlan(w io.Writer, plan *model.TripPlan) {
	s := plan.Summary
	fmt.Fprintf(w, "%.1f mi, %s driving, %s on duty, %d day(s); arrives %s\n",
		s.TotalMiles,
		geo.FormatDuration(s.TotalDriveTime),
		geo.FormatDuration(s.TotalDutyTime),
		s.TotalDays,
		s.ArrivalTime.Format(time.RFC3339),
	)
	fmt.Fprintf(w, "cycle after trip: %.2f h\n", plan.HOSStatus.CycleAfterTrip)
	for _, v := range plan.HOSStatus.Violations {
		fmt.Fprintf(w, "! %s\n", v)
	}

	fmt.Fprintln(w)
	for _, st := range plan.Stops {
		fmt.Fprintf(w, "%s  %-8s mile %7.1f  %s\n", st.Time.Format("Mon 15:04"), st.Type, st.MileMarker, st.Description)
	}
	for _, st := range plan.FuelStops {
		fmt.Fprintf(w, "%s  %-8s mile %7.1f  %s\n", st.Time.Format("Mon 15:04"), st.Type, st.MileMarker, st.Description)
	}

	if len(plan.ELDLogs) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, logsheet.RenderAll(plan.ELDLogs))
	}
}
