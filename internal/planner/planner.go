// Package planner simulates a trip hour by hour under the Hours of Service rules
// and produces the planned stops and the driver's activity timeline.
package planner

import (
	"fmt"
	"math"
	"time"

	"spotterapi/internal/geo"
	"spotterapi/internal/hos"
	"spotterapi/internal/model"
)

const (
	DefaultSpeedMPH     = 55.0
	FuelIntervalMiles   = 1000.0
	PickupDuration      = 1.0
	DropoffDuration     = 1.0
	FuelStopDuration    = 0.5
	restAreaAddress     = "Rest Area"
	fuelStopAddress     = "Fuel Stop"
	breakAddress        = "Rest Break"
	restartAddress      = "Restart Location"
	epsilon             = 1e-6
	secondsPerHour      = 3600.0
	second              = 1 / secondsPerHour
	minutesPerHour      = 60.0
	maxPlanningActivity = 10000
)

// Input is everything the simulation needs about a trip.
type Input struct {
	Start     time.Time
	CycleUsed float64
	Locations model.TripLocations
	Route     model.RouteData
}

// Plan is the result of a simulation.
type Plan struct {
	Stops     []model.Stop
	FuelStops []model.Stop
	Timeline  []model.Activity
	End       time.Time
}

// Planner runs trip simulations at a fixed average speed.
type Planner struct {
	speed float64
}

// New returns a Planner driving at speedMPH; non-positive values fall back to 55 mph.
func New(speedMPH float64) *Planner {
	if speedMPH <= 0 {
		speedMPH = DefaultSpeedMPH
	}
	return &Planner{speed: speedMPH}
}

// Speed returns the planning speed in miles per hour.
func (p *Planner) Speed() float64 {
	return p.speed
}

// Plan simulates driving to pickup, loading, driving to dropoff and unloading.
// Rests, breaks, fuel stops and restarts are inserted before each driving chunk
// so the resulting timeline always passes hos.Audit.
func (p *Planner) Plan(in Input) Plan {
	s := &sim{
		speed:     p.speed,
		now:       in.Start,
		cycle:     in.CycleUsed,
		route:     in.Route,
		fuelMarks: geo.FuelStopMarkers(in.Route.Distance, FuelIntervalMiles),
		fuelStops: []model.Stop{},
	}

	toPickup, toDropoff := legMiles(in.Route)

	s.drive(toPickup, in.Locations.Pickup.Address)
	s.stops = append(s.stops, s.newStop(model.StopPickup, model.StopLocation{
		Address:     in.Locations.Pickup.Address,
		Coordinates: in.Locations.Pickup.Coords(),
	}, PickupDuration, "Pickup cargo"))
	s.work(PickupDuration, in.Locations.Pickup.Address)

	s.drive(toDropoff, in.Locations.Dropoff.Address)
	s.stops = append(s.stops, s.newStop(model.StopDropoff, model.StopLocation{
		Address:     in.Locations.Dropoff.Address,
		Coordinates: in.Locations.Dropoff.Coords(),
	}, DropoffDuration, "Deliver cargo"))
	s.work(DropoffDuration, in.Locations.Dropoff.Address)

	return Plan{
		Stops:     s.stops,
		FuelStops: s.fuelStops,
		Timeline:  s.timeline,
		End:       s.now,
	}
}

// legMiles returns the current->pickup and pickup->dropoff distances.
func legMiles(route model.RouteData) (float64, float64) {
	if len(route.Legs) >= 2 {
		return route.Legs[0].Distance, route.Legs[1].Distance
	}
	return 0, route.Distance
}

type sim struct {
	speed float64
	now   time.Time
	route model.RouteData

	mile       float64
	cycle      float64
	shiftDrive float64
	sinceBreak float64
	window     time.Time
	windowOpen bool

	fuelMarks []float64
	nextFuel  int

	stops     []model.Stop
	fuelStops []model.Stop
	timeline  []model.Activity
}

func (s *sim) drive(miles float64, destination string) {
	remaining := miles
	for i := 0; remaining > epsilon && i < maxPlanningActivity; i++ {
		if s.fuelDue() {
			s.fuel()
			continue
		}
		if s.cycle >= hos.CycleLimit-second {
			s.restart()
			continue
		}
		if s.shiftDrive >= hos.DailyDriveLimit-second || s.windowLeft() < second {
			s.rest()
			continue
		}
		if s.sinceBreak >= hos.BreakAfterHours-second {
			s.breakStop()
			continue
		}

		hours := min(
			remaining/s.speed,
			hos.DailyDriveLimit-s.shiftDrive,
			hos.BreakAfterHours-s.sinceBreak,
			hos.CycleLimit-s.cycle,
			s.windowLeft(),
		)
		if s.nextFuel < len(s.fuelMarks) {
			hours = min(hours, (s.fuelMarks[s.nextFuel]-s.mile)/s.speed)
		}

		// Whole seconds keep the timeline timestamps tidy and never overshoot a limit.
		hours = math.Floor(hours*secondsPerHour+epsilon) / secondsPerHour
		dist := hours * s.speed
		if remaining/s.speed-hours < second {
			dist = remaining
		}
		if hours > 0 {
			s.openWindow()
			s.add(model.StatusDriving, hours, "En route to "+destination, dist)
		}
		s.mile += dist
		remaining -= dist
		s.shiftDrive += hours
		s.sinceBreak += hours
		s.cycle += hours
	}
}

func (s *sim) fuelDue() bool {
	return s.nextFuel < len(s.fuelMarks) && s.mile >= s.fuelMarks[s.nextFuel]-s.speed*second
}

// windowLeft is the time remaining in the 14-hour duty window; a closed window
// has the full 14 hours ahead of it.
func (s *sim) windowLeft() float64 {
	if !s.windowOpen {
		return hos.DailyDutyLimit
	}
	return hos.DailyDutyLimit - s.now.Sub(s.window).Hours()
}

func (s *sim) openWindow() {
	if !s.windowOpen {
		s.window = s.now
		s.windowOpen = true
	}
}

// work records on-duty, not driving time.
func (s *sim) work(hours float64, location string) {
	s.openWindow()
	s.add(model.StatusOnDuty, hours, location, 0)
	s.cycle += hours
	if hours >= hos.BreakDuration-epsilon {
		s.sinceBreak = 0
	}
}

func (s *sim) fuel() {
	marker := s.fuelMarks[s.nextFuel]
	s.nextFuel++
	s.fuelStops = append(s.fuelStops, s.newStop(model.StopFuel, s.pointAt(fuelStopAddress), FuelStopDuration,
		fmt.Sprintf("Fuel stop at mile %.0f", marker)))
	s.work(FuelStopDuration, fuelStopAddress)
}

func (s *sim) rest() {
	s.stops = append(s.stops, s.newStop(model.StopRest, s.pointAt(restAreaAddress), hos.MandatoryRest, "Mandatory 10-hour rest period"))
	s.add(model.StatusSleeper, hos.MandatoryRest, restAreaAddress, 0)
	s.shiftDrive = 0
	s.sinceBreak = 0
	s.windowOpen = false
}

func (s *sim) breakStop() {
	s.stops = append(s.stops, s.newStop(model.StopBreak, s.pointAt(breakAddress), hos.BreakDuration,
		fmt.Sprintf("%.0f-minute break after %g hours of driving", hos.BreakDuration*minutesPerHour, hos.BreakAfterHours)))
	s.add(model.StatusOffDuty, hos.BreakDuration, breakAddress, 0)
	s.sinceBreak = 0
}

func (s *sim) restart() {
	s.stops = append(s.stops, s.newStop(model.StopRestart, s.pointAt(restartAddress), hos.RestartDuration, "34-hour restart to reset the 70-hour cycle"))
	s.add(model.StatusOffDuty, hos.RestartDuration, restartAddress, 0)
	s.cycle = 0
	s.shiftDrive = 0
	s.sinceBreak = 0
	s.windowOpen = false
}

func (s *sim) pointAt(address string) model.StopLocation {
	return model.StopLocation{
		Address:     address,
		Coordinates: geo.PositionAtMile(s.route.Coordinates, s.mile, s.route.Distance),
	}
}

func (s *sim) newStop(typ model.StopType, loc model.StopLocation, hours float64, desc string) model.Stop {
	return model.Stop{
		Type:        typ,
		Location:    loc,
		Time:        s.now,
		Duration:    hours,
		Description: desc,
		MileMarker:  geo.Round(s.mile, 1),
	}
}

// add appends an activity and advances the clock. Consecutive activities with the
// same status and location are merged.
func (s *sim) add(status model.DutyStatus, hours float64, location string, miles float64) {
	end := s.now.Add(toDuration(hours))
	if n := len(s.timeline); n > 0 {
		last := &s.timeline[n-1]
		if last.Status == status && last.Location == location && last.End.Equal(s.now) {
			last.End = end
			last.Miles += miles
			s.now = end
			return
		}
	}
	s.timeline = append(s.timeline, model.Activity{
		Status:   status,
		Start:    s.now,
		End:      end,
		Location: location,
		Miles:    miles,
	})
	s.now = end
}

// toDuration converts hours to a Duration rounded to the second.
func toDuration(hours float64) time.Duration {
	return time.Duration(math.Round(hours*secondsPerHour)) * time.Second
}
