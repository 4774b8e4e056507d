// Package hos implements the Hours of Service rules for property-carrying drivers:
// 11 hours of driving inside a 14-hour duty window after 10 hours off, a 30-minute
// break after 8 hours of driving and a 70-hour limit over 8 days.
package hos

import (
	"errors"
	"fmt"
	"math"
	"time"

	"spotterapi/internal/model"
)

const (
	DailyDriveLimit = 11.0
	DailyDutyLimit  = 14.0
	CycleLimit      = 70.0
	CycleDays       = 8
	MandatoryRest   = 10.0
	BreakAfterHours = 8.0
	BreakDuration   = 0.5
	RestartDuration = 34.0
)

// epsilon absorbs float drift when comparing hour totals.
const epsilon = 1e-6

var (
	// ErrCycleUsedOutOfRange is returned when cycle hours fall outside [0, 70].
	ErrCycleUsedOutOfRange = errors.New("cycle used must be between 0 and 70 hours")
	// ErrNegativeDriveTime is returned for negative drive-hour inputs.
	ErrNegativeDriveTime = errors.New("drive hours must not be negative")
)

const (
	msgCycleExceeded = "Weekly cycle limit exceeded"
	msgMultiDay      = "Trip requires multi-day planning with mandatory rest periods"
)

// ValidateCycleUsed checks that cycle hours fall inside the 70-hour cycle.
func ValidateCycleUsed(cycleUsed float64) error {
	if math.IsNaN(cycleUsed) || cycleUsed < 0 || cycleUsed > CycleLimit {
		return ErrCycleUsedOutOfRange
	}
	return nil
}

// Calculator computes HOS figures. now is injectable for deterministic tests.
type Calculator struct {
	now func() time.Time
}

// NewCalculator returns a Calculator using the wall clock.
func NewCalculator() *Calculator {
	return &Calculator{now: time.Now}
}

// NewCalculatorWithClock returns a Calculator reading time from now.
func NewCalculatorWithClock(now func() time.Time) *Calculator {
	return &Calculator{now: now}
}

// AvailableDriveTime returns the driving time left today given the current cycle.
func (c *Calculator) AvailableDriveTime(cycleUsed float64) model.AvailableDriveTime {
	remaining := math.Max(0, CycleLimit-cycleUsed)
	return model.AvailableDriveTime{
		DailyLimit:      DailyDriveLimit,
		WeeklyRemaining: remaining,
		EffectiveLimit:  math.Min(DailyDriveLimit, remaining),
		DutyLimit:       DailyDutyLimit,
	}
}

// Feasibility tells whether driveHours can be driven today without rest.
func (c *Calculator) Feasibility(cycleUsed, driveHours float64) model.Feasibility {
	available := c.AvailableDriveTime(cycleUsed)
	res := model.Feasibility{
		Feasible:           driveHours <= available.EffectiveLimit,
		RequiredDriveTime:  driveHours,
		AvailableDriveTime: available.EffectiveLimit,
		RequiresRest:       driveHours > DailyDriveLimit,
	}
	if !res.Feasible {
		if driveHours > DailyDriveLimit {
			res.Reason = "Trip requires multi-day planning"
			res.Recommendation = "Plan mandatory rest periods"
		} else {
			res.Reason = "Insufficient hours in current cycle"
			res.Recommendation = "Wait for cycle reset or reduce trip scope"
		}
	}
	return res
}

// RequiredRestPeriods splits driveHours into days of at most 11 hours of driving,
// each followed by the mandatory 10-hour rest except the last.
func (c *Calculator) RequiredRestPeriods(driveHours float64) []model.RestPeriod {
	periods := []model.RestPeriod{}
	if driveHours <= DailyDriveLimit {
		return periods
	}

	remaining := driveHours
	for day := 1; remaining > epsilon; day++ {
		if remaining > DailyDriveLimit {
			periods = append(periods, model.RestPeriod{
				Day:          day,
				DriveTime:    DailyDriveLimit,
				RestRequired: MandatoryRest,
				RestStart:    fmt.Sprintf("After %g hours of driving", DailyDriveLimit),
			})
			remaining -= DailyDriveLimit
			continue
		}
		periods = append(periods, model.RestPeriod{
			Day:          day,
			DriveTime:    remaining,
			RestRequired: 0,
			RestStart:    "Trip complete",
		})
		remaining = 0
	}
	return periods
}

// CycleResetEligibility reports whether CycleDays have passed since lastReset.
func (c *Calculator) CycleResetEligibility(cycleUsed float64, lastReset time.Time) model.CycleResetStatus {
	today := civilDay(c.now().In(lastReset.Location()))
	days := int(today.Sub(civilDay(lastReset)).Hours() / 24)
	return model.CycleResetStatus{
		Eligible:          days >= CycleDays,
		DaysSinceReset:    days,
		DaysUntilEligible: max(0, CycleDays-days),
		CurrentCycleHours: cycleUsed,
		HoursUntilLimit:   CycleLimit - cycleUsed,
	}
}

// civilDay maps t to midnight UTC of its calendar date so day differences ignore DST.
func civilDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// WeeklyTotals sums drive and duty time over daily logs.
func (c *Calculator) WeeklyTotals(logs []model.DailyLog) model.WeeklyTotals {
	var totals model.WeeklyTotals
	for _, l := range logs {
		totals.TotalDriveTime += l.TotalDriveTime
		totals.TotalDutyTime += l.TotalDutyTime
		if l.TotalDriveTime > 0 {
			totals.DaysWithDriving++
		}
	}
	return totals
}

// Compliance computes the HOS status of a planned trip.
func (c *Calculator) Compliance(cycleUsed float64, start time.Time, timeline []model.Activity, logs []model.DailyLog) model.HOSStatus {
	var drive, duty float64
	for _, a := range timeline {
		switch a.Status {
		case model.StatusDriving:
			drive += a.Hours()
			duty += a.Hours()
		case model.StatusOnDuty:
			duty += a.Hours()
		}
	}

	status := model.HOSStatus{
		CycleUsed:        cycleUsed,
		RemainingHours:   math.Max(0, CycleLimit-cycleUsed),
		TripDriveTime:    drive,
		TripDutyTime:     duty,
		CycleAfterTrip:   cycleAfter(cycleUsed, timeline),
		NextReset:        start.AddDate(0, 0, CycleDays),
		RequiresMultiDay: drive > DailyDriveLimit,
		Violations:       []string{},
	}
	if len(logs) > 0 {
		status.DriveTimeToday = logs[0].TotalDriveTime
		status.DutyTimeToday = logs[0].TotalDutyTime
	}

	// Audit tracks the cycle across restarts and reports its exceedance.
	if status.RequiresMultiDay {
		status.Violations = append(status.Violations, msgMultiDay)
	}
	status.Violations = append(status.Violations, Audit(cycleUsed, timeline)...)
	return status
}

// cycleAfter returns the cycle hours at the end of the timeline, honoring restarts.
func cycleAfter(cycleUsed float64, timeline []model.Activity) float64 {
	cycle := cycleUsed
	var off float64
	for _, a := range timeline {
		if a.Status.OnDuty() {
			off = 0
			cycle += a.Hours()
			continue
		}
		off += a.Hours()
		if off >= RestartDuration-epsilon {
			cycle = 0
		}
	}
	return cycle
}

// Audit replays a timeline shift by shift and returns every HOS rule it breaks.
// A shift starts after 10 consecutive hours off duty or in the sleeper berth.
func Audit(cycleUsed float64, timeline []model.Activity) []string {
	var (
		violations     []string
		shiftDrive     float64
		sinceBreak     float64
		nonDriving     float64
		offStreak      float64
		windowStart    time.Time
		windowOpen     bool
		reportedDrive  bool
		reportedBreak  bool
		reportedWindow bool
		reportedCycle  bool
	)
	cycle := cycleUsed

	for _, a := range timeline {
		h := a.Hours()

		if a.Status.OnDuty() && !windowOpen {
			windowStart = a.Start
			windowOpen = true
		}

		switch a.Status {
		case model.StatusDriving:
			offStreak = 0
			nonDriving = 0
			shiftDrive += h
			sinceBreak += h
			cycle += h

			if shiftDrive > DailyDriveLimit+epsilon && !reportedDrive {
				violations = append(violations, fmt.Sprintf(
					"Driving limit exceeded: %.1f hours driven since last %g-hour rest", shiftDrive, MandatoryRest))
				reportedDrive = true
			}
			if sinceBreak > BreakAfterHours+epsilon && !reportedBreak {
				violations = append(violations, fmt.Sprintf(
					"30-minute break required after %g hours of driving", BreakAfterHours))
				reportedBreak = true
			}
			if a.End.Sub(windowStart).Hours() > DailyDutyLimit+epsilon && !reportedWindow {
				violations = append(violations, fmt.Sprintf(
					"Driving after the %g-hour duty window at %s", DailyDutyLimit, a.End.Format(time.RFC3339)))
				reportedWindow = true
			}
			if cycle > CycleLimit+epsilon && !reportedCycle {
				violations = append(violations, msgCycleExceeded)
				reportedCycle = true
			}

		case model.StatusOnDuty:
			offStreak = 0
			nonDriving += h
			cycle += h

		default:
			offStreak += h
			nonDriving += h
			if offStreak >= MandatoryRest-epsilon {
				shiftDrive = 0
				windowOpen = false
				reportedDrive = false
				reportedWindow = false
			}
			if offStreak >= RestartDuration-epsilon {
				cycle = 0
				reportedCycle = false
			}
		}

		if nonDriving >= BreakDuration-epsilon {
			sinceBreak = 0
			reportedBreak = false
		}
	}
	return violations
}
