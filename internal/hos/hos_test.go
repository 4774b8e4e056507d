package hos

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spotterapi/internal/model"
)

var t0 = time.Date(2026, 10, 19, 6, 0, 0, 0, time.UTC)

// timeline builds contiguous activities from (status, hours) pairs starting at t0.
func timeline(parts ...any) []model.Activity {
	var out []model.Activity
	cur := t0
	for i := 0; i < len(parts); i += 2 {
		st := parts[i].(model.DutyStatus)
		d := time.Duration(parts[i+1].(float64) * float64(time.Hour))
		out = append(out, model.Activity{Status: st, Start: cur, End: cur.Add(d)})
		cur = cur.Add(d)
	}
	return out
}

func TestValidateCycleUsed(t *testing.T) {
	assert.NoError(t, ValidateCycleUsed(0))
	assert.NoError(t, ValidateCycleUsed(70))
	assert.ErrorIs(t, ValidateCycleUsed(-1), ErrCycleUsedOutOfRange)
	assert.ErrorIs(t, ValidateCycleUsed(70.5), ErrCycleUsedOutOfRange)
}

func TestAvailableDriveTime(t *testing.T) {
	c := NewCalculator()

	got := c.AvailableDriveTime(45)
	assert.Equal(t, 11.0, got.DailyLimit)
	assert.Equal(t, 25.0, got.WeeklyRemaining)
	assert.Equal(t, 11.0, got.EffectiveLimit)
	assert.Equal(t, 14.0, got.DutyLimit)

	got = c.AvailableDriveTime(65)
	assert.Equal(t, 5.0, got.EffectiveLimit)

	got = c.AvailableDriveTime(70)
	assert.Zero(t, got.EffectiveLimit)
}

func TestFeasibility(t *testing.T) {
	c := NewCalculator()

	tests := []struct {
		name       string
		cycleUsed  float64
		driveHours float64
		feasible   bool
		reason     string
	}{
		{"fits today", 10, 8, true, ""},
		{"needs multiple days", 10, 20, false, "Trip requires multi-day planning"},
		{"cycle nearly exhausted", 66, 6, false, "Insufficient hours in current cycle"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := c.Feasibility(tt.cycleUsed, tt.driveHours)
			assert.Equal(t, tt.feasible, res.Feasible)
			assert.Equal(t, tt.reason, res.Reason)
			assert.Equal(t, tt.driveHours > DailyDriveLimit, res.RequiresRest)
		})
	}
}

func TestRequiredRestPeriods(t *testing.T) {
	c := NewCalculator()

	assert.Empty(t, c.RequiredRestPeriods(9))

	periods := c.RequiredRestPeriods(25)
	require.Len(t, periods, 3)
	assert.Equal(t, 11.0, periods[0].DriveTime)
	assert.Equal(t, 10.0, periods[0].RestRequired)
	assert.Equal(t, "After 11 hours of driving", periods[0].RestStart)
	assert.Equal(t, 2, periods[1].Day)
	assert.InDelta(t, 3.0, periods[2].DriveTime, 1e-9)
	assert.Zero(t, periods[2].RestRequired)
	assert.Equal(t, "Trip complete", periods[2].RestStart)
}

func TestCycleResetEligibility(t *testing.T) {
	c := NewCalculatorWithClock(func() time.Time { return t0 })

	res := c.CycleResetEligibility(50, t0.AddDate(0, 0, -3))
	assert.False(t, res.Eligible)
	assert.Equal(t, 3, res.DaysSinceReset)
	assert.Equal(t, 5, res.DaysUntilEligible)
	assert.Equal(t, 20.0, res.HoursUntilLimit)

	res = c.CycleResetEligibility(50, t0.AddDate(0, 0, -9))
	assert.True(t, res.Eligible)
	assert.Zero(t, res.DaysUntilEligible)
}

func TestWeeklyTotals(t *testing.T) {
	c := NewCalculator()
	logs := []model.DailyLog{
		{TotalDriveTime: 10, TotalDutyTime: 12},
		{TotalDriveTime: 0, TotalDutyTime: 0},
		{TotalDriveTime: 4, TotalDutyTime: 5},
	}
	got := c.WeeklyTotals(logs)
	assert.Equal(t, 14.0, got.TotalDriveTime)
	assert.Equal(t, 17.0, got.TotalDutyTime)
	assert.Equal(t, 2, got.DaysWithDriving)
}

func TestAudit(t *testing.T) {
	tests := []struct {
		name      string
		cycleUsed float64
		timeline  []model.Activity
		want      []string
	}{
		{
			name:     "legal single shift",
			timeline: timeline(model.StatusDriving, 7.5, model.StatusOffDuty, 0.5, model.StatusDriving, 3.5, model.StatusOnDuty, 1.0),
		},
		{
			name: "legal two shifts",
			timeline: timeline(
				model.StatusDriving, 8.0, model.StatusOnDuty, 0.5, model.StatusDriving, 3.0,
				model.StatusSleeper, 10.0,
				model.StatusDriving, 8.0,
			),
		},
		{
			name:     "missing break",
			timeline: timeline(model.StatusDriving, 9.0),
			want:     []string{"30-minute break required after 8 hours of driving"},
		},
		{
			name:     "too much driving",
			timeline: timeline(model.StatusDriving, 6.0, model.StatusOffDuty, 1.0, model.StatusDriving, 6.0),
			want:     []string{"Driving limit exceeded: 12.0 hours driven since last 10-hour rest"},
		},
		{
			name:     "outside duty window",
			timeline: timeline(model.StatusOnDuty, 10.0, model.StatusDriving, 5.0),
			want:     []string{"Driving after the 14-hour duty window at 2026-10-19T21:00:00Z"},
		},
		{
			name:      "cycle exhausted",
			cycleUsed: 68,
			timeline:  timeline(model.StatusDriving, 3.0),
			want:      []string{"Weekly cycle limit exceeded"},
		},
		{
			name:      "restart resets cycle",
			cycleUsed: 69,
			timeline:  timeline(model.StatusOffDuty, 34.0, model.StatusDriving, 3.0),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Audit(tt.cycleUsed, tt.timeline))
		})
	}
}

func TestCompliance(t *testing.T) {
	c := NewCalculator()
	tl := timeline(
		model.StatusDriving, 8.0, model.StatusOnDuty, 1.0, model.StatusDriving, 3.0,
		model.StatusSleeper, 10.0,
		model.StatusDriving, 2.0, model.StatusOnDuty, 1.0,
	)
	logs := []model.DailyLog{{TotalDriveTime: 11, TotalDutyTime: 12}}

	status := c.Compliance(60, t0, tl, logs)

	assert.Equal(t, 60.0, status.CycleUsed)
	assert.Equal(t, 10.0, status.RemainingHours)
	assert.InDelta(t, 13.0, status.TripDriveTime, 1e-9)
	assert.InDelta(t, 15.0, status.TripDutyTime, 1e-9)
	assert.InDelta(t, 75.0, status.CycleAfterTrip, 1e-9)
	assert.Equal(t, 11.0, status.DriveTimeToday)
	assert.Equal(t, 12.0, status.DutyTimeToday)
	assert.Equal(t, t0.AddDate(0, 0, 8), status.NextReset)
	assert.True(t, status.RequiresMultiDay)
	assert.Equal(t, []string{
		"Trip requires multi-day planning with mandatory rest periods",
		"Weekly cycle limit exceeded",
	}, status.Violations)
}

func TestComplianceHonorsRestart(t *testing.T) {
	c := NewCalculator()
	tl := timeline(
		model.StatusDriving, 8.0, model.StatusOffDuty, 0.5, model.StatusDriving, 2.0,
		model.StatusOffDuty, 34.0,
		model.StatusDriving, 3.0, model.StatusOnDuty, 1.0,
	)

	status := c.Compliance(60, t0, tl, nil)

	assert.InDelta(t, 4.0, status.CycleAfterTrip, 1e-9)
	assert.Equal(t, []string{"Trip requires multi-day planning with mandatory rest periods"}, status.Violations)
}

func TestComplianceShortTrip(t *testing.T) {
	c := NewCalculator()
	tl := timeline(model.StatusDriving, 2.0, model.StatusOnDuty, 1.0)

	status := c.Compliance(0, t0, tl, nil)

	assert.False(t, status.RequiresMultiDay)
	assert.NotNil(t, status.Violations)
	assert.Empty(t, status.Violations)
	assert.InDelta(t, 3.0, status.CycleAfterTrip, 1e-9)
}
