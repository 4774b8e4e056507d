package eld

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spotterapi/internal/model"
)

func at(day, hour int) time.Time {
	return time.Date(2026, 10, day, hour, 0, 0, 0, time.UTC)
}

func TestDailyLogsEmpty(t *testing.T) {
	logs := DailyLogs(nil)
	assert.NotNil(t, logs)
	assert.Empty(t, logs)
}

func TestDailyLogsSingleDay(t *testing.T) {
	timeline := []model.Activity{
		{Status: model.StatusOnDuty, Start: at(19, 8), End: at(19, 9), Location: "Pickup"},
		{Status: model.StatusDriving, Start: at(19, 9), End: at(19, 13), Location: "En route", Miles: 220},
		{Status: model.StatusOnDuty, Start: at(19, 13), End: at(19, 14), Location: "Dropoff"},
	}

	logs := DailyLogs(timeline)
	require.Len(t, logs, 1)

	day := logs[0]
	assert.Equal(t, "2026-10-19", day.Date)
	require.Len(t, day.Entries, 5)
	assert.Equal(t, model.StatusOffDuty, day.Entries[0].Status)
	assert.Equal(t, 8.0, day.Entries[0].Duration)
	assert.Equal(t, model.StatusOffDuty, day.Entries[4].Status)
	assert.Equal(t, 10.0, day.Entries[4].Duration)

	assert.Equal(t, 4.0, day.TotalDriveTime)
	assert.Equal(t, 6.0, day.TotalDutyTime)
	assert.Equal(t, 18.0, day.TotalOffDutyTime)
	assert.Equal(t, 220.0, day.TotalMiles)
	assert.Equal(t, 24.0, day.TotalHours())
}

func TestDailyLogsSplitAtMidnight(t *testing.T) {
	timeline := []model.Activity{
		{Status: model.StatusDriving, Start: at(19, 14), End: at(19, 22), Miles: 440},
		{Status: model.StatusSleeper, Start: at(19, 22), End: at(20, 8)},
		{Status: model.StatusDriving, Start: at(20, 8), End: at(20, 12), Miles: 220},
	}

	logs := DailyLogs(timeline)
	require.Len(t, logs, 2)

	assert.Equal(t, "2026-10-19", logs[0].Date)
	assert.Equal(t, 2.0, logs[0].TotalSleeperTime)
	assert.Equal(t, 8.0, logs[0].TotalDriveTime)
	assert.Equal(t, at(20, 0), logs[0].Entries[len(logs[0].Entries)-1].EndTime)

	assert.Equal(t, "2026-10-20", logs[1].Date)
	assert.Equal(t, 8.0, logs[1].TotalSleeperTime)
	assert.Equal(t, at(20, 0), logs[1].Entries[0].StartTime)
	assert.Equal(t, 220.0, logs[1].TotalMiles)

	for _, l := range logs {
		assert.InDelta(t, 24.0, l.TotalHours(), 1e-9, l.Date)
	}
}

func TestDailyLogsProratesMiles(t *testing.T) {
	timeline := []model.Activity{
		{Status: model.StatusDriving, Start: at(19, 20), End: at(20, 2), Miles: 330},
	}

	logs := DailyLogs(timeline)
	require.Len(t, logs, 2)
	assert.InDelta(t, 220, logs[0].TotalMiles, 1e-9)
	assert.InDelta(t, 110, logs[1].TotalMiles, 1e-9)
}

func TestDailyLogsUsesStartZone(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	start := time.Date(2026, 10, 19, 22, 0, 0, 0, ny)
	timeline := []model.Activity{
		{Status: model.StatusDriving, Start: start, End: start.Add(4 * time.Hour), Miles: 220},
	}

	logs := DailyLogs(timeline)
	require.Len(t, logs, 2)
	assert.Equal(t, "2026-10-19", logs[0].Date)
	assert.Equal(t, 2.0, logs[0].TotalDriveTime)
	assert.Equal(t, "2026-10-20", logs[1].Date)
}
