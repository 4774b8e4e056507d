package model

import "time"

// ELDEntry is a single duty-status line on a daily log.
type ELDEntry struct {
	Status    DutyStatus `json:"status"`
	StartTime time.Time  `json:"start_time"`
	EndTime   time.Time  `json:"end_time"`
	Location  string     `json:"location"`
	Duration  float64    `json:"duration"`
	Miles     float64    `json:"miles"`
}

// DailyLog is one calendar day of ELD entries with per-status totals.
type DailyLog struct {
	Date             string     `json:"date"`
	Entries          []ELDEntry `json:"entries"`
	TotalDriveTime   float64    `json:"total_drive_time"`
	TotalDutyTime    float64    `json:"total_duty_time"`
	TotalOffDutyTime float64    `json:"total_off_duty_time"`
	TotalSleeperTime float64    `json:"total_sleeper_time"`
	TotalMiles       float64    `json:"total_miles"`
}

// AddEntry appends an entry and updates the totals.
func (d *DailyLog) AddEntry(e ELDEntry) {
	d.Entries = append(d.Entries, e)
	switch e.Status {
	case StatusDriving:
		d.TotalDriveTime += e.Duration
		d.TotalDutyTime += e.Duration
	case StatusOnDuty:
		d.TotalDutyTime += e.Duration
	case StatusSleeper:
		d.TotalSleeperTime += e.Duration
	case StatusOffDuty:
		d.TotalOffDutyTime += e.Duration
	}
	d.TotalMiles += e.Miles
}

// TotalHours is the sum of all entry durations.
func (d *DailyLog) TotalHours() float64 {
	return d.TotalDutyTime + d.TotalOffDutyTime + d.TotalSleeperTime
}
