package model

import "time"

// HOSStatus is the Hours of Service compliance status for a planned trip.
type HOSStatus struct {
	CycleUsed        float64   `json:"cycle_used"`
	RemainingHours   float64   `json:"remaining_hours"`
	DriveTimeToday   float64   `json:"drive_time_today"`
	DutyTimeToday    float64   `json:"duty_time_today"`
	TripDriveTime    float64   `json:"trip_drive_time"`
	TripDutyTime     float64   `json:"trip_duty_time"`
	CycleAfterTrip   float64   `json:"cycle_after_trip"`
	NextReset        time.Time `json:"next_reset"`
	RequiresMultiDay bool      `json:"requires_multi_day"`
	Violations       []string  `json:"violations"`
}

// RestPeriod describes one day of a multi-day driving plan.
type RestPeriod struct {
	Day          int     `json:"day"`
	DriveTime    float64 `json:"drive_time"`
	RestRequired float64 `json:"rest_required"`
	RestStart    string  `json:"rest_start"`
}

// AvailableDriveTime is the driving time left given the current cycle.
type AvailableDriveTime struct {
	DailyLimit      float64 `json:"daily_limit"`
	WeeklyRemaining float64 `json:"weekly_remaining"`
	EffectiveLimit  float64 `json:"effective_limit"`
	DutyLimit       float64 `json:"duty_limit"`
}

// Feasibility tells whether a trip fits in the currently available hours.
type Feasibility struct {
	Feasible           bool    `json:"feasible"`
	RequiredDriveTime  float64 `json:"required_drive_time"`
	AvailableDriveTime float64 `json:"available_drive_time"`
	RequiresRest       bool    `json:"requires_rest"`
	Reason             string  `json:"reason,omitempty"`
	Recommendation     string  `json:"recommendation,omitempty"`
}

// CycleResetStatus tells whether a driver may reset the cycle.
type CycleResetStatus struct {
	Eligible          bool    `json:"eligible"`
	DaysSinceReset    int     `json:"days_since_reset"`
	DaysUntilEligible int     `json:"days_until_eligible"`
	CurrentCycleHours float64 `json:"current_cycle_hours"`
	HoursUntilLimit   float64 `json:"hours_until_limit"`
}

// WeeklyTotals aggregates a set of daily logs.
type WeeklyTotals struct {
	TotalDriveTime  float64 `json:"total_drive_time"`
	TotalDutyTime   float64 `json:"total_duty_time"`
	DaysWithDriving int     `json:"days_with_driving"`
}

// HOSCheck is the result of the stateless HOS helper endpoint.
type HOSCheck struct {
	Available   AvailableDriveTime `json:"available"`
	Feasibility Feasibility        `json:"feasibility"`
	RestPeriods []RestPeriod       `json:"rest_periods"`
	CycleReset  *CycleResetStatus  `json:"cycle_reset,omitempty"`
}

// HealthStatus is the payload of the health endpoint.
type HealthStatus struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Service   string            `json:"service"`
	Endpoints map[string]string `json:"endpoints"`
}
