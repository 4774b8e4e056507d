package model

import "time"

// DutyStatus is one of the four ELD duty statuses.
type DutyStatus string

const (
	StatusDriving DutyStatus = "driving"
	StatusOnDuty  DutyStatus = "on_duty"
	StatusSleeper DutyStatus = "sleeper"
	StatusOffDuty DutyStatus = "off_duty"
)

// OnDuty reports whether time in this status counts toward duty limits.
func (s DutyStatus) OnDuty() bool {
	return s == StatusDriving || s == StatusOnDuty
}

// StopType classifies a planned stop along the route.
type StopType string

const (
	StopPickup  StopType = "pickup"
	StopDropoff StopType = "dropoff"
	StopRest    StopType = "rest"
	StopBreak   StopType = "break"
	StopFuel    StopType = "fuel"
	StopRestart StopType = "restart"
)

// TripRequest is the validated input for a trip calculation.
type TripRequest struct {
	CurrentLocation string
	PickupLocation  string
	DropoffLocation string
	// CycleUsed is the number of hours already used in the current 70h/8-day cycle.
	CycleUsed float64
	StartTime time.Time
}

// Location is a geocoded address.
type Location struct {
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Coords returns the location as [longitude, latitude], the order used by routing APIs.
func (l Location) Coords() [2]float64 {
	return [2]float64{l.Longitude, l.Latitude}
}

// StopLocation is the location payload attached to stops.
type StopLocation struct {
	Address     string     `json:"address"`
	Coordinates [2]float64 `json:"coordinates"`
}

// Stop is a planned stop along the route.
type Stop struct {
	Type        StopType     `json:"type"`
	Location    StopLocation `json:"location"`
	Time        time.Time    `json:"time"`
	Duration    float64      `json:"duration"`
	Description string       `json:"description"`
	MileMarker  float64      `json:"mile_marker"`
}

// RouteLeg is one leg between two consecutive waypoints.
type RouteLeg struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Distance float64 `json:"distance"`
	Duration float64 `json:"duration"`
}

// RouteData holds the calculated route. Distance is in miles, duration in hours.
type RouteData struct {
	Distance    float64      `json:"distance"`
	Duration    float64      `json:"duration"`
	Coordinates [][2]float64 `json:"coordinates"`
	Legs        []RouteLeg   `json:"legs"`
}

// Activity is one contiguous block of the driver's timeline.
type Activity struct {
	Status   DutyStatus
	Start    time.Time
	End      time.Time
	Location string
	Miles    float64
}

// Hours returns the activity length in hours.
func (a Activity) Hours() float64 {
	return a.End.Sub(a.Start).Hours()
}

// TripSummary aggregates the whole trip.
type TripSummary struct {
	TotalDriveTime  float64   `json:"total_drive_time"`
	TotalDutyTime   float64   `json:"total_duty_time"`
	DaysWithDriving int       `json:"days_with_driving"`
	TotalDays       int       `json:"total_days"`
	TotalMiles      float64   `json:"total_miles"`
	ArrivalTime     time.Time `json:"arrival_time"`
}

// TripLocations are the three geocoded trip endpoints.
type TripLocations struct {
	Current Location `json:"current"`
	Pickup  Location `json:"pickup"`
	Dropoff Location `json:"dropoff"`
}

// TripPlan is the complete response for a trip calculation.
type TripPlan struct {
	Locations TripLocations `json:"locations"`
	Route     RouteData     `json:"route"`
	Stops     []Stop        `json:"stops"`
	FuelStops []Stop        `json:"fuel_stops"`
	ELDLogs   []DailyLog    `json:"eld_logs"`
	HOSStatus HOSStatus     `json:"hos_status"`
	Summary   TripSummary   `json:"summary"`
}

// LocationCheck is the result of validating a single address input.
type LocationCheck struct {
	Field    string    `json:"field"`
	Input    string    `json:"input"`
	Valid    bool      `json:"valid"`
	Location *Location `json:"location,omitempty"`
	Error    string    `json:"error,omitempty"`
}

// LocationValidation is the result of validating a set of address inputs.
type LocationValidation struct {
	Valid   bool            `json:"valid"`
	Results []LocationCheck `json:"results"`
}
