// Package geo contains the geometry and formatting helpers used by trip planning.
// Coordinates are [longitude, latitude] pairs throughout, matching the routing APIs.
package geo

import (
	"fmt"
	"math"
	"strings"
)

// EarthRadiusMiles is the mean Earth radius used by Haversine.
const EarthRadiusMiles = 3959.0

// MetersPerMile converts routing API meters to miles.
const MetersPerMile = 1609.34

// Haversine returns the great-circle distance in miles between two [lon, lat] points.
func Haversine(a, b [2]float64) float64 {
	lat1, lon1 := radians(a[1]), radians(a[0])
	lat2, lon2 := radians(b[1]), radians(b[0])

	dlat := lat2 - lat1
	dlon := lon2 - lon1
	h := math.Pow(math.Sin(dlat/2), 2) + math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dlon/2), 2)
	return 2 * math.Asin(math.Sqrt(h)) * EarthRadiusMiles
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// PathLength returns the summed Haversine length of a polyline in miles.
func PathLength(coords [][2]float64) float64 {
	var total float64
	for i := 1; i < len(coords); i++ {
		total += Haversine(coords[i-1], coords[i])
	}
	return total
}

// FuelStopMarkers returns the mile markers, every interval miles, that fall strictly
// before the end of a route of the given length.
func FuelStopMarkers(routeMiles, interval float64) []float64 {
	if interval <= 0 {
		return nil
	}
	var markers []float64
	for mile := interval; mile < routeMiles; mile += interval {
		markers = append(markers, mile)
	}
	return markers
}

// PositionAtMile returns the approximate point at mile along a route of totalMiles.
// The route distance reported by the routing API is mapped proportionally onto the
// polyline's own length, so the point always lies on the drawn geometry.
func PositionAtMile(coords [][2]float64, mile, totalMiles float64) [2]float64 {
	if len(coords) == 0 {
		return [2]float64{0, 0}
	}
	if mile <= 0 || totalMiles <= 0 {
		return coords[0]
	}
	if mile >= totalMiles {
		return coords[len(coords)-1]
	}

	pathLen := PathLength(coords)
	if pathLen == 0 {
		return coords[0]
	}

	target := mile / totalMiles * pathLen
	var walked float64
	for i := 1; i < len(coords); i++ {
		seg := Haversine(coords[i-1], coords[i])
		if walked+seg >= target {
			if seg == 0 {
				return coords[i]
			}
			f := (target - walked) / seg
			return [2]float64{
				coords[i-1][0] + f*(coords[i][0]-coords[i-1][0]),
				coords[i-1][1] + f*(coords[i][1]-coords[i-1][1]),
			}
		}
		walked += seg
	}
	return coords[len(coords)-1]
}

// ValidCoordinates reports whether latitude and longitude are within range.
func ValidCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// RoundCoordinates rounds every coordinate to six decimal places (about 10 cm).
func RoundCoordinates(coords [][2]float64) [][2]float64 {
	out := make([][2]float64, len(coords))
	for i, c := range coords {
		out[i] = [2]float64{Round(c[0], 6), Round(c[1], 6)}
	}
	return out
}

// Thin reduces a polyline to at most maxPoints points, keeping the first and last.
func Thin(coords [][2]float64, maxPoints int) [][2]float64 {
	n := len(coords)
	if maxPoints < 2 || n <= maxPoints {
		return coords
	}
	step := int(math.Ceil(float64(n-1) / float64(maxPoints-1)))
	out := make([][2]float64, 0, maxPoints)
	for i := 0; i < n; i += step {
		out = append(out, coords[i])
	}
	if (n-1)%step != 0 {
		out = append(out, coords[n-1])
	}
	return out
}

// NormalizeAddress trims the address and collapses internal whitespace.
func NormalizeAddress(address string) string {
	return strings.Join(strings.Fields(address), " ")
}

// FormatDuration renders hours in a human-readable form.
func FormatDuration(hours float64) string {
	switch {
	case hours < 1:
		return fmt.Sprintf("%d minutes", int(hours*60))
	case hours < 24:
		h := int(hours)
		m := int((hours - float64(h)) * 60)
		if m == 0 {
			return fmt.Sprintf("%d hours", h)
		}
		return fmt.Sprintf("%d hours %d minutes", h, m)
	default:
		days := int(hours / 24)
		rem := int(math.Mod(hours, 24))
		return fmt.Sprintf("%d days %d hours", days, rem)
	}
}
