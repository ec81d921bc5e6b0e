// Package geo provides great-circle math over orb points.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// EarthRadiusM is the fixed Earth radius used for all distance math.
const EarthRadiusM = 6371000

// Distance calculates the Haversine distance between two points in meters.
// Points are orb.Point (lon, lat) in degrees.
func Distance(p1, p2 orb.Point) float64 {
	lat1 := p1[1] * (math.Pi / 180.0)
	lat2 := p2[1] * (math.Pi / 180.0)
	dLat := (p2[1] - p1[1]) * (math.Pi / 180.0)
	dLon := (p2[0] - p1[0]) * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1)*math.Cos(lat2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusM * c
}

// ValidCoords reports whether lat/lon are inside the valid degree ranges.
func ValidCoords(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
