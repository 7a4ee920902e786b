package services

import (
	"math"

	"github.com/pin-point/server-go/models"
)

const earthRadiusMeters = 6371000.0

// HaversineMeters returns the great-circle distance in meters between
// two lat/lng points given in decimal degrees. At watch-zone scale
// (radii capped at a few hundred meters) the error is far below the
// 5-meter radius step the client exposes.
func HaversineMeters(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// EvaluateZones returns the zones whose circle contains the pin's
// coordinates and whose category accepts the pin's category. The
// boundary is inclusive: a pin exactly radiusMeters away matches.
// Pure function over the given zone set; it mutates nothing.
func EvaluateZones(pin *models.Pin, zones []models.WatchZone) []models.WatchZone {
	var matched []models.WatchZone
	for _, zone := range zones {
		if !models.CategoryMatches(zone.Category, pin.Category) {
			continue
		}
		d := HaversineMeters(zone.Latitude, zone.Longitude, pin.Latitude, pin.Longitude)
		if d <= zone.RadiusMeters {
			matched = append(matched, zone)
		}
	}
	return matched
}
