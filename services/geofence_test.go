package services

import (
	"testing"

	"github.com/pin-point/server-go/models"
	"github.com/stretchr/testify/assert"
)

// Porter's Plaza, the coordinates the client centers its map on.
const (
	baseLat = 36.9741
	baseLng = -122.0308
)

func zoneAt(lat, lng, radius float64, category string) models.WatchZone {
	return models.WatchZone{
		ID:           "zone-1",
		OwnerID:      1,
		Category:     category,
		Latitude:     lat,
		Longitude:    lng,
		RadiusMeters: radius,
	}
}

func pinAt(lat, lng float64, category string) *models.Pin {
	return &models.Pin{ID: "pin-1", Category: category, Latitude: lat, Longitude: lng, AuthorID: 2}
}

func TestHaversineZeroDistance(t *testing.T) {
	d := HaversineMeters(baseLat, baseLng, baseLat, baseLng)
	assert.Zero(t, d)
}

func TestHaversineKnownDistance(t *testing.T) {
	// One degree of latitude is ~111.19 km on the sphere we use.
	d := HaversineMeters(36.0, -122.0, 37.0, -122.0)
	assert.InDelta(t, 111195, d, 5)
}

func TestEvaluateZonesPinAtCenter(t *testing.T) {
	zones := []models.WatchZone{zoneAt(baseLat, baseLng, 50, models.CategoryPolice)}
	matched := EvaluateZones(pinAt(baseLat, baseLng, models.CategoryPolice), zones)
	assert.Len(t, matched, 1)
}

func TestEvaluateZonesBoundaryIsInclusive(t *testing.T) {
	// Place the pin north of the zone center and set the radius to the
	// exact computed distance: distance == radius must match.
	pin := pinAt(baseLat+0.00045, baseLng, models.CategoryPolice)
	d := HaversineMeters(baseLat, baseLng, pin.Latitude, pin.Longitude)

	zones := []models.WatchZone{zoneAt(baseLat, baseLng, d, models.CategoryPolice)}
	matched := EvaluateZones(pin, zones)
	assert.Len(t, matched, 1, "pin exactly on the boundary should match")
}

func TestEvaluateZonesJustOutside(t *testing.T) {
	pin := pinAt(baseLat+0.00045, baseLng, models.CategoryPolice)
	d := HaversineMeters(baseLat, baseLng, pin.Latitude, pin.Longitude)

	zones := []models.WatchZone{zoneAt(baseLat, baseLng, d-1, models.CategoryPolice)}
	matched := EvaluateZones(pin, zones)
	assert.Empty(t, matched, "pin one meter past the radius should not match")
}

func TestEvaluateZonesCategoryMismatch(t *testing.T) {
	zones := []models.WatchZone{zoneAt(baseLat, baseLng, 100, models.CategoryParking)}
	matched := EvaluateZones(pinAt(baseLat, baseLng, models.CategoryPolice), zones)
	assert.Empty(t, matched)
}

func TestEvaluateZonesGeneralMatchesAnyCategory(t *testing.T) {
	zones := []models.WatchZone{zoneAt(baseLat, baseLng, 100, models.CategoryGeneral)}
	matched := EvaluateZones(pinAt(baseLat, baseLng, models.CategoryRobbery), zones)
	assert.Len(t, matched, 1)
}

func TestEvaluateZonesMultipleOwners(t *testing.T) {
	near := zoneAt(baseLat, baseLng, 100, models.CategoryPolice)
	far := zoneAt(baseLat+1, baseLng, 100, models.CategoryPolice)
	far.ID = "zone-2"

	matched := EvaluateZones(pinAt(baseLat, baseLng, models.CategoryPolice), []models.WatchZone{near, far})
	assert.Len(t, matched, 1)
	assert.Equal(t, "zone-1", matched[0].ID)
}
