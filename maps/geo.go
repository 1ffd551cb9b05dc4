// Package maps positions catalog events on the discovery map and filters
// them by distance and age fit.
package maps

import (
	"math"

	"gigglesgo/structs"
)

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DefaultCenter is central Georgetown, used whenever the device location is
// unavailable or denied.
var DefaultCenter = Coordinate{Lat: 6.8013, Lng: -58.1551}

// coordinates pins each catalog event. Events outside Georgetown sit far
// enough out that distance filters exclude them at city scale.
var coordinates = map[int]Coordinate{
	1: {Lat: 6.8077, Lng: -58.1453}, // National Park
	2: {Lat: 5.1760, Lng: -59.4808}, // Kaieteur National Park
	3: {Lat: 6.8046, Lng: -58.1548}, // National Library
	4: {Lat: 6.8223, Lng: -58.1319}, // Kitty Community Center
	5: {Lat: 6.8100, Lng: -58.1437}, // Bourda Green
	6: {Lat: 6.8131, Lng: -58.1517}, // Promenade Gardens
	7: {Lat: 6.2480, Lng: -57.5170}, // New Amsterdam
	8: {Lat: 6.8090, Lng: -58.1120}, // University of Guyana
}

const earthRadiusKm = 6371

// Distance is the great-circle distance in kilometers.
func Distance(a, b Coordinate) float64 {
	dLat := radians(b.Lat - a.Lat)
	dLng := radians(b.Lng - a.Lng)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(a.Lat))*math.Cos(radians(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// EventCoordinate looks up the pinned location for an event.
func EventCoordinate(ev structs.Event) (Coordinate, bool) {
	c, ok := coordinates[ev.ID]
	return c, ok
}

// Locator supplies the device position. Implementations return false when
// location services are off or the user declined.
type Locator interface {
	Locate() (Coordinate, bool)
}

// FixedLocator always reports one position.
type FixedLocator Coordinate

func (f FixedLocator) Locate() (Coordinate, bool) { return Coordinate(f), true }

// NoLocation reports no position, forcing the Georgetown fallback.
type NoLocation struct{}

func (NoLocation) Locate() (Coordinate, bool) { return Coordinate{}, false }

// Center resolves the map center: device position when available, otherwise
// the Georgetown default.
func Center(loc Locator) Coordinate {
	if loc != nil {
		if c, ok := loc.Locate(); ok {
			return c
		}
	}
	return DefaultCenter
}
