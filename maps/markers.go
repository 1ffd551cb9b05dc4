package maps

import (
	"regexp"
	"strconv"
	"strings"

	"gigglesgo/catalog"
	"gigglesgo/structs"
)

// Marker is an event pinned to a position on the map viewport, expressed in
// percent so the client can place it on any screen size.
type Marker struct {
	Event       structs.Event `json:"event"`
	Left        float64       `json:"left"`
	Top         float64       `json:"top"`
	Coordinate  Coordinate    `json:"coordinate"`
	DistanceKm  float64       `json:"distanceKm"`
	HasLocation bool          `json:"hasLocation"`
}

// Preset is a labelled slider value.
type Preset struct {
	Label string `json:"label"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
}

var AgePresets = []Preset{
	{Label: "Toddlers", Min: 1, Max: 3},
	{Label: "Preschool", Min: 3, Max: 5},
	{Label: "School Age", Min: 6, Max: 12},
	{Label: "Teens", Min: 13, Max: 17},
	{Label: "All Ages", Min: 0, Max: 18},
}

// DistancePresets carry the radius in Max; Min is unused.
var DistancePresets = []Preset{
	{Label: "Nearby", Max: 5},
	{Label: "Local", Max: 15},
	{Label: "City-wide", Max: 50},
	{Label: "Anywhere", Max: 100},
}

// Markers lays the events out on the fixed 3-column grid the map screen
// uses, with distances measured from the resolved center.
func Markers(events []structs.Event, center Coordinate) []Marker {
	out := make([]Marker, 0, len(events))
	for i, ev := range events {
		m := Marker{
			Event: ev,
			Left:  25 + float64(i%3)*25,
			Top:   20 + float64(i/3)*20,
		}
		if c, ok := EventCoordinate(ev); ok {
			m.Coordinate = c
			m.DistanceKm = Distance(center, c)
			m.HasLocation = true
		}
		out = append(out, m)
	}
	return out
}

// SearchMap matches the query case-insensitively against title, location or
// category. An empty query matches everything.
func SearchMap(query string) []structs.Event {
	q := strings.ToLower(query)
	if q == "" {
		return catalog.Events()
	}
	var out []structs.Event
	for _, ev := range catalog.Events() {
		if strings.Contains(strings.ToLower(ev.Title), q) ||
			strings.Contains(strings.ToLower(ev.Location), q) ||
			strings.Contains(strings.ToLower(ev.Category), q) {
			out = append(out, ev)
		}
	}
	return out
}

var ageRangePattern = regexp.MustCompile(`(\d+)\s*-\s*(\d+)`)
var agePlusPattern = regexp.MustCompile(`(\d+)\+`)

// parseAgeRange reads the display strings the catalog uses: "3-12 years",
// "6+ years" and "All ages".
func parseAgeRange(s string) (int, int) {
	if m := ageRangePattern.FindStringSubmatch(s); m != nil {
		lo, _ := strconv.Atoi(m[1])
		hi, _ := strconv.Atoi(m[2])
		return lo, hi
	}
	if m := agePlusPattern.FindStringSubmatch(s); m != nil {
		lo, _ := strconv.Atoi(m[1])
		return lo, 18
	}
	return 0, 18 // "All ages"
}

// FilterByAge keeps events whose age range overlaps [min, max].
func FilterByAge(events []structs.Event, min, max int) []structs.Event {
	var out []structs.Event
	for _, ev := range events {
		lo, hi := parseAgeRange(ev.AgeRange)
		if lo <= max && hi >= min {
			out = append(out, ev)
		}
	}
	return out
}

// FilterByDistance keeps events within radiusKm of the center. Events with
// no pinned location never match a distance filter.
func FilterByDistance(events []structs.Event, center Coordinate, radiusKm float64) []structs.Event {
	var out []structs.Event
	for _, ev := range events {
		c, ok := EventCoordinate(ev)
		if !ok {
			continue
		}
		if Distance(center, c) <= radiusKm {
			out = append(out, ev)
		}
	}
	return out
}
