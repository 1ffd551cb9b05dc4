// Package calendarsync turns catalog events into calendar artifacts: deep
// links for the hosted calendar providers and a downloadable ICS document.
package calendarsync

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"gigglesgo/structs"
)

// Provider identifies a hosted calendar target.
type Provider string

const (
	Google  Provider = "google"
	Outlook Provider = "outlook"
	Yahoo   Provider = "yahoo"
	Apple   Provider = "apple" // served as an ICS download, no deep link
)

// Guyana has no daylight saving; a fixed offset is exact year-round.
var guyana = time.FixedZone("-04", -4*60*60)

const (
	dateLayout = "Jan 2, 2006"
	timeLayout = "3:04 PM"

	// compact UTC stamp used in google and yahoo links
	compactUTC = "20060102T150405Z"

	defaultDuration = 2 * time.Hour
)

// EventWindow resolves the display date and time strings into a concrete
// [start, end) window. Events carry no duration, so the end is fixed at two
// hours after the start.
func EventWindow(ev structs.Event) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(dateLayout+" "+timeLayout, ev.Date+" "+ev.Time, guyana)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("event %d has an unparseable schedule: %w", ev.ID, err)
	}
	return start, start.Add(defaultDuration), nil
}

// LinkFor builds the provider's pre-filled "add event" URL. Apple has no
// hosted compose page; callers serve the ICS download instead.
func LinkFor(p Provider, ev structs.Event) (string, error) {
	start, end, err := EventWindow(ev)
	if err != nil {
		return "", err
	}

	switch p {
	case Google:
		return "https://calendar.google.com/calendar/render?action=TEMPLATE" +
			"&text=" + escape(ev.Title) +
			"&dates=" + start.UTC().Format(compactUTC) + "/" + end.UTC().Format(compactUTC) +
			"&details=" + escape(ev.Description) +
			"&location=" + escape(ev.Location) +
			"&sf=true&output=xml", nil
	case Outlook:
		return "https://outlook.live.com/calendar/0/deeplink/compose?" +
			"subject=" + escape(ev.Title) +
			"&startdt=" + escape(start.UTC().Format(time.RFC3339)) +
			"&enddt=" + escape(end.UTC().Format(time.RFC3339)) +
			"&body=" + escape(ev.Description) +
			"&location=" + escape(ev.Location), nil
	case Yahoo:
		return "https://calendar.yahoo.com/?v=60&view=d&type=20" +
			"&title=" + escape(ev.Title) +
			"&st=" + start.UTC().Format(compactUTC) +
			"&et=" + end.UTC().Format(compactUTC) +
			"&desc=" + escape(ev.Description) +
			"&in_loc=" + escape(ev.Location), nil
	default:
		return "", fmt.Errorf("no deep link for provider %q", p)
	}
}

// escape is query escaping with spaces as %20; the calendar compose pages do
// not all decode "+".
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
