package calendarsync

import (
	"fmt"

	ical "github.com/arran4/golang-ical"

	"gigglesgo/structs"
	"gigglesgo/utils"
)

const prodID = "-//Giggles & Go GY//Event Calendar//EN"

// ToICS renders the event as a single-VEVENT calendar document. The output
// is deterministic for a given event: the DTSTAMP is pinned to the event
// start rather than the wall clock.
func ToICS(ev structs.Event) (string, error) {
	start, end, err := EventWindow(ev)
	if err != nil {
		return "", err
	}

	cal := ical.NewCalendar()
	cal.SetProductId(prodID)
	cal.SetMethod(ical.MethodPublish)

	e := cal.AddEvent(fmt.Sprintf("%d@gigglesandgo.gy", ev.ID))
	e.SetDtStampTime(start.UTC())
	e.SetStartAt(start.UTC())
	e.SetEndAt(end.UTC())
	e.SetSummary(ev.Title)
	e.SetDescription(ev.Description)
	e.SetLocation(ev.Location)
	e.SetStatus(ical.ObjectStatusConfirmed)
	e.SetProperty(ical.ComponentPropertyOrganizer, "CN="+ev.Organizer)

	alarm := e.AddAlarm()
	alarm.SetAction(ical.ActionDisplay)
	alarm.SetTrigger("-PT15M")
	alarm.SetProperty(ical.ComponentPropertyDescription, "Event reminder")

	return cal.Serialize(), nil
}

// ICSFilename is the suggested download name, slugged from the title.
func ICSFilename(ev structs.Event) string {
	return utils.SlugFilename(ev.Title) + ".ics"
}
