package calendar

import (
	"fmt"
	"os"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/soniCaH/pokemon-go-leekduck/internal/event"
)

const (
	ProductID    = "-//LeekDuck Events Calendar//EN"
	CalendarName = "LeekDuck Pokemon GO Events"
	CalendarDesc = "Pokemon GO events from LeekDuck.com"

	// EventLocation is a fixed label; these events happen in-game, not at
	// a venue.
	EventLocation = "Pokemon GO"

	attribution = "Data from LeekDuck.com"
)

// Build maps normalized events onto an iCalendar object. tzID names the
// reference timezone the instants were resolved in and is advertised via
// X-WR-TIMEZONE.
func Build(events []*event.Event, tzID string) *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(ProductID)
	cal.SetVersion("2.0")
	cal.SetXWRCalName(CalendarName)
	cal.SetXWRTimezone(tzID)
	cal.SetXWRCalDesc(CalendarDesc)

	now := time.Now()

	for _, evt := range events {
		ve := cal.AddEvent(evt.UID())
		ve.SetDtStampTime(now)
		ve.SetStartAt(evt.Start)
		ve.SetEndAt(evt.End)
		ve.SetSummary(evt.Title)
		ve.SetDescription(buildDescription(evt))
		ve.SetLocation(EventLocation)
		if evt.SourceURL != "" {
			ve.SetURL(evt.SourceURL)
		}
	}

	return cal
}

// buildDescription appends the source link, optional image link, and
// attribution to the extracted description.
func buildDescription(evt *event.Event) string {
	var b strings.Builder
	b.WriteString(evt.Description)
	if evt.SourceURL != "" {
		fmt.Fprintf(&b, "\n\nMore info: %s", evt.SourceURL)
	}
	if evt.ImageURL != "" {
		fmt.Fprintf(&b, "\n\nImage: %s", evt.ImageURL)
	}
	b.WriteString("\n\n" + attribution)
	return b.String()
}

// Write serializes the calendar to path. The file is owner read/write
// only, matching how the rest of this tool treats local artifacts.
func Write(cal *ics.Calendar, path string) error {
	if err := os.WriteFile(path, []byte(cal.Serialize()), 0600); err != nil {
		return fmt.Errorf("writing calendar file: %w", err)
	}
	return nil
}
