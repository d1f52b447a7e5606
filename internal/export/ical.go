package export

import (
	"fmt"
	"io"
	"strings"

	ical "github.com/emersion/go-ical"
	"github.com/sheetr/sheetr/internal/render"
	"github.com/sheetr/sheetr/internal/timesheet"
)

// WriteICal encodes the generated span as an iCalendar stream with one
// event per day, running from workday start to end, with the per-task
// breakdown in the description. Output depends only on the records and
// workday, so identical input yields identical bytes.
func WriteICal(w io.Writer, records []timesheet.DayRecord, workday timesheet.Workday) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, "-//sheetr//timesheet//EN")

	for _, rec := range records {
		start := workday.Start.At(rec.Date)
		end := workday.End.At(rec.Date)

		var desc strings.Builder
		for _, entry := range rec.Entries {
			fmt.Fprintf(&desc, "%s: %s\n", entry.Task, render.FormatHours(entry.Hours))
		}
		fmt.Fprintf(&desc, "Total: %s", render.FormatHours(rec.Total))

		event := ical.NewEvent()
		event.Props.SetText(ical.PropUID, rec.Date.Format("2006-01-02")+"@sheetr")
		event.Props.SetDateTime(ical.PropDateTimeStamp, start)
		event.Props.SetDateTime(ical.PropDateTimeStart, start)
		event.Props.SetDateTime(ical.PropDateTimeEnd, end)
		event.Props.SetText(ical.PropSummary, rec.Project)
		event.Props.SetText(ical.PropDescription, desc.String())

		cal.Children = append(cal.Children, event.Component)
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("encoding calendar: %w", err)
	}
	return nil
}
