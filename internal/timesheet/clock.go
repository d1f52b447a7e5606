package timesheet

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const clockLayout = "3:04 PM"

// Clock is a wall-clock time within a single day, stored as minutes
// from midnight.
type Clock struct {
	minutes int
}

// ParseClock parses a time-of-day string in "H:MM AM/PM" form.
func ParseClock(s string) (Clock, error) {
	t, err := time.Parse(clockLayout, strings.ToUpper(strings.TrimSpace(s)))
	if err != nil {
		return Clock{}, fmt.Errorf("parsing clock time %q: want H:MM AM/PM", s)
	}
	return Clock{minutes: t.Hour()*60 + t.Minute()}, nil
}

func (c Clock) Minutes() int { return c.minutes }

func (c Clock) Before(o Clock) bool { return c.minutes < o.minutes }

// At anchors the clock time to a calendar day.
func (c Clock) At(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), c.minutes/60, c.minutes%60, 0, 0, day.Location())
}

func (c Clock) String() string {
	return time.Date(0, 1, 1, c.minutes/60, c.minutes%60, 0, 0, time.UTC).Format(clockLayout)
}

// Workday is the fixed daily schedule every generated day follows.
type Workday struct {
	Start      Clock
	LunchStart Clock
	LunchEnd   Clock
	End        Clock
}

// NetDuration returns the working hours in a day: end minus start,
// less the lunch break.
func (w Workday) NetDuration() decimal.Decimal {
	mins := (w.End.Minutes() - w.Start.Minutes()) - (w.LunchEnd.Minutes() - w.LunchStart.Minutes())
	return decimal.NewFromInt(int64(mins)).Div(decimal.NewFromInt(60))
}
