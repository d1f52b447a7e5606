package timesheet

import (
	"time"

	"github.com/shopspring/decimal"
)

// DayRecord is one generated timesheet day: the date, the project the
// weekday maps to, and the per-task hours summing to the day's net
// working duration.
type DayRecord struct {
	Date    time.Time
	Project string
	Entries []TaskHours
	Total   decimal.Decimal
}

// Generator walks the scheduling span and emits one DayRecord per
// weekday, weeks x 5 in total. Weekends are skipped, never emitted.
type Generator struct {
	plan   *Plan
	engine *Engine
}

func NewGenerator(plan *Plan) *Generator {
	return &Generator{plan: plan, engine: NewEngine(plan)}
}

// Engine exposes the allocation engine backing this generator.
func (g *Generator) Engine() *Engine { return g.engine }

// Generate produces the full span of day records starting at the first
// weekday on or after start. The span is computed in a single pass;
// accumulated allocation warnings are returned alongside the records,
// deduplicated per project.
func (g *Generator) Generate(start time.Time) ([]DayRecord, []Warning, error) {
	days := g.spanDays(start)
	dayNet := g.plan.Workday.NetDuration()

	assigned := make(map[string]int, len(g.plan.Projects))
	for _, day := range days {
		assigned[g.plan.Weekdays[day.Weekday()]]++
	}

	records := make([]DayRecord, 0, len(days))
	var warnings []Warning
	warned := make(map[string]bool)

	for _, day := range days {
		name := g.plan.Weekdays[day.Weekday()]
		proj, ok := g.plan.Project(name)
		if !ok {
			// Validate guarantees the mapping; a miss here means the
			// plan was mutated after validation.
			return nil, nil, &ConfigError{
				Field:  "schedule." + weekdayField(day.Weekday()),
				Reason: "mapped to undefined project " + name,
			}
		}

		entries, warning, err := g.engine.DailyTaskHours(proj, dayNet, assigned[name])
		if err != nil {
			return nil, nil, err
		}
		if warning != nil && !warned[name] {
			warned[name] = true
			warnings = append(warnings, *warning)
		}

		records = append(records, DayRecord{
			Date:    day,
			Project: name,
			Entries: entries,
			Total:   dayNet,
		})
	}

	return records, warnings, nil
}

// spanDays lists the weeks x 5 weekdays of the span, starting at the
// first weekday on or after start.
func (g *Generator) spanDays(start time.Time) []time.Time {
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	total := g.plan.Weeks * 5
	days := make([]time.Time, 0, total)
	for len(days) < total {
		if day.Weekday() != time.Saturday && day.Weekday() != time.Sunday {
			days = append(days, day)
		}
		day = day.AddDate(0, 0, 1)
	}
	return days
}
