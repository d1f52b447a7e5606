package timesheet

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// percentTolerance is how far a project's task percentages may drift
// from 100 before validation rejects the configuration.
var percentTolerance = decimal.NewFromFloat(0.01)

var hundred = decimal.NewFromInt(100)

// Task is one split of a project's hours.
type Task struct {
	Name    string
	Percent decimal.Decimal
}

// Project holds a total hour allocation and its ordered task splits.
// Task order matters: rounding remainders always land on the last task.
type Project struct {
	Name  string
	Hours decimal.Decimal
	Tasks []Task
}

// Plan is the validated, immutable configuration the engine and
// generator consume. Construct it once per run and do not mutate it.
type Plan struct {
	Projects []Project
	Workday  Workday
	Weekdays map[time.Weekday]string
	PTOHours decimal.Decimal
	Weeks    int
}

// Project returns the named project, if configured.
func (p *Plan) Project(name string) (Project, bool) {
	for _, proj := range p.Projects {
		if proj.Name == name {
			return proj, true
		}
	}
	return Project{}, false
}

// Validate checks every invariant the allocation engine relies on.
// It has no side effects; the first violation is returned as a
// *ConfigError naming the offending field.
func (p *Plan) Validate() error {
	if p.Weeks < 1 {
		return &ConfigError{Field: "weeks", Reason: fmt.Sprintf("must be a positive integer, got %d", p.Weeks)}
	}
	if p.PTOHours.IsNegative() {
		return &ConfigError{Field: "pto_hours", Reason: fmt.Sprintf("must not be negative, got %s", p.PTOHours)}
	}
	if len(p.Projects) == 0 {
		return &ConfigError{Field: "projects", Reason: "at least one project is required"}
	}

	seen := make(map[string]bool, len(p.Projects))
	for _, proj := range p.Projects {
		field := "projects." + proj.Name
		if proj.Name == "" {
			return &ConfigError{Field: "projects", Reason: "project name must not be empty"}
		}
		if seen[proj.Name] {
			return &ConfigError{Field: field, Reason: "duplicate project name"}
		}
		seen[proj.Name] = true

		if proj.Hours.IsNegative() {
			return &ConfigError{Field: field + ".hours", Reason: fmt.Sprintf("must not be negative, got %s", proj.Hours)}
		}
		if len(proj.Tasks) == 0 {
			return &ConfigError{Field: field + ".tasks", Reason: "at least one task is required"}
		}

		sum := decimal.Zero
		for _, task := range proj.Tasks {
			if task.Name == "" {
				return &ConfigError{Field: field + ".tasks", Reason: "task name must not be empty"}
			}
			if task.Percent.IsNegative() {
				return &ConfigError{
					Field:  field + ".tasks." + task.Name,
					Reason: fmt.Sprintf("percent must not be negative, got %s", task.Percent),
				}
			}
			sum = sum.Add(task.Percent)
		}
		if sum.Sub(hundred).Abs().GreaterThan(percentTolerance) {
			return &ConfigError{
				Field:  field + ".tasks",
				Reason: fmt.Sprintf("task percentages must sum to 100, got %s", sum),
			}
		}
	}

	for _, day := range []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday} {
		name, ok := p.Weekdays[day]
		if !ok || name == "" {
			return &ConfigError{
				Field:  "schedule." + weekdayField(day),
				Reason: "weekday is not mapped to a project",
			}
		}
		if _, ok := p.Project(name); !ok {
			return &ConfigError{
				Field:  "schedule." + weekdayField(day),
				Reason: fmt.Sprintf("mapped to undefined project %q", name),
			}
		}
	}

	w := p.Workday
	if !w.Start.Before(w.LunchStart) || !w.LunchStart.Before(w.LunchEnd) || !w.LunchEnd.Before(w.End) {
		return &ConfigError{
			Field:  "workday",
			Reason: "times must be in order: start < lunch_start < lunch_end < end",
		}
	}
	if !w.NetDuration().IsPositive() {
		return &ConfigError{Field: "workday", Reason: "net working duration must be positive"}
	}

	share := p.ptoShare()
	for _, proj := range p.Projects {
		if proj.Hours.LessThan(share) {
			return &ConfigError{
				Field: "pto_hours",
				Reason: fmt.Sprintf("per-project share %s exceeds %s's %s total hours",
					share, proj.Name, proj.Hours),
			}
		}
	}

	return nil
}

// ptoShare is the equal slice of PTO deducted from every project.
func (p *Plan) ptoShare() decimal.Decimal {
	if len(p.Projects) == 0 {
		return decimal.Zero
	}
	return p.PTOHours.Div(decimal.NewFromInt(int64(len(p.Projects))))
}

func weekdayField(d time.Weekday) string {
	switch d {
	case time.Monday:
		return "monday"
	case time.Tuesday:
		return "tuesday"
	case time.Wednesday:
		return "wednesday"
	case time.Thursday:
		return "thursday"
	case time.Friday:
		return "friday"
	}
	return d.String()
}
