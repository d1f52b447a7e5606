package timesheet

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ConfigError reports a malformed or logically inconsistent configuration.
// It is raised during validation, before any allocation runs.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

// AllocationError reports a project whose hours cannot be allocated,
// such as a negative total after the PTO deduction.
type AllocationError struct {
	Project string
	Hours   decimal.Decimal
	Reason  string
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("allocating %s (%s hours): %s", e.Project, e.Hours.String(), e.Reason)
}

// Warning is a non-fatal discrepancy between a project's configured
// effective hours and the hours the schedule will actually place over
// the span. It is reported through diagnostics, never fatal.
type Warning struct {
	Project   string
	Allocated decimal.Decimal // effective hours from configuration
	Scheduled decimal.Decimal // net day duration x days assigned
}

func (w Warning) String() string {
	verb := "under-allocated"
	if w.Allocated.GreaterThan(w.Scheduled) {
		verb = "over-allocated"
	}
	return fmt.Sprintf("%s: %s: configured %s hours, schedule places %s",
		w.Project, verb, w.Allocated.String(), w.Scheduled.String())
}
