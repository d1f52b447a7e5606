package timesheet

import (
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// hoursPlaces is the rounding precision for task hours. Two decimal
// places keeps entries readable while the last-task remainder rule
// keeps totals exact.
const hoursPlaces = 2

// TaskHours is one task's share of an allocation, in hours.
type TaskHours struct {
	Task  string
	Hours decimal.Decimal
}

// Engine apportions a plan's hours across projects and tasks. All
// operations are pure functions of the validated plan; identical
// plans produce identical results.
type Engine struct {
	plan *Plan
}

func NewEngine(plan *Plan) *Engine {
	return &Engine{plan: plan}
}

// EffectiveHours returns a project's total hours minus its equal
// share of the plan's PTO.
func (e *Engine) EffectiveHours(proj Project) (decimal.Decimal, error) {
	effective := proj.Hours.Sub(e.plan.ptoShare())
	if effective.IsNegative() {
		return decimal.Zero, &AllocationError{
			Project: proj.Name,
			Hours:   effective,
			Reason:  "effective hours are negative after PTO deduction",
		}
	}
	log.WithFields(log.Fields{
		"project":   proj.Name,
		"total":     proj.Hours,
		"pto_share": e.plan.ptoShare(),
		"effective": effective,
	}).Debug("computed effective hours")
	return effective, nil
}

// TaskHours splits a project's effective hours across its tasks by
// their configured percentages. The split always sums to the effective
// hours exactly: every task is rounded and the rounding remainder goes
// to the last task in declared order.
func (e *Engine) TaskHours(proj Project) ([]TaskHours, error) {
	effective, err := e.EffectiveHours(proj)
	if err != nil {
		return nil, err
	}
	return splitByPercent(effective, proj.Tasks), nil
}

// DailyTaskHours splits one day's net working duration across a
// project's tasks, preserving the configured percentage ratios. The
// returned entries sum to dayNet exactly. When the project's effective
// hours disagree with dayNet x daysAssigned, the discrepancy is
// returned as a non-fatal Warning alongside the entries.
func (e *Engine) DailyTaskHours(proj Project, dayNet decimal.Decimal, daysAssigned int) ([]TaskHours, *Warning, error) {
	effective, err := e.EffectiveHours(proj)
	if err != nil {
		return nil, nil, err
	}

	entries := splitByPercent(dayNet, proj.Tasks)

	var warning *Warning
	scheduled := dayNet.Mul(decimal.NewFromInt(int64(daysAssigned)))
	if !scheduled.Equal(effective) {
		warning = &Warning{Project: proj.Name, Allocated: effective, Scheduled: scheduled}
	}

	log.WithFields(log.Fields{
		"project":       proj.Name,
		"day_net":       dayNet,
		"days_assigned": daysAssigned,
		"scheduled":     scheduled,
	}).Debug("computed daily task hours")

	return entries, warning, nil
}

// splitByPercent divides total across tasks by percentage, rounding
// each share and assigning the remainder to the last task so the
// shares sum to total exactly.
func splitByPercent(total decimal.Decimal, tasks []Task) []TaskHours {
	entries := make([]TaskHours, len(tasks))
	allocated := decimal.Zero
	for i, task := range tasks {
		hours := total.Mul(task.Percent).Div(hundred).Round(hoursPlaces)
		if i == len(tasks)-1 {
			hours = total.Sub(allocated)
		}
		entries[i] = TaskHours{Task: task.Name, Hours: hours}
		allocated = allocated.Add(hours)
	}
	return entries
}
