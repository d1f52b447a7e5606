package render

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sheetr/sheetr/internal/timesheet"
)

var sixty = decimal.NewFromInt(60)

// Timesheet renders the day-by-day breakdown: one block per day with
// the assigned project, per-task hours, and the daily total. Weeks are
// separated by a blank line.
func Timesheet(records []timesheet.DayRecord) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Timesheet"))
	b.WriteString("\n")

	for i, rec := range records {
		if i > 0 && i%5 == 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("%s  %s  %s\n",
			dayStyle.Render(rec.Date.Format("Mon 2006-01-02")),
			projectStyle.Render(rec.Project),
			totalStyle.Render(FormatHours(rec.Total)),
		))
		for _, entry := range rec.Entries {
			b.WriteString(fmt.Sprintf("    %s  %s\n",
				taskStyle.Render(fmt.Sprintf("%-24s", entry.Task)),
				FormatHours(entry.Hours),
			))
		}
	}

	return b.String()
}

// Summary renders the per-project allocation totals: hours and minutes
// per task, its percentage, and how many full workdays the task fills
// at the configured day length, with the remainder.
func Summary(plan *timesheet.Plan, engine *timesheet.Engine) (string, error) {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Allocation summary"))
	b.WriteString("\n")

	dayNet := plan.Workday.NetDuration()

	for _, proj := range plan.Projects {
		effective, err := engine.EffectiveHours(proj)
		if err != nil {
			return "", err
		}
		taskHours, err := engine.TaskHours(proj)
		if err != nil {
			return "", err
		}

		b.WriteString(fmt.Sprintf("%s  %s",
			projectStyle.Render(proj.Name), FormatHours(effective)))
		if plan.PTOHours.IsPositive() {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  (%s before PTO)", FormatHours(proj.Hours))))
		}
		b.WriteString("\n")

		for i, th := range taskHours {
			fullDays := th.Hours.Div(dayNet).Floor()
			remainder := th.Hours.Sub(fullDays.Mul(dayNet))
			b.WriteString(fmt.Sprintf("    %s: %s (%s%%)\n",
				taskStyle.Render(th.Task),
				FormatHours(th.Hours),
				proj.Tasks[i].Percent.String(),
			))
			b.WriteString(dimStyle.Render(fmt.Sprintf("        -> %s full %s workdays, %s remainder",
				fullDays.String(), FormatHours(dayNet), FormatHours(remainder))))
			b.WriteString("\n")
		}
	}

	return b.String(), nil
}

// FormatHours renders decimal hours as "7h30m", rounding to the
// nearest minute.
func FormatHours(hours decimal.Decimal) string {
	totalMinutes := hours.Mul(sixty).Round(0).IntPart()
	sign := ""
	if totalMinutes < 0 {
		sign = "-"
		totalMinutes = -totalMinutes
	}
	return fmt.Sprintf("%s%dh%02dm", sign, totalMinutes/60, totalMinutes%60)
}
