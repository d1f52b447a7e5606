package config

import (
	"fmt"
	"os"
)

// WriteDefault regenerates the config file at path from the default
// configuration, with the comments a first-time user needs. Existing
// files are never overwritten.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("checking config file: %w", err)
	}

	cfg := DefaultConfig()
	data := fmt.Sprintf(`# sheetr configuration
#
# weeks:     how many weeks of weekdays to generate (5 days per week)
# pto_hours: paid time off, deducted in equal shares from every project

weeks = %d
pto_hours = %g

# Fixed daily schedule. Times are "H:MM AM/PM"; the lunch break is
# subtracted from every day's working hours.
[workday]
start = %q
lunch_start = %q
lunch_end = %q
end = %q

# One block per project. Task percentages must sum to 100.
[[projects]]
name = %q
hours = %g
tasks = [
    { name = %q, percent = %g },
    { name = %q, percent = %g },
]

# Which project each weekday belongs to.
[schedule]
monday = %q
tuesday = %q
wednesday = %q
thursday = %q
friday = %q
`,
		cfg.Weeks,
		cfg.PTOHours,
		cfg.Workday.Start,
		cfg.Workday.LunchStart,
		cfg.Workday.LunchEnd,
		cfg.Workday.End,
		cfg.Projects[0].Name,
		cfg.Projects[0].Hours,
		cfg.Projects[0].Tasks[0].Name,
		cfg.Projects[0].Tasks[0].Percent,
		cfg.Projects[0].Tasks[1].Name,
		cfg.Projects[0].Tasks[1].Percent,
		cfg.Schedule.Monday,
		cfg.Schedule.Tuesday,
		cfg.Schedule.Wednesday,
		cfg.Schedule.Thursday,
		cfg.Schedule.Friday,
	)

	return os.WriteFile(path, []byte(data), 0644)
}
