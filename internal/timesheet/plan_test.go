package timesheet

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dec parses a decimal literal for tests.
func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func mustWorkday(t *testing.T, start, lunchStart, lunchEnd, end string) Workday {
	t.Helper()
	var w Workday
	var err error
	w.Start, err = ParseClock(start)
	require.NoError(t, err)
	w.LunchStart, err = ParseClock(lunchStart)
	require.NoError(t, err)
	w.LunchEnd, err = ParseClock(lunchEnd)
	require.NoError(t, err)
	w.End, err = ParseClock(end)
	require.NoError(t, err)
	return w
}

// alphaPlan is the single-project reference plan: Alpha 80h split
// 50/50, every weekday on Alpha, one week, 9-5 with a 12-1 lunch.
func alphaPlan(t *testing.T) *Plan {
	t.Helper()
	return &Plan{
		Projects: []Project{
			{
				Name:  "Alpha",
				Hours: dec(t, "80"),
				Tasks: []Task{
					{Name: "A", Percent: dec(t, "50")},
					{Name: "B", Percent: dec(t, "50")},
				},
			},
		},
		Workday: mustWorkday(t, "9:00 AM", "12:00 PM", "1:00 PM", "5:00 PM"),
		Weekdays: map[time.Weekday]string{
			time.Monday:    "Alpha",
			time.Tuesday:   "Alpha",
			time.Wednesday: "Alpha",
			time.Thursday:  "Alpha",
			time.Friday:    "Alpha",
		},
		PTOHours: decimal.Zero,
		Weeks:    1,
	}
}

func assertConfigError(t *testing.T, err error, field string) {
	t.Helper()
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, field, cfgErr.Field)
}

func TestPlan_Validate(t *testing.T) {
	t.Run("should accept the reference plan", func(t *testing.T) {
		assert.NoError(t, alphaPlan(t).Validate())
	})

	t.Run("should accept percentages within tolerance", func(t *testing.T) {
		plan := alphaPlan(t)
		plan.Projects[0].Tasks = []Task{
			{Name: "A", Percent: dec(t, "49.99")},
			{Name: "B", Percent: dec(t, "50")},
		}
		assert.NoError(t, plan.Validate())
	})

	t.Run("should reject percentages outside tolerance", func(t *testing.T) {
		plan := alphaPlan(t)
		plan.Projects[0].Tasks = []Task{
			{Name: "A", Percent: dec(t, "45")},
			{Name: "B", Percent: dec(t, "50")},
		}
		assertConfigError(t, plan.Validate(), "projects.Alpha.tasks")
	})

	t.Run("should reject an unmapped weekday", func(t *testing.T) {
		plan := alphaPlan(t)
		delete(plan.Weekdays, time.Wednesday)
		assertConfigError(t, plan.Validate(), "schedule.wednesday")
	})

	t.Run("should reject a weekday mapped to an undefined project", func(t *testing.T) {
		plan := alphaPlan(t)
		plan.Weekdays[time.Friday] = "Beta"
		assertConfigError(t, plan.Validate(), "schedule.friday")
	})

	t.Run("should reject non-monotonic workday times", func(t *testing.T) {
		plan := alphaPlan(t)
		plan.Workday = mustWorkday(t, "9:00 AM", "1:00 PM", "12:00 PM", "5:00 PM")
		assertConfigError(t, plan.Validate(), "workday")
	})

	t.Run("should reject negative PTO", func(t *testing.T) {
		plan := alphaPlan(t)
		plan.PTOHours = dec(t, "-1")
		assertConfigError(t, plan.Validate(), "pto_hours")
	})

	t.Run("should reject PTO share exceeding a project's hours", func(t *testing.T) {
		plan := alphaPlan(t)
		plan.PTOHours = dec(t, "100")
		assertConfigError(t, plan.Validate(), "pto_hours")
	})

	t.Run("should reject non-positive weeks", func(t *testing.T) {
		plan := alphaPlan(t)
		plan.Weeks = 0
		assertConfigError(t, plan.Validate(), "weeks")
	})

	t.Run("should reject duplicate project names", func(t *testing.T) {
		plan := alphaPlan(t)
		plan.Projects = append(plan.Projects, plan.Projects[0])
		assertConfigError(t, plan.Validate(), "projects.Alpha")
	})

	t.Run("should reject a project without tasks", func(t *testing.T) {
		plan := alphaPlan(t)
		plan.Projects[0].Tasks = nil
		assertConfigError(t, plan.Validate(), "projects.Alpha.tasks")
	})

	t.Run("should reject negative project hours", func(t *testing.T) {
		plan := alphaPlan(t)
		plan.Projects[0].Hours = dec(t, "-5")
		assertConfigError(t, plan.Validate(), "projects.Alpha.hours")
	})

	t.Run("should reject an empty project list", func(t *testing.T) {
		plan := alphaPlan(t)
		plan.Projects = nil
		err := plan.Validate()
		var cfgErr *ConfigError
		assert.True(t, errors.As(err, &cfgErr))
	})
}

func TestPlan_Project(t *testing.T) {
	plan := alphaPlan(t)

	proj, ok := plan.Project("Alpha")
	require.True(t, ok)
	assert.Equal(t, "Alpha", proj.Name)

	_, ok = plan.Project("Beta")
	assert.False(t, ok)
}
