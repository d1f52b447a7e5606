package timesheet

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-03-02 is a Monday.
var monday = time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

func TestGenerator_Generate(t *testing.T) {
	t.Run("should emit the worked example week", func(t *testing.T) {
		// Alpha 80h, A/B 50/50, PTO 0, one week of 7h days.
		gen := NewGenerator(alphaPlan(t))

		records, warnings, err := gen.Generate(monday)
		require.NoError(t, err)

		require.Len(t, records, 5)
		for _, rec := range records {
			assert.Equal(t, "Alpha", rec.Project)
			assert.True(t, rec.Total.Equal(dec(t, "7")))
			require.Len(t, rec.Entries, 2)
			assert.Equal(t, "A", rec.Entries[0].Task)
			assert.True(t, rec.Entries[0].Hours.Equal(dec(t, "3.5")))
			assert.Equal(t, "B", rec.Entries[1].Task)
			assert.True(t, rec.Entries[1].Hours.Equal(dec(t, "3.5")))
		}

		// The week only places 35 of the configured 80 hours.
		require.Len(t, warnings, 1)
		assert.Equal(t, "Alpha", warnings[0].Project)
		assert.True(t, warnings[0].Scheduled.Equal(dec(t, "35")))
	})

	t.Run("should emit weeks x 5 records and skip weekends", func(t *testing.T) {
		plan := alphaPlan(t)
		plan.Weeks = 3
		gen := NewGenerator(plan)

		records, _, err := gen.Generate(monday)
		require.NoError(t, err)

		require.Len(t, records, 15)
		for _, rec := range records {
			assert.NotEqual(t, time.Saturday, rec.Date.Weekday())
			assert.NotEqual(t, time.Sunday, rec.Date.Weekday())
		}
		// Third Friday of the span.
		assert.Equal(t, time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC), records[14].Date)
	})

	t.Run("should start on the first weekday on or after start", func(t *testing.T) {
		gen := NewGenerator(alphaPlan(t))

		saturday := monday.AddDate(0, 0, -2)
		records, _, err := gen.Generate(saturday)
		require.NoError(t, err)

		assert.Equal(t, monday, records[0].Date)
	})

	t.Run("should assign days via the weekday map", func(t *testing.T) {
		plan := twoProjectPlan(t)
		gen := NewGenerator(plan)

		records, _, err := gen.Generate(monday)
		require.NoError(t, err)

		want := []string{"Alpha", "Beta", "Alpha", "Beta", "Alpha"}
		for i, rec := range records {
			assert.Equal(t, want[i], rec.Project, "day %d", i)
		}
	})

	t.Run("should keep every day's entries summing to the net duration", func(t *testing.T) {
		plan := twoProjectPlan(t)
		gen := NewGenerator(plan)

		records, _, err := gen.Generate(monday)
		require.NoError(t, err)

		dayNet := plan.Workday.NetDuration()
		for _, rec := range records {
			sum := decimal.Zero
			for _, e := range rec.Entries {
				sum = sum.Add(e.Hours)
			}
			assert.True(t, sum.Equal(dayNet), "day %s: %s != %s", rec.Date.Format("2006-01-02"), sum, dayNet)
		}
	})

	t.Run("should dedupe warnings per project", func(t *testing.T) {
		plan := twoProjectPlan(t) // both projects disagree with the span
		plan.Weeks = 4
		gen := NewGenerator(plan)

		_, warnings, err := gen.Generate(monday)
		require.NoError(t, err)

		seen := make(map[string]int)
		for _, w := range warnings {
			seen[w.Project]++
		}
		for project, count := range seen {
			assert.Equal(t, 1, count, "project %s warned %d times", project, count)
		}
	})

	t.Run("should be deterministic for identical plans", func(t *testing.T) {
		first, _, err := NewGenerator(twoProjectPlan(t)).Generate(monday)
		require.NoError(t, err)
		second, _, err := NewGenerator(twoProjectPlan(t)).Generate(monday)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("should surface allocation errors", func(t *testing.T) {
		plan := twoProjectPlan(t)
		plan.PTOHours = dec(t, "90")
		gen := NewGenerator(plan)

		_, _, err := gen.Generate(monday)

		var allocErr *AllocationError
		require.ErrorAs(t, err, &allocErr)
	})
}
