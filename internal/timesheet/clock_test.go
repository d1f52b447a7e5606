package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		input   string
		minutes int
		wantErr bool
	}{
		{"9:00 AM", 9 * 60, false},
		{"12:00 PM", 12 * 60, false},
		{"12:30 AM", 30, false},
		{"1:00 PM", 13 * 60, false},
		{"11:59 PM", 23*60 + 59, false},
		{"9:00 am", 9 * 60, false},
		{" 5:15 PM ", 17*60 + 15, false},
		{"25:00", 0, true},
		{"9:00", 0, true},
		{"noon", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			clock, err := ParseClock(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.minutes, clock.Minutes())
		})
	}
}

func TestClock_At(t *testing.T) {
	clock, err := ParseClock("9:30 AM")
	require.NoError(t, err)

	day := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	at := clock.At(day)

	assert.Equal(t, time.Date(2026, time.March, 2, 9, 30, 0, 0, time.UTC), at)
}

func TestClock_String(t *testing.T) {
	clock, err := ParseClock("1:05 pm")
	require.NoError(t, err)
	assert.Equal(t, "1:05 PM", clock.String())
}

func TestWorkday_NetDuration(t *testing.T) {
	t.Run("should subtract the lunch break", func(t *testing.T) {
		w := mustWorkday(t, "9:00 AM", "12:00 PM", "1:00 PM", "5:00 PM")
		assert.True(t, w.NetDuration().Equal(dec(t, "7")))
	})

	t.Run("should handle half-hour boundaries", func(t *testing.T) {
		w := mustWorkday(t, "8:30 AM", "12:15 PM", "12:45 PM", "4:30 PM")
		assert.True(t, w.NetDuration().Equal(dec(t, "7.5")))
	})
}
