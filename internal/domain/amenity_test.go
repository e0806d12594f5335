package domain

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("07:30")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay(450), tod)
	assert.Equal(t, "07:30", tod.String())

	_, err = ParseTimeOfDay("7pm")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestOperatingHours_EffectiveKeepsValidHours(t *testing.T) {
	h := OperatingHours{Days: []time.Weekday{time.Monday}, Open: 8 * 60, Close: 20 * 60}

	eff, problems := h.Effective()

	assert.Empty(t, problems)
	assert.Equal(t, h, eff)
}

func TestOperatingHours_EffectiveFallsBack(t *testing.T) {
	h := OperatingHours{Open: InvalidTime, Close: 20 * 60}

	eff, problems := h.Effective()

	assert.Len(t, problems, 2)
	assert.Equal(t, DefaultOpen, eff.Open)
	assert.Equal(t, DefaultClose, eff.Close)
	assert.Len(t, eff.Days, 7)
}

func TestOperatingHours_EffectiveRejectsInvertedWindow(t *testing.T) {
	h := OperatingHours{Days: AllWeekdays(), Open: 20 * 60, Close: 8 * 60}

	eff, problems := h.Effective()

	assert.Len(t, problems, 1)
	assert.Equal(t, DefaultOpen, eff.Open)
	assert.Equal(t, DefaultClose, eff.Close)
}

func TestTimeOfDay_On(t *testing.T) {
	loc := time.FixedZone("test", 3*60*60)
	date := time.Date(2026, 3, 10, 17, 45, 0, 0, loc)

	got := TimeOfDay(8 * 60).On(date)

	assert.Equal(t, time.Date(2026, 3, 10, 8, 0, 0, 0, loc), got)
}

func TestTimeOfDay_On_ClockChangeDays(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	tests := []struct {
		name string
		day  time.Time
	}{
		{"spring forward", time.Date(2026, 3, 8, 0, 0, 0, 0, ny)},
		{"fall back", time.Date(2026, 11, 1, 0, 0, 0, 0, ny)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			open := TimeOfDay(8 * 60).On(tt.day)
			closing := TimeOfDay(21*60 + 30).On(tt.day)

			assert.Equal(t, "08:00", open.Format("15:04"))
			assert.Equal(t, "21:30", closing.Format("15:04"))
			assert.Equal(t, tt.day.Day(), open.Day())
		})
	}
}

func TestTimeOfDay_On_EndOfDay(t *testing.T) {
	date := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	got := TimeOfDay(MinutesPerDay).On(date)

	assert.Equal(t, time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), got)
}
