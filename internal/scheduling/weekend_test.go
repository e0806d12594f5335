package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestConsecutiveWeekendDays(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"friday then saturday", "2026-03-06 18:00", "2026-03-07 10:00", true},
		{"saturday then friday", "2026-03-07 10:00", "2026-03-06 18:00", true},
		{"saturday then sunday", "2026-03-07 10:00", "2026-03-08 10:00", true},
		{"friday then sunday", "2026-03-06 10:00", "2026-03-08 22:00", true},
		{"sunday then friday before", "2026-03-08 10:00", "2026-03-06 10:00", true},
		{"same saturday", "2026-03-07 10:00", "2026-03-07 18:00", false},
		{"saturday then next saturday", "2026-03-07 10:00", "2026-03-14 10:00", false},
		{"sunday then next friday", "2026-03-08 10:00", "2026-03-13 10:00", false},
		{"tuesday is never a weekend day", "2026-03-10 10:00", "2026-03-07 10:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConsecutiveWeekendDays(day(tt.a), day(tt.b), time.UTC))
		})
	}
}

func TestConsecutiveWeekendDays_UsesLocalCalendar(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)

	// 22:30 UTC Friday is already Saturday in UTC+3
	fri := day("2026-03-06 22:30")
	sat := day("2026-03-07 12:00")

	assert.True(t, ConsecutiveWeekendDays(fri, sat, time.UTC))
	assert.False(t, ConsecutiveWeekendDays(fri, sat, loc))
}

func TestIsWeekendDay(t *testing.T) {
	assert.True(t, IsWeekendDay(time.Friday))
	assert.True(t, IsWeekendDay(time.Saturday))
	assert.True(t, IsWeekendDay(time.Sunday))
	assert.False(t, IsWeekendDay(time.Monday))
	assert.False(t, IsWeekendDay(time.Thursday))
}
