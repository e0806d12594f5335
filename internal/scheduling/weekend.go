package scheduling

import "time"

type weekdayPair struct {
	a, b time.Weekday
}

var (
	oneDayApart = map[weekdayPair]bool{
		{time.Friday, time.Saturday}: true,
		{time.Saturday, time.Friday}: true,
		{time.Saturday, time.Sunday}: true,
		{time.Sunday, time.Saturday}: true,
	}
	twoDaysApart = map[weekdayPair]bool{
		{time.Friday, time.Sunday}: true,
		{time.Sunday, time.Friday}: true,
	}
)

func IsWeekendDay(d time.Weekday) bool {
	return d == time.Friday || d == time.Saturday || d == time.Sunday
}

// ConsecutiveWeekendDays reports whether a and b fall on two different days
// of the same Friday-Sunday weekend, judged by calendar dates in loc.
func ConsecutiveWeekendDays(a, b time.Time, loc *time.Location) bool {
	a, b = a.In(loc), b.In(loc)
	if !IsWeekendDay(a.Weekday()) || !IsWeekendDay(b.Weekday()) {
		return false
	}

	pair := weekdayPair{a.Weekday(), b.Weekday()}
	switch calendarDaysApart(a, b) {
	case 1:
		return oneDayApart[pair]
	case 2:
		return twoDaysApart[pair]
	default:
		return false
	}
}

func calendarDaysApart(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	// UTC midnights keep DST shifts out of the day count
	da := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	db := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)

	days := int(db.Sub(da).Hours() / 24)
	if days < 0 {
		days = -days
	}
	return days
}
