package domain

import (
	"fmt"
	"time"
)

type AmenityCategory string

const (
	CategoryHotTub  AmenityCategory = "hot_tub"
	CategoryColdTub AmenityCategory = "cold_tub"
	CategoryDeck    AmenityCategory = "deck"
	CategoryLounge  AmenityCategory = "lounge"
)

// TimeOfDay is a wall-clock time expressed in minutes after midnight.
// Negative values mark a field that could not be read from storage.
type TimeOfDay int

const (
	MinutesPerDay            = 24 * 60
	InvalidTime    TimeOfDay = -1
	DefaultOpen    TimeOfDay = 6 * 60
	DefaultClose   TimeOfDay = 22 * 60
	timeOfDayShape           = "15:04"
)

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse(timeOfDayShape, s)
	if err != nil {
		return InvalidTime, fmt.Errorf("%w: time %q must be HH:MM", ErrValidation, s)
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

func (t TimeOfDay) Valid() bool {
	return t >= 0 && t <= MinutesPerDay
}

func (t TimeOfDay) String() string {
	if !t.Valid() {
		return "invalid"
	}
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// On returns the instant at this wall-clock time on the calendar day of date.
func (t TimeOfDay) On(date time.Time) time.Time {
	y, m, d := date.Date()
	// по настенным часам, иначе в дни перевода часов окно съезжает на час
	return time.Date(y, m, d, int(t)/60, int(t)%60, 0, 0, date.Location())
}

type OperatingHours struct {
	Days  []time.Weekday `json:"days"`
	Open  TimeOfDay      `json:"open"`
	Close TimeOfDay      `json:"close"`
}

func (h OperatingHours) OpenOn(day time.Weekday) bool {
	for _, d := range h.Days {
		if d == day {
			return true
		}
	}
	return false
}

// Effective substitutes safe defaults for malformed fields and reports each
// substitution. Slot display and booking validation both run on the result.
func (h OperatingHours) Effective() (OperatingHours, []string) {
	var problems []string
	out := OperatingHours{Open: h.Open, Close: h.Close}

	for _, d := range h.Days {
		if d >= time.Sunday && d <= time.Saturday {
			out.Days = append(out.Days, d)
		}
	}
	if len(out.Days) == 0 {
		problems = append(problems, "operating days missing, assuming every day")
		out.Days = AllWeekdays()
	}

	if !h.Open.Valid() || !h.Close.Valid() || h.Close <= h.Open {
		problems = append(problems, fmt.Sprintf(
			"operating window %s-%s is malformed, assuming %s-%s",
			h.Open, h.Close, DefaultOpen, DefaultClose,
		))
		out.Open, out.Close = DefaultOpen, DefaultClose
	}

	return out, problems
}

func AllWeekdays() []time.Weekday {
	return []time.Weekday{
		time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
		time.Thursday, time.Friday, time.Saturday,
	}
}

type AutoApprovalRules struct {
	MaxDurationMinutes int `json:"max_duration_minutes"`
	MaxBookingsPerDay  int `json:"max_bookings_per_day"`
}

type SpecialRequirements struct {
	MaxVisitors         int `json:"max_visitors"`
	AdvanceBookingHours int `json:"advance_booking_hours"`
}

type Amenity struct {
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	Description      string              `json:"description"`
	Category         AmenityCategory     `json:"category"`
	Capacity         int                 `json:"capacity"`
	Hours            OperatingHours      `json:"operating_hours"`
	AutoApproval     *AutoApprovalRules  `json:"auto_approval,omitempty"`
	RequiresApproval *bool               `json:"requires_approval,omitempty"`
	Requirements     SpecialRequirements `json:"special_requirements"`
	Active           bool                `json:"active"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

func (a *Amenity) IsLounge() bool {
	return a.Category == CategoryLounge
}

type AmenityInput struct {
	Name                string          `validate:"required,max=100"`
	Description         string          `validate:"max=1000"`
	Category            AmenityCategory `validate:"required,oneof=hot_tub cold_tub deck lounge"`
	Capacity            int             `validate:"required,gt=0"`
	Days                []time.Weekday  `validate:"required,min=1,dive,min=0,max=6"`
	Open                string          `validate:"required"`
	Close               string          `validate:"required"`
	MaxDurationMinutes  int             `validate:"min=0"`
	MaxBookingsPerDay   int             `validate:"min=0"`
	MaxVisitors         int             `validate:"min=0"`
	AdvanceBookingHours int             `validate:"min=0"`
	RequiresApproval    *bool
	Active              *bool
}
