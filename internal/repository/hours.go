package repository

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/stpnv0/AmenityBooker/internal/domain"
)

// Amenity rows written by older tooling use several names for the same
// operating-hours fields. They are folded into domain.OperatingHours here so
// the scheduling code only ever sees one shape.
var (
	openKeys  = []string{"open", "openTime", "start", "startTime"}
	closeKeys = []string{"close", "closeTime", "end", "endTime"}
	dayKeys   = []string{"days", "daysOfWeek", "weekdays"}
)

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday, "sunday": time.Sunday,
	"mon": time.Monday, "monday": time.Monday,
	"tue": time.Tuesday, "tuesday": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday,
	"thu": time.Thursday, "thursday": time.Thursday,
	"fri": time.Friday, "friday": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday,
}

type hoursRecord struct {
	Days  []int  `json:"days"`
	Open  string `json:"open"`
	Close string `json:"close"`
}

func encodeOperatingHours(h domain.OperatingHours) ([]byte, error) {
	rec := hoursRecord{
		Days:  make([]int, 0, len(h.Days)),
		Open:  h.Open.String(),
		Close: h.Close.String(),
	}
	for _, d := range h.Days {
		rec.Days = append(rec.Days, int(d))
	}
	return json.Marshal(rec)
}

// decodeOperatingHours never fails: unreadable fields come back as
// domain.InvalidTime or an empty day list and are replaced with defaults
// (and reported) when the hours are used.
func decodeOperatingHours(raw []byte) domain.OperatingHours {
	h := domain.OperatingHours{Open: domain.InvalidTime, Close: domain.InvalidTime}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return h
	}

	h.Open = firstTimeOfDay(fields, openKeys)
	h.Close = firstTimeOfDay(fields, closeKeys)
	h.Days = firstWeekdays(fields, dayKeys)
	return h
}

func firstTimeOfDay(fields map[string]json.RawMessage, keys []string) domain.TimeOfDay {
	for _, k := range keys {
		raw, ok := fields[k]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			continue
		}
		if t, err := domain.ParseTimeOfDay(strings.TrimSpace(s)); err == nil {
			return t
		}
	}
	return domain.InvalidTime
}

func firstWeekdays(fields map[string]json.RawMessage, keys []string) []time.Weekday {
	for _, k := range keys {
		raw, ok := fields[k]
		if !ok {
			continue
		}

		var nums []int
		if err := json.Unmarshal(raw, &nums); err == nil {
			days := make([]time.Weekday, 0, len(nums))
			for _, n := range nums {
				if n >= 0 && n <= 6 {
					days = append(days, time.Weekday(n))
				}
			}
			return days
		}

		var names []string
		if err := json.Unmarshal(raw, &names); err == nil {
			days := make([]time.Weekday, 0, len(names))
			for _, n := range names {
				if d, ok := weekdayNames[strings.ToLower(strings.TrimSpace(n))]; ok {
					days = append(days, d)
				}
			}
			return days
		}
	}
	return nil
}
