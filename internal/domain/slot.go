package domain

import "time"

const ClosedReason = "closed"

type Slot struct {
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	AutoApproved bool      `json:"auto_approved"`
}

type Availability struct {
	AmenityID       string    `json:"amenity_id"`
	Date            time.Time `json:"date"`
	DurationMinutes int       `json:"duration_minutes"`
	Reason          string    `json:"reason,omitempty"`
	Slots           []Slot    `json:"slots"`
}
