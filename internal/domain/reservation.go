package domain

import "time"

type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusApproved  ReservationStatus = "approved"
	StatusDenied    ReservationStatus = "denied"
	StatusCancelled ReservationStatus = "cancelled"
)

// ActiveStatuses hold an amenity's time; no two active reservations of one
// amenity may overlap.
var ActiveStatuses = []ReservationStatus{StatusPending, StatusApproved}

func (s ReservationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusDenied, StatusCancelled:
		return true
	}
	return false
}

func (s ReservationStatus) Active() bool {
	return s == StatusPending || s == StatusApproved
}

type SpecialRequests struct {
	VisitorCount int    `json:"visitor_count"`
	GrillUsage   bool   `json:"grill_usage"`
	Notes        string `json:"notes,omitempty"`
}

type Reservation struct {
	ID              string            `json:"id"`
	UserID          string            `json:"user_id"`
	AmenityID       string            `json:"amenity_id"`
	AmenityName     string            `json:"amenity_name"`
	StartTime       time.Time         `json:"start_time"`
	EndTime         time.Time         `json:"end_time"`
	Status          ReservationStatus `json:"status"`
	StatusReason    string            `json:"status_reason,omitempty"`
	SpecialRequests *SpecialRequests  `json:"special_requests,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

func (r *Reservation) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

func (r *Reservation) Overlaps(start, end time.Time) bool {
	return Overlaps(r.StartTime, r.EndTime, start, end)
}

type CreateReservationInput struct {
	UserID          string
	AmenityID       string
	StartTime       time.Time
	EndTime         time.Time
	SpecialRequests *SpecialRequests
}

type RescheduleInput struct {
	ReservationID string
	Actor         Actor
	StartTime     time.Time
	EndTime       time.Time
}
