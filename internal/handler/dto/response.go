package dto

import (
	"time"

	"github.com/stpnv0/AmenityBooker/internal/domain"
)

type OperatingHoursResponse struct {
	Days  []int  `json:"days"`
	Open  string `json:"open"`
	Close string `json:"close"`
}

type AutoApprovalResponse struct {
	MaxDurationMinutes int `json:"max_duration_minutes"`
	MaxBookingsPerDay  int `json:"max_bookings_per_day"`
}

type SpecialRequirementsResponse struct {
	MaxVisitors         int `json:"max_visitors"`
	AdvanceBookingHours int `json:"advance_booking_hours"`
}

type AmenityResponse struct {
	ID                  string                      `json:"id"`
	Name                string                      `json:"name"`
	Description         string                      `json:"description"`
	Category            string                      `json:"category"`
	Capacity            int                         `json:"capacity"`
	OperatingHours      OperatingHoursResponse      `json:"operating_hours"`
	AutoApproval        *AutoApprovalResponse       `json:"auto_approval,omitempty"`
	RequiresApproval    *bool                       `json:"requires_approval,omitempty"`
	SpecialRequirements SpecialRequirementsResponse `json:"special_requirements"`
	Active              bool                        `json:"active"`
	CreatedAt           string                      `json:"created_at"`
	UpdatedAt           string                      `json:"updated_at"`
}

type SpecialRequestsResponse struct {
	VisitorCount int    `json:"visitor_count"`
	GrillUsage   bool   `json:"grill_usage"`
	Notes        string `json:"notes,omitempty"`
}

type ReservationResponse struct {
	ID              string                   `json:"id"`
	UserID          string                   `json:"user_id"`
	AmenityID       string                   `json:"amenity_id"`
	AmenityName     string                   `json:"amenity_name"`
	StartTime       string                   `json:"start_time"`
	EndTime         string                   `json:"end_time"`
	Status          string                   `json:"status"`
	StatusReason    string                   `json:"status_reason,omitempty"`
	SpecialRequests *SpecialRequestsResponse `json:"special_requests,omitempty"`
	CreatedAt       string                   `json:"created_at"`
	UpdatedAt       string                   `json:"updated_at"`
}

type SlotResponse struct {
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	AutoApproved bool   `json:"auto_approved"`
}

type AvailabilityResponse struct {
	AmenityID       string         `json:"amenity_id"`
	Date            string         `json:"date"`
	DurationMinutes int            `json:"duration_minutes"`
	Reason          string         `json:"reason,omitempty"`
	Slots           []SlotResponse `json:"slots"`
}

type ClosureResponse struct {
	Count        int                   `json:"count"`
	Reservations []ReservationResponse `json:"reservations"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Role           string `json:"role"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToAmenityResponse(a *domain.Amenity) AmenityResponse {
	days := make([]int, 0, len(a.Hours.Days))
	for _, d := range a.Hours.Days {
		days = append(days, int(d))
	}

	resp := AmenityResponse{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Category:    string(a.Category),
		Capacity:    a.Capacity,
		OperatingHours: OperatingHoursResponse{
			Days:  days,
			Open:  a.Hours.Open.String(),
			Close: a.Hours.Close.String(),
		},
		RequiresApproval: a.RequiresApproval,
		SpecialRequirements: SpecialRequirementsResponse{
			MaxVisitors:         a.Requirements.MaxVisitors,
			AdvanceBookingHours: a.Requirements.AdvanceBookingHours,
		},
		Active:    a.Active,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
		UpdatedAt: a.UpdatedAt.Format(time.RFC3339),
	}
	if a.AutoApproval != nil {
		resp.AutoApproval = &AutoApprovalResponse{
			MaxDurationMinutes: a.AutoApproval.MaxDurationMinutes,
			MaxBookingsPerDay:  a.AutoApproval.MaxBookingsPerDay,
		}
	}
	return resp
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	resp := ReservationResponse{
		ID:           r.ID,
		UserID:       r.UserID,
		AmenityID:    r.AmenityID,
		AmenityName:  r.AmenityName,
		StartTime:    r.StartTime.Format(time.RFC3339),
		EndTime:      r.EndTime.Format(time.RFC3339),
		Status:       string(r.Status),
		StatusReason: r.StatusReason,
		CreatedAt:    r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    r.UpdatedAt.Format(time.RFC3339),
	}
	if sr := r.SpecialRequests; sr != nil {
		resp.SpecialRequests = &SpecialRequestsResponse{
			VisitorCount: sr.VisitorCount,
			GrillUsage:   sr.GrillUsage,
			Notes:        sr.Notes,
		}
	}
	return resp
}

func ToReservationResponses(list []*domain.Reservation) []ReservationResponse {
	resp := make([]ReservationResponse, 0, len(list))
	for _, r := range list {
		resp = append(resp, ToReservationResponse(r))
	}
	return resp
}

func ToAvailabilityResponse(a *domain.Availability) AvailabilityResponse {
	slots := make([]SlotResponse, 0, len(a.Slots))
	for _, s := range a.Slots {
		slots = append(slots, SlotResponse{
			StartTime:    s.StartTime.Format(time.RFC3339),
			EndTime:      s.EndTime.Format(time.RFC3339),
			AutoApproved: s.AutoApproved,
		})
	}

	return AvailabilityResponse{
		AmenityID:       a.AmenityID,
		Date:            a.Date.Format(time.DateOnly),
		DurationMinutes: a.DurationMinutes,
		Reason:          a.Reason,
		Slots:           slots,
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		Role:           string(u.Role),
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}
