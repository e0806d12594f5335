package dto

import (
	"time"

	"github.com/stpnv0/AmenityBooker/internal/domain"
)

type OperatingHoursRequest struct {
	Days  []int  `json:"days"`
	Open  string `json:"open"`
	Close string `json:"close"`
}

type AutoApprovalRequest struct {
	MaxDurationMinutes int `json:"max_duration_minutes"`
	MaxBookingsPerDay  int `json:"max_bookings_per_day"`
}

type SpecialRequirementsRequest struct {
	MaxVisitors         int `json:"max_visitors"`
	AdvanceBookingHours int `json:"advance_booking_hours"`
}

type AmenityRequest struct {
	Name                string                     `json:"name" binding:"required"`
	Description         string                     `json:"description"`
	Category            string                     `json:"category" binding:"required"`
	Capacity            int                        `json:"capacity" binding:"required,gt=0"`
	OperatingHours      OperatingHoursRequest      `json:"operating_hours"`
	AutoApproval        *AutoApprovalRequest       `json:"auto_approval"`
	RequiresApproval    *bool                      `json:"requires_approval"`
	SpecialRequirements SpecialRequirementsRequest `json:"special_requirements"`
	Active              *bool                      `json:"active"`
}

func (r AmenityRequest) ToInput() domain.AmenityInput {
	days := make([]time.Weekday, 0, len(r.OperatingHours.Days))
	for _, d := range r.OperatingHours.Days {
		days = append(days, time.Weekday(d))
	}

	in := domain.AmenityInput{
		Name:                r.Name,
		Description:         r.Description,
		Category:            domain.AmenityCategory(r.Category),
		Capacity:            r.Capacity,
		Days:                days,
		Open:                r.OperatingHours.Open,
		Close:               r.OperatingHours.Close,
		MaxVisitors:         r.SpecialRequirements.MaxVisitors,
		AdvanceBookingHours: r.SpecialRequirements.AdvanceBookingHours,
		RequiresApproval:    r.RequiresApproval,
		Active:              r.Active,
	}
	if r.AutoApproval != nil {
		in.MaxDurationMinutes = r.AutoApproval.MaxDurationMinutes
		in.MaxBookingsPerDay = r.AutoApproval.MaxBookingsPerDay
	}
	return in
}

type SpecialRequestsRequest struct {
	VisitorCount int    `json:"visitor_count" binding:"gte=0"`
	GrillUsage   bool   `json:"grill_usage"`
	Notes        string `json:"notes" binding:"max=500"`
}

type CreateReservationRequest struct {
	AmenityID       string                  `json:"amenity_id" binding:"required,uuid"`
	UserID          string                  `json:"user_id" binding:"omitempty,uuid"`
	StartTime       string                  `json:"start_time" binding:"required"`
	EndTime         string                  `json:"end_time" binding:"required"`
	SpecialRequests *SpecialRequestsRequest `json:"special_requests"`
}

func (r *SpecialRequestsRequest) ToDomain() *domain.SpecialRequests {
	if r == nil {
		return nil
	}
	return &domain.SpecialRequests{
		VisitorCount: r.VisitorCount,
		GrillUsage:   r.GrillUsage,
		Notes:        r.Notes,
	}
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=approved denied cancelled"`
	Reason string `json:"reason"`
}

type TimeRangeRequest struct {
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type ClosureRequest struct {
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Reason    string `json:"reason"`
}

type CreateUserRequest struct {
	Username       string `json:"username" binding:"required"`
	Role           string `json:"role" binding:"omitempty,oneof=user admin"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}
