package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/stpnv0/AmenityBooker/internal/clock"
	"github.com/stpnv0/AmenityBooker/internal/domain"
	"github.com/stpnv0/AmenityBooker/internal/scheduling"
	"github.com/stpnv0/AmenityBooker/internal/service/ports"
)

type amenityReservationLister interface {
	ListActiveByAmenity(ctx context.Context, amenityID string, from, to time.Time) ([]*domain.Reservation, error)
}

type AvailabilityService struct {
	amenities    ports.AmenityCatalog
	reservations amenityReservationLister
	generator    *scheduling.Generator
	clock        clock.Clock
	policy       Policy
}

func NewAvailabilityService(
	amenities ports.AmenityCatalog,
	reservations amenityReservationLister,
	generator *scheduling.Generator,
	clk clock.Clock,
	policy Policy,
) *AvailabilityService {
	return &AvailabilityService{
		amenities:    amenities,
		reservations: reservations,
		generator:    generator,
		clock:        clk,
		policy:       policy.withDefaults(),
	}
}

// ComputeAvailableSlots lists the free windows of durationMinutes on the
// calendar day of date. Zero selects the default slot length.
func (s *AvailabilityService) ComputeAvailableSlots(
	ctx context.Context,
	amenityID string,
	date time.Time,
	durationMinutes int,
) (*domain.Availability, error) {
	if durationMinutes == 0 {
		durationMinutes = int(scheduling.DefaultSlotDuration / time.Minute)
	}
	duration := time.Duration(durationMinutes) * time.Minute
	if durationMinutes < 0 {
		return nil, fmt.Errorf("%w: duration must be positive", domain.ErrValidation)
	}
	if duration > s.policy.MaxDuration {
		return nil, fmt.Errorf("%w: at most %s", domain.ErrDurationTooLong, s.policy.MaxDuration)
	}

	amenity, err := s.amenities.GetByID(ctx, amenityID)
	if err != nil {
		return nil, fmt.Errorf("get amenity: %w", err)
	}

	y, m, d := date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, s.policy.Location)

	busy, err := s.reservations.ListActiveByAmenity(ctx, amenity.ID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	seq, reason := s.generator.Slots(amenity, day, duration, busy, s.clock.Now())
	slots := slices.Collect(seq)
	if slots == nil {
		slots = []domain.Slot{}
	}

	return &domain.Availability{
		AmenityID:       amenity.ID,
		Date:            day,
		DurationMinutes: durationMinutes,
		Reason:          reason,
		Slots:           slots,
	}, nil
}
