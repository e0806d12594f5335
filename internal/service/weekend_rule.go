package service

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/AmenityBooker/internal/domain"
	"github.com/stpnv0/AmenityBooker/internal/scheduling"
	"github.com/wb-go/wbf/logger"
)

type userReservationLister interface {
	ListActiveByUserAndAmenity(ctx context.Context, userID, amenityID string) ([]*domain.Reservation, error)
}

// WeekendRule stops one user from holding a lounge on two adjacent weekend
// days. A failed lookup lets the booking through with a warning.
type WeekendRule struct {
	reservations userReservationLister
	loc          *time.Location
	logger       logger.Logger
}

func NewWeekendRule(reservations userReservationLister, loc *time.Location, logger logger.Logger) *WeekendRule {
	return &WeekendRule{reservations: reservations, loc: loc, logger: logger}
}

// Check ignores the reservation with excludeID so an edited reservation does
// not conflict with its own previous date.
func (w *WeekendRule) Check(ctx context.Context, userID string, amenity *domain.Amenity, start time.Time, excludeID string) error {
	if !amenity.IsLounge() || !scheduling.IsWeekendDay(start.In(w.loc).Weekday()) {
		return nil
	}

	existing, err := w.reservations.ListActiveByUserAndAmenity(ctx, userID, amenity.ID)
	if err != nil {
		w.logger.LogAttrs(ctx, logger.WarnLevel, "weekend rule lookup failed, allowing reservation",
			logger.String("user_id", userID),
			logger.String("amenity_id", amenity.ID),
			logger.String("error", err.Error()),
		)
		return nil
	}

	for _, r := range existing {
		if r.ID == excludeID || !r.Status.Active() {
			continue
		}
		if scheduling.ConsecutiveWeekendDays(start, r.StartTime, w.loc) {
			day := r.StartTime.In(w.loc)
			return fmt.Errorf("%w: you already have a reservation for %s on %s (%s)",
				domain.ErrConsecutiveWeekend, amenity.Name, day.Weekday(), day.Format(time.DateOnly),
			)
		}
	}

	return nil
}
