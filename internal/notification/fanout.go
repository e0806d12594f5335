package notification

import (
	"context"

	"github.com/stpnv0/AmenityBooker/internal/domain"
)

type reservationNotifier interface {
	NotifyReservationCreated(ctx context.Context, user *domain.User, r *domain.Reservation)
	NotifyReservationStatusChanged(ctx context.Context, user *domain.User, r *domain.Reservation)
}

// Fanout delivers every notification to each of its notifiers in order.
type Fanout struct {
	notifiers []reservationNotifier
}

func NewFanout(notifiers ...reservationNotifier) *Fanout {
	return &Fanout{notifiers: notifiers}
}

func (f *Fanout) NotifyReservationCreated(ctx context.Context, user *domain.User, r *domain.Reservation) {
	for _, n := range f.notifiers {
		n.NotifyReservationCreated(ctx, user, r)
	}
}

func (f *Fanout) NotifyReservationStatusChanged(ctx context.Context, user *domain.User, r *domain.Reservation) {
	for _, n := range f.notifiers {
		n.NotifyReservationStatusChanged(ctx, user, r)
	}
}
