package ports

import (
	"context"

	"github.com/stpnv0/AmenityBooker/internal/domain"
)

type ReservationNotifier interface {
	NotifyReservationCreated(ctx context.Context, user *domain.User, r *domain.Reservation)
	NotifyReservationStatusChanged(ctx context.Context, user *domain.User, r *domain.Reservation)
}
