package ports

import (
	"context"
	"time"

	"github.com/stpnv0/AmenityBooker/internal/domain"
)

type ReservationRepo interface {
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	ListActiveByAmenity(ctx context.Context, amenityID string, from, to time.Time) ([]*domain.Reservation, error)
	ListActiveByUserAndAmenity(ctx context.Context, userID, amenityID string) ([]*domain.Reservation, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Reservation, error)
	ListOverduePending(ctx context.Context, before time.Time) ([]*domain.Reservation, error)
	// UpdateStatus and Reschedule succeed only while the stored status equals expected.
	UpdateStatus(ctx context.Context, r *domain.Reservation, expected domain.ReservationStatus) error
	Reschedule(ctx context.Context, r *domain.Reservation, expected domain.ReservationStatus) error
}
