package ports

import (
	"context"

	"github.com/stpnv0/AmenityBooker/internal/domain"
)

type AmenityRepo interface {
	Create(ctx context.Context, a *domain.Amenity) error
	Update(ctx context.Context, a *domain.Amenity) error
	GetByID(ctx context.Context, id string) (*domain.Amenity, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.Amenity, error)
}

// AmenityCatalog is the read path used while booking. It may be served from cache.
type AmenityCatalog interface {
	GetByID(ctx context.Context, id string) (*domain.Amenity, error)
	Invalidate(ctx context.Context, id string)
}
