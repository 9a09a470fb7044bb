package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/Oliejik/T-No-Posto/internal/domain"
)

// StationRepository persists stations. Implementations return stations with
// their Prices map populated; Distance and IsFavorite are left to the caller.
type StationRepository interface {
	GetAll(ctx context.Context) ([]*domain.Station, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Station, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Station, error)
	GetWithinRadius(ctx context.Context, lat, lng, radiusKm float64, limit int) ([]*domain.Station, error)
	Create(ctx context.Context, station *domain.Station) error
	Update(ctx context.Context, station *domain.Station) error
	Delete(ctx context.Context, id uuid.UUID) error
}
