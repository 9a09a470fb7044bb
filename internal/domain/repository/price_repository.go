package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/Oliejik/T-No-Posto/internal/domain"
)

// PriceRepository owns the station_prices table. Upsert overwrites the
// record wholesale (latest report wins, no history).
type PriceRepository interface {
	Upsert(ctx context.Context, stationID uuid.UUID, fuel domain.FuelType, record domain.PriceRecord) error
	Confirm(ctx context.Context, stationID uuid.UUID, fuel domain.FuelType) (int, error)
}
