package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/Oliejik/T-No-Posto/internal/domain"
	"github.com/Oliejik/T-No-Posto/internal/domain/repository"
	"github.com/Oliejik/T-No-Posto/internal/pkg/errors"
)

type priceRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewPriceRepository(db *DB) repository.PriceRepository {
	return &priceRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// Upsert writes the latest report for (station, fuel). A new report resets
// the confirmation counter.
func (r *priceRepository) Upsert(ctx context.Context, stationID uuid.UUID, fuel domain.FuelType, record domain.PriceRecord) error {
	query := `
		INSERT INTO station_prices (station_id, fuel_type_id, value, updated_at, updated_by, confirmations)
		SELECT $1, f.id, $3, $4, $5, 0
		FROM fuel_types f
		WHERE f.name = $2
		ON CONFLICT (station_id, fuel_type_id) DO UPDATE
		SET value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at,
			updated_by = EXCLUDED.updated_by,
			confirmations = 0
	`

	result, err := r.db.ExecContext(ctx, query,
		stationID, fuel, record.Value, record.UpdatedAt, record.UpdatedBy,
	)
	if err != nil {
		r.logger.Error("Failed to upsert price",
			zap.String("station_id", stationID.String()),
			zap.String("fuel", string(fuel)),
			zap.Error(err))
		return errors.ErrDatabaseError
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		// Fuel slug missing from the taxonomy table.
		return errors.ErrUnknownFuelType
	}
	return nil
}

// Confirm bumps the confirmation counter and returns the new value.
func (r *priceRepository) Confirm(ctx context.Context, stationID uuid.UUID, fuel domain.FuelType) (int, error) {
	query := `
		UPDATE station_prices p
		SET confirmations = p.confirmations + 1
		FROM fuel_types f
		WHERE f.id = p.fuel_type_id
		  AND p.station_id = $1
		  AND f.name = $2
		RETURNING p.confirmations
	`

	var count int
	err := r.db.QueryRowContext(ctx, query, stationID, fuel).Scan(&count)
	if err == sql.ErrNoRows {
		return 0, errors.ErrNoPriceData
	}
	if err != nil {
		r.logger.Error("Failed to confirm price",
			zap.String("station_id", stationID.String()),
			zap.String("fuel", string(fuel)),
			zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	return count, nil
}
