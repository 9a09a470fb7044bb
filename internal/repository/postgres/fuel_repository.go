package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/Oliejik/T-No-Posto/internal/domain"
	"github.com/Oliejik/T-No-Posto/internal/domain/repository"
	"github.com/Oliejik/T-No-Posto/internal/pkg/errors"
)

type fuelTypeRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewFuelTypeRepository(db *DB) repository.FuelTypeRepository {
	return &fuelTypeRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *fuelTypeRepository) GetAll(ctx context.Context) ([]*domain.FuelTypeRecord, error) {
	query := `
		SELECT id, name, display_name, created_at
		FROM fuel_types
		ORDER BY display_name
	`

	var records []*domain.FuelTypeRecord
	if err := r.db.SelectContext(ctx, &records, query); err != nil {
		r.logger.Error("Failed to query fuel types", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	if records == nil {
		records = []*domain.FuelTypeRecord{}
	}
	return records, nil
}

// Upsert keys on the slug so repeated saves only touch the display name.
func (r *fuelTypeRepository) Upsert(ctx context.Context, record *domain.FuelTypeRecord) error {
	query := `
		INSERT INTO fuel_types (id, name, display_name, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name) DO UPDATE
		SET display_name = EXCLUDED.display_name
	`

	_, err := r.db.ExecContext(ctx, query,
		record.ID, record.Name, record.DisplayName, record.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to upsert fuel type", zap.String("name", string(record.Name)), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}
