package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/Oliejik/T-No-Posto/internal/domain"
	"github.com/Oliejik/T-No-Posto/internal/domain/repository"
	"github.com/Oliejik/T-No-Posto/internal/pkg/errors"
)

type statsRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewStatsRepository(db *DB) repository.StatsRepository {
	return &statsRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *statsRepository) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	stats := &domain.Statistics{
		AveragePrices: map[domain.FuelType]float64{},
		LastUpdated:   time.Now().UTC(),
	}

	countsQuery := `
		SELECT
			(SELECT COUNT(*) FROM stations) AS stations,
			(SELECT COUNT(*) FROM profiles) AS users,
			(SELECT COUNT(*) FROM reports WHERE status = 'pending') AS pending_reports
	`
	err := r.db.QueryRowContext(ctx, countsQuery).Scan(
		&stats.Stations, &stats.Users, &stats.PendingReports,
	)
	if err != nil {
		r.logger.Error("Failed to query dashboard counters", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	avgQuery := `
		SELECT f.name, AVG(p.value)
		FROM station_prices p
		JOIN fuel_types f ON f.id = p.fuel_type_id
		GROUP BY f.name
	`
	rows, err := r.db.QueryContext(ctx, avgQuery)
	if err != nil {
		r.logger.Error("Failed to query price averages", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	for rows.Next() {
		var fuel domain.FuelType
		var avg float64
		if err := rows.Scan(&fuel, &avg); err != nil {
			r.logger.Error("Failed to scan price average", zap.Error(err))
			continue
		}
		stats.AveragePrices[fuel] = avg
	}
	if err := rows.Err(); err != nil {
		return nil, errors.ErrDatabaseError
	}

	return stats, nil
}
