package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/Oliejik/T-No-Posto/internal/domain"
	"github.com/Oliejik/T-No-Posto/internal/domain/repository"
	"github.com/Oliejik/T-No-Posto/internal/pkg/errors"
)

type stationRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewStationRepository(db *DB) repository.StationRepository {
	return &stationRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

const stationColumns = `s.id, s.name, s.brand, s.address, s.lat, s.lng, s.created_at, s.updated_at`

func (r *stationRepository) GetAll(ctx context.Context) ([]*domain.Station, error) {
	query := `
		SELECT ` + stationColumns + `
		FROM stations s
		ORDER BY s.name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to query stations", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	stations, err := r.scanStations(rows)
	if err != nil {
		return nil, err
	}
	return r.attachPrices(ctx, stations)
}

func (r *stationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Station, error) {
	query := `
		SELECT ` + stationColumns + `
		FROM stations s
		WHERE s.id = $1
	`

	var s domain.Station
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.Brand, &s.Address,
		&s.Coordinates.Lat, &s.Coordinates.Lng,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.ErrStationNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get station", zap.String("id", id.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	stations, err := r.attachPrices(ctx, []*domain.Station{&s})
	if err != nil {
		return nil, err
	}
	return stations[0], nil
}

func (r *stationRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Station, error) {
	if len(ids) == 0 {
		return []*domain.Station{}, nil
	}

	query := `
		SELECT ` + stationColumns + `
		FROM stations s
		WHERE s.id = ANY($1)
		ORDER BY s.name
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(uuidStrings(ids)))
	if err != nil {
		r.logger.Error("Failed to query stations by ids", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	stations, err := r.scanStations(rows)
	if err != nil {
		return nil, err
	}
	return r.attachPrices(ctx, stations)
}

// GetWithinRadius filters with a haversine expression over plain lat/lng
// columns. The station table is small enough that a sequential scan beats
// carrying a PostGIS dependency.
func (r *stationRepository) GetWithinRadius(ctx context.Context, lat, lng, radiusKm float64, limit int) ([]*domain.Station, error) {
	query := `
		WITH measured AS (
			SELECT ` + stationColumns + `,
				6371 * acos(least(1.0,
					cos(radians($1)) * cos(radians(s.lat)) * cos(radians(s.lng) - radians($2))
					+ sin(radians($1)) * sin(radians(s.lat))
				)) AS distance_km
			FROM stations s
		)
		SELECT id, name, brand, address, lat, lng, created_at, updated_at
		FROM measured
		WHERE distance_km <= $3
		ORDER BY distance_km
		LIMIT $4
	`

	rows, err := r.db.QueryContext(ctx, query, lat, lng, radiusKm, limit)
	if err != nil {
		r.logger.Error("Failed to query nearby stations", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	stations, err := r.scanStations(rows)
	if err != nil {
		return nil, err
	}
	return r.attachPrices(ctx, stations)
}

func (r *stationRepository) Create(ctx context.Context, station *domain.Station) error {
	query := `
		INSERT INTO stations (id, name, brand, address, lat, lng, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	`

	_, err := r.db.ExecContext(ctx, query,
		station.ID, station.Name, station.Brand, station.Address,
		station.Coordinates.Lat, station.Coordinates.Lng,
	)
	if err != nil {
		r.logger.Error("Failed to insert station", zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *stationRepository) Update(ctx context.Context, station *domain.Station) error {
	query := `
		UPDATE stations
		SET name = $2, brand = $3, address = $4, lat = $5, lng = $6, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		station.ID, station.Name, station.Brand, station.Address,
		station.Coordinates.Lat, station.Coordinates.Lng,
	)
	if err != nil {
		r.logger.Error("Failed to update station", zap.Error(err))
		return errors.ErrDatabaseError
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return errors.ErrStationNotFound
	}
	return nil
}

func (r *stationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM stations WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete station", zap.String("id", id.String()), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return errors.ErrStationNotFound
	}
	return nil
}

func (r *stationRepository) scanStations(rows *sql.Rows) ([]*domain.Station, error) {
	var stations []*domain.Station
	for rows.Next() {
		var s domain.Station
		err := rows.Scan(
			&s.ID, &s.Name, &s.Brand, &s.Address,
			&s.Coordinates.Lat, &s.Coordinates.Lng,
			&s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			r.logger.Error("Failed to scan station row", zap.Error(err))
			continue
		}
		stations = append(stations, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.ErrDatabaseError
	}
	if stations == nil {
		stations = []*domain.Station{}
	}
	return stations, nil
}

// attachPrices loads the price records for a station batch in one query and
// folds them into each station's Prices map.
func (r *stationRepository) attachPrices(ctx context.Context, stations []*domain.Station) ([]*domain.Station, error) {
	if len(stations) == 0 {
		return stations, nil
	}

	ids := make([]uuid.UUID, 0, len(stations))
	byID := make(map[uuid.UUID]*domain.Station, len(stations))
	for _, s := range stations {
		if s.Prices == nil {
			s.Prices = map[domain.FuelType]domain.PriceRecord{}
		}
		ids = append(ids, s.ID)
		byID[s.ID] = s
	}

	query := `
		SELECT p.station_id, f.name, p.value, p.updated_at, p.updated_by, p.confirmations
		FROM station_prices p
		JOIN fuel_types f ON f.id = p.fuel_type_id
		WHERE p.station_id = ANY($1)
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(uuidStrings(ids)))
	if err != nil {
		r.logger.Error("Failed to query station prices", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	for rows.Next() {
		var stationID uuid.UUID
		var fuel domain.FuelType
		var record domain.PriceRecord

		err := rows.Scan(&stationID, &fuel, &record.Value, &record.UpdatedAt, &record.UpdatedBy, &record.Confirmations)
		if err != nil {
			r.logger.Error("Failed to scan price row", zap.Error(err))
			continue
		}
		if s, ok := byID[stationID]; ok {
			s.Prices[fuel] = record
		}
	}
	if err := rows.Err(); err != nil {
		return nil, errors.ErrDatabaseError
	}

	return stations, nil
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
