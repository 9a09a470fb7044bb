package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/Oliejik/T-No-Posto/internal/domain/repository"
	"github.com/Oliejik/T-No-Posto/internal/pkg/errors"
)

type favoriteRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewFavoriteRepository(db *DB) repository.FavoriteRepository {
	return &favoriteRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *favoriteRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT station_id
		FROM user_favorites
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var ids []uuid.UUID
	if err := r.db.SelectContext(ctx, &ids, query, userID); err != nil {
		r.logger.Error("Failed to list favorites", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return ids, nil
}

// Add is idempotent: favoriting twice is not an error.
func (r *favoriteRepository) Add(ctx context.Context, userID, stationID uuid.UUID) error {
	query := `
		INSERT INTO user_favorites (user_id, station_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, station_id) DO NOTHING
	`

	if _, err := r.db.ExecContext(ctx, query, userID, stationID); err != nil {
		r.logger.Error("Failed to add favorite",
			zap.String("user_id", userID.String()),
			zap.String("station_id", stationID.String()),
			zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *favoriteRepository) Remove(ctx context.Context, userID, stationID uuid.UUID) error {
	query := `DELETE FROM user_favorites WHERE user_id = $1 AND station_id = $2`

	if _, err := r.db.ExecContext(ctx, query, userID, stationID); err != nil {
		r.logger.Error("Failed to remove favorite",
			zap.String("user_id", userID.String()),
			zap.String("station_id", stationID.String()),
			zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}
