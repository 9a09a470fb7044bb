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

type profileRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewProfileRepository(db *DB) repository.ProfileRepository {
	return &profileRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

const profileColumns = `id, name, email, role, reputation, contributions, status, created_at`

func (r *profileRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`

	var p domain.Profile
	err := r.db.GetContext(ctx, &p, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrProfileNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get profile", zap.String("id", id.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &p, nil
}

func (r *profileRepository) List(ctx context.Context, statuses []domain.ProfileStatus, limit, offset int) ([]*domain.Profile, int, error) {
	filter := statusStrings(statuses)

	countQuery := `
		SELECT COUNT(*)
		FROM profiles
		WHERE cardinality($1::text[]) = 0 OR status = ANY($1)
	`
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, pq.Array(filter)); err != nil {
		r.logger.Error("Failed to count profiles", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	query := `
		SELECT ` + profileColumns + `
		FROM profiles
		WHERE cardinality($1::text[]) = 0 OR status = ANY($1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	var profiles []*domain.Profile
	if err := r.db.SelectContext(ctx, &profiles, query, pq.Array(filter), limit, offset); err != nil {
		r.logger.Error("Failed to list profiles", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}
	if profiles == nil {
		profiles = []*domain.Profile{}
	}
	return profiles, total, nil
}

func (r *profileRepository) UpdateName(ctx context.Context, id uuid.UUID, name string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE profiles SET name = $2 WHERE id = $1`, id, name)
	if err != nil {
		r.logger.Error("Failed to update profile name", zap.String("id", id.String()), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return errors.ErrProfileNotFound
	}
	return nil
}

func (r *profileRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ProfileStatus) error {
	result, err := r.db.ExecContext(ctx, `UPDATE profiles SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		r.logger.Error("Failed to update profile status", zap.String("id", id.String()), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return errors.ErrProfileNotFound
	}
	return nil
}

func (r *profileRepository) IncrementContributions(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE profiles
		SET contributions = contributions + 1,
			reputation = reputation + 1
		WHERE id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.logger.Error("Failed to increment contributions", zap.String("id", id.String()), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

// CountByAudience sizes a notification audience. "active" means a price
// contribution in the last 30 days.
func (r *profileRepository) CountByAudience(ctx context.Context, audience domain.Audience) (int, error) {
	var query string
	switch audience {
	case domain.AudienceAll:
		query = `SELECT COUNT(*) FROM profiles WHERE status = 'active'`
	case domain.AudienceActive:
		query = `
			SELECT COUNT(DISTINCT p.id)
			FROM profiles p
			JOIN station_prices sp ON sp.updated_by = p.id
			WHERE p.status = 'active'
			  AND sp.updated_at > NOW() - INTERVAL '30 days'
		`
	case domain.AudienceInactive:
		query = `
			SELECT COUNT(*)
			FROM profiles p
			WHERE p.status = 'active'
			  AND NOT EXISTS (
				SELECT 1 FROM station_prices sp
				WHERE sp.updated_by = p.id
				  AND sp.updated_at > NOW() - INTERVAL '30 days'
			  )
		`
	default:
		return 0, errors.ErrInvalidAudience
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query); err != nil {
		r.logger.Error("Failed to count audience", zap.String("audience", string(audience)), zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	return count, nil
}

func statusStrings(statuses []domain.ProfileStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
