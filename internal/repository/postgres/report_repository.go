package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/Oliejik/T-No-Posto/internal/domain"
	"github.com/Oliejik/T-No-Posto/internal/domain/repository"
	"github.com/Oliejik/T-No-Posto/internal/pkg/errors"
)

type reportRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewReportRepository(db *DB) repository.ReportRepository {
	return &reportRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *reportRepository) Create(ctx context.Context, report *domain.Report) error {
	query := `
		INSERT INTO reports (id, station_id, station_name, reported_by, reason, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		report.ID, report.StationID, report.StationName,
		report.ReportedBy, report.Reason, report.Status, report.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to insert report", zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *reportRepository) List(ctx context.Context, statuses []domain.ReportStatus, limit, offset int) ([]*domain.Report, int, error) {
	filter := make([]string, len(statuses))
	for i, s := range statuses {
		filter[i] = string(s)
	}

	countQuery := `
		SELECT COUNT(*)
		FROM reports
		WHERE cardinality($1::text[]) = 0 OR status = ANY($1)
	`
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, pq.Array(filter)); err != nil {
		r.logger.Error("Failed to count reports", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	query := `
		SELECT id, station_id, station_name, reported_by, reason, status, created_at
		FROM reports
		WHERE cardinality($1::text[]) = 0 OR status = ANY($1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	var reports []*domain.Report
	if err := r.db.SelectContext(ctx, &reports, query, pq.Array(filter), limit, offset); err != nil {
		r.logger.Error("Failed to list reports", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}
	if reports == nil {
		reports = []*domain.Report{}
	}
	return reports, total, nil
}

func (r *reportRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReportStatus) error {
	result, err := r.db.ExecContext(ctx, `UPDATE reports SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		r.logger.Error("Failed to update report status", zap.String("id", id.String()), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return errors.ErrReportNotFound
	}
	return nil
}
