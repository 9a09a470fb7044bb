package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/Oliejik/T-No-Posto/internal/domain"
	"github.com/Oliejik/T-No-Posto/internal/domain/repository"
	"github.com/Oliejik/T-No-Posto/internal/pkg/errors"
)

type notificationRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewNotificationRepository(db *DB) repository.NotificationRepository {
	return &notificationRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *notificationRepository) Create(ctx context.Context, notification *domain.AppNotification) error {
	query := `
		INSERT INTO notifications (id, title, message, audience, reach, sent_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		notification.ID, notification.Title, notification.Message,
		notification.Audience, notification.Reach, notification.SentAt, notification.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to insert notification", zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *notificationRepository) List(ctx context.Context, limit, offset int) ([]*domain.AppNotification, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM notifications`); err != nil {
		r.logger.Error("Failed to count notifications", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	query := `
		SELECT id, title, message, audience, reach, sent_at, created_at
		FROM notifications
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	var notifications []*domain.AppNotification
	if err := r.db.SelectContext(ctx, &notifications, query, limit, offset); err != nil {
		r.logger.Error("Failed to list notifications", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}
	if notifications == nil {
		notifications = []*domain.AppNotification{}
	}
	return notifications, total, nil
}
