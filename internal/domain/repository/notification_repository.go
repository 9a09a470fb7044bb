package repository

import (
	"context"

	"github.com/Oliejik/T-No-Posto/internal/domain"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *domain.AppNotification) error
	List(ctx context.Context, limit, offset int) ([]*domain.AppNotification, int, error)
}
