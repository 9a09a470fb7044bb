package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/Oliejik/T-No-Posto/internal/domain"
)

type ReportRepository interface {
	Create(ctx context.Context, report *domain.Report) error
	List(ctx context.Context, statuses []domain.ReportStatus, limit, offset int) ([]*domain.Report, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReportStatus) error
}
