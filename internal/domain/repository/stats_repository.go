package repository

import (
	"context"

	"github.com/Oliejik/T-No-Posto/internal/domain"
)

type StatsRepository interface {
	GetStatistics(ctx context.Context) (*domain.Statistics, error)
}
