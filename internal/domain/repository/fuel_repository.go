package repository

import (
	"context"

	"github.com/Oliejik/T-No-Posto/internal/domain"
)

type FuelTypeRepository interface {
	GetAll(ctx context.Context) ([]*domain.FuelTypeRecord, error)
	Upsert(ctx context.Context, record *domain.FuelTypeRecord) error
}
