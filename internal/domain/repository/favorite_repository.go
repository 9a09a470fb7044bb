package repository

import (
	"context"

	"github.com/google/uuid"
)

type FavoriteRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	Add(ctx context.Context, userID, stationID uuid.UUID) error
	Remove(ctx context.Context, userID, stationID uuid.UUID) error
}
