package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/Oliejik/T-No-Posto/internal/domain"
)

type ProfileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	List(ctx context.Context, statuses []domain.ProfileStatus, limit, offset int) ([]*domain.Profile, int, error)
	UpdateName(ctx context.Context, id uuid.UUID, name string) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ProfileStatus) error
	IncrementContributions(ctx context.Context, id uuid.UUID) error
	CountByAudience(ctx context.Context, audience domain.Audience) (int, error)
}
