package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Oliejik/T-No-Posto/internal/domain"
	"github.com/Oliejik/T-No-Posto/internal/domain/repository"
)

type FavoriteUseCase struct {
	favoriteRepo repository.FavoriteRepository
	stationRepo  repository.StationRepository
	logger       *zap.Logger
}

func NewFavoriteUseCase(
	favoriteRepo repository.FavoriteRepository,
	stationRepo repository.StationRepository,
	logger *zap.Logger,
) *FavoriteUseCase {
	return &FavoriteUseCase{
		favoriteRepo: favoriteRepo,
		stationRepo:  stationRepo,
		logger:       logger,
	}
}

// List returns the user's favorite stations with the favorite flag set.
func (uc *FavoriteUseCase) List(ctx context.Context, userID uuid.UUID) ([]*domain.Station, error) {
	ids, err := uc.favoriteRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*domain.Station{}, nil
	}

	stations, err := uc.stationRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, s := range stations {
		s.IsFavorite = true
	}
	return stations, nil
}

func (uc *FavoriteUseCase) Add(ctx context.Context, userID, stationID uuid.UUID) error {
	if _, err := uc.stationRepo.GetByID(ctx, stationID); err != nil {
		return err
	}
	return uc.favoriteRepo.Add(ctx, userID, stationID)
}

func (uc *FavoriteUseCase) Remove(ctx context.Context, userID, stationID uuid.UUID) error {
	return uc.favoriteRepo.Remove(ctx, userID, stationID)
}
