package usecase

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/Oliejik/T-No-Posto/internal/domain"
	"github.com/Oliejik/T-No-Posto/internal/domain/repository"
)

const statsCacheKey = "stats:dashboard"

// StatsUseCase serves the admin dashboard counters with a short cache in
// front of the aggregate queries.
type StatsUseCase struct {
	statsRepo repository.StatsRepository
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
	cacheTTL  time.Duration
}

func NewStatsUseCase(
	statsRepo repository.StatsRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *StatsUseCase {
	return &StatsUseCase{
		statsRepo: statsRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

func (uc *StatsUseCase) Dashboard(ctx context.Context) (*domain.Statistics, error) {
	if cached, err := uc.cacheRepo.Get(ctx, statsCacheKey); err == nil && cached != nil {
		var stats domain.Statistics
		if err := json.Unmarshal(cached, &stats); err == nil {
			return &stats, nil
		}
	}

	stats, err := uc.statsRepo.GetStatistics(ctx)
	if err != nil {
		uc.logger.Error("Failed to load dashboard statistics", zap.Error(err))
		return nil, err
	}

	if data, err := json.Marshal(stats); err == nil {
		if err := uc.cacheRepo.Set(ctx, statsCacheKey, data, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache statistics", zap.Error(err))
		}
	}

	return stats, nil
}
