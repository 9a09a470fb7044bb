package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Oliejik/T-No-Posto/internal/domain"
	"github.com/Oliejik/T-No-Posto/internal/domain/repository"
	"github.com/Oliejik/T-No-Posto/internal/pkg/errors"
	"github.com/Oliejik/T-No-Posto/internal/usecase/dto"
)

// PriceUseCase handles crowdsourced price reports. A successful submit
// overwrites the previous record, invalidates the station cache and publishes
// an event the contribution worker consumes.
type PriceUseCase struct {
	priceRepo   repository.PriceRepository
	stationRepo repository.StationRepository
	streamRepo  repository.StreamRepository
	cacheRepo   repository.CacheRepository
	logger      *zap.Logger
}

func NewPriceUseCase(
	priceRepo repository.PriceRepository,
	stationRepo repository.StationRepository,
	streamRepo repository.StreamRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
) *PriceUseCase {
	return &PriceUseCase{
		priceRepo:   priceRepo,
		stationRepo: stationRepo,
		streamRepo:  streamRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
	}
}

// Submit records one price report. The report replaces the previous value for
// that station and fuel; confirmations reset to zero.
func (uc *PriceUseCase) Submit(ctx context.Context, userID, stationID uuid.UUID, req dto.SubmitPriceRequest) (*domain.Station, error) {
	fuel := domain.FuelType(req.Fuel)
	if !fuel.Valid() {
		return nil, errors.ErrUnknownFuelType
	}
	if req.Value <= 0 {
		return nil, errors.ErrInvalidPrice
	}

	if _, err := uc.stationRepo.GetByID(ctx, stationID); err != nil {
		return nil, err
	}

	record := domain.PriceRecord{
		Value:     req.Value,
		UpdatedAt: time.Now().UTC(),
		UpdatedBy: userID,
	}
	if err := uc.priceRepo.Upsert(ctx, stationID, fuel, record); err != nil {
		uc.logger.Error("Failed to save price report",
			zap.String("station_id", stationID.String()),
			zap.String("fuel", string(fuel)),
			zap.Error(err))
		return nil, err
	}

	if err := uc.cacheRepo.DeleteByPrefix(ctx, stationsCachePrefix); err != nil {
		uc.logger.Warn("Failed to invalidate station cache", zap.Error(err))
	}

	// Event delivery is best effort: the price is already persisted, a
	// publish failure only delays the contribution counter.
	event := domain.PriceUpdatedEvent{
		StationID: stationID,
		FuelType:  fuel,
		Value:     req.Value,
		UpdatedBy: userID,
		UpdatedAt: record.UpdatedAt,
	}
	if err := uc.streamRepo.Publish(ctx, domain.StreamPriceUpdated, event); err != nil {
		uc.logger.Warn("Failed to publish price event", zap.Error(err))
	}

	uc.logger.Info("Price reported",
		zap.String("station_id", stationID.String()),
		zap.String("fuel", string(fuel)),
		zap.Float64("value", req.Value))

	return uc.stationRepo.GetByID(ctx, stationID)
}

// Confirm bumps the confirmation counter for an existing price record and
// returns the new count.
func (uc *PriceUseCase) Confirm(ctx context.Context, stationID uuid.UUID, fuel string) (int, error) {
	ft := domain.FuelType(fuel)
	if !ft.Valid() {
		return 0, errors.ErrUnknownFuelType
	}

	count, err := uc.priceRepo.Confirm(ctx, stationID, ft)
	if err != nil {
		return 0, err
	}
	return count, nil
}
