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

type FuelTypeUseCase struct {
	fuelRepo repository.FuelTypeRepository
	logger   *zap.Logger
}

func NewFuelTypeUseCase(fuelRepo repository.FuelTypeRepository, logger *zap.Logger) *FuelTypeUseCase {
	return &FuelTypeUseCase{fuelRepo: fuelRepo, logger: logger}
}

func (uc *FuelTypeUseCase) List(ctx context.Context) ([]*domain.FuelTypeRecord, error) {
	return uc.fuelRepo.GetAll(ctx)
}

// Save upserts a fuel type by its slug, letting admins adjust display names.
func (uc *FuelTypeUseCase) Save(ctx context.Context, req dto.SaveFuelTypeRequest) (*domain.FuelTypeRecord, error) {
	fuel := domain.FuelType(req.Name)
	if !fuel.Valid() {
		return nil, errors.ErrUnknownFuelType
	}

	record := &domain.FuelTypeRecord{
		ID:          uuid.New(),
		Name:        fuel,
		DisplayName: req.DisplayName,
		CreatedAt:   time.Now().UTC(),
	}
	if err := uc.fuelRepo.Upsert(ctx, record); err != nil {
		uc.logger.Error("Failed to save fuel type", zap.String("name", req.Name), zap.Error(err))
		return nil, err
	}
	return record, nil
}
