package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Oliejik/T-No-Posto/internal/domain"
	apperrors "github.com/Oliejik/T-No-Posto/internal/pkg/errors"
	"github.com/Oliejik/T-No-Posto/internal/usecase"
	"github.com/Oliejik/T-No-Posto/internal/usecase/dto"
)

func newPriceUseCase(
	priceRepo *MockPriceRepository,
	stationRepo *MockStationRepository,
	streamRepo *MockStreamRepository,
	cacheRepo *MockCacheRepository,
) *usecase.PriceUseCase {
	return usecase.NewPriceUseCase(priceRepo, stationRepo, streamRepo, cacheRepo, zap.NewNop())
}

func TestPriceUseCase_SubmitPersistsAndPublishes(t *testing.T) {
	userID := uuid.New()
	st := testStation(uuid.New(), -8.286, -35.035)

	priceRepo := new(MockPriceRepository)
	stationRepo := new(MockStationRepository)
	streamRepo := new(MockStreamRepository)
	cacheRepo := new(MockCacheRepository)

	stationRepo.On("GetByID", mock.Anything, st.ID).Return(st, nil)
	priceRepo.On("Upsert", mock.Anything, st.ID, domain.FuelEtanol,
		mock.MatchedBy(func(r domain.PriceRecord) bool {
			return r.Value == 3.49 && r.UpdatedBy == userID && r.Confirmations == 0
		})).Return(nil)
	cacheRepo.On("DeleteByPrefix", mock.Anything, "stations:").Return(nil)
	streamRepo.On("Publish", mock.Anything, domain.StreamPriceUpdated,
		mock.MatchedBy(func(e domain.PriceUpdatedEvent) bool {
			return e.StationID == st.ID && e.FuelType == domain.FuelEtanol && e.Value == 3.49
		})).Return(nil)

	uc := newPriceUseCase(priceRepo, stationRepo, streamRepo, cacheRepo)
	station, err := uc.Submit(context.Background(), userID, st.ID, dto.SubmitPriceRequest{
		Fuel: "etanol", Value: 3.49,
	})

	require.NoError(t, err)
	assert.Equal(t, st.ID, station.ID)
	priceRepo.AssertExpectations(t)
	streamRepo.AssertExpectations(t)
	cacheRepo.AssertExpectations(t)
}

func TestPriceUseCase_SubmitRejectsBadInput(t *testing.T) {
	uc := newPriceUseCase(
		new(MockPriceRepository), new(MockStationRepository),
		new(MockStreamRepository), new(MockCacheRepository))

	_, err := uc.Submit(context.Background(), uuid.New(), uuid.New(), dto.SubmitPriceRequest{
		Fuel: "querosene", Value: 3.49,
	})
	assert.ErrorIs(t, err, apperrors.ErrUnknownFuelType)

	_, err = uc.Submit(context.Background(), uuid.New(), uuid.New(), dto.SubmitPriceRequest{
		Fuel: "etanol", Value: 0,
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidPrice)
}

func TestPriceUseCase_SubmitUnknownStation(t *testing.T) {
	stationRepo := new(MockStationRepository)
	stationRepo.On("GetByID", mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrStationNotFound)

	uc := newPriceUseCase(
		new(MockPriceRepository), stationRepo,
		new(MockStreamRepository), new(MockCacheRepository))

	_, err := uc.Submit(context.Background(), uuid.New(), uuid.New(), dto.SubmitPriceRequest{
		Fuel: "etanol", Value: 3.49,
	})
	assert.ErrorIs(t, err, apperrors.ErrStationNotFound)
}

func TestPriceUseCase_SubmitToleratesStreamFailure(t *testing.T) {
	st := testStation(uuid.New(), -8.286, -35.035)

	priceRepo := new(MockPriceRepository)
	stationRepo := new(MockStationRepository)
	streamRepo := new(MockStreamRepository)
	cacheRepo := new(MockCacheRepository)

	stationRepo.On("GetByID", mock.Anything, st.ID).Return(st, nil)
	priceRepo.On("Upsert", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	cacheRepo.On("DeleteByPrefix", mock.Anything, mock.Anything).Return(nil)
	streamRepo.On("Publish", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("redis down"))

	uc := newPriceUseCase(priceRepo, stationRepo, streamRepo, cacheRepo)
	_, err := uc.Submit(context.Background(), uuid.New(), st.ID, dto.SubmitPriceRequest{
		Fuel: "etanol", Value: 3.49,
	})

	assert.NoError(t, err, "the price is saved even when the event cannot be published")
}

func TestPriceUseCase_Confirm(t *testing.T) {
	stationID := uuid.New()
	priceRepo := new(MockPriceRepository)
	priceRepo.On("Confirm", mock.Anything, stationID, domain.FuelDieselS10).Return(4, nil)

	uc := newPriceUseCase(
		priceRepo, new(MockStationRepository),
		new(MockStreamRepository), new(MockCacheRepository))

	count, err := uc.Confirm(context.Background(), stationID, "diesel_s10")
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	_, err = uc.Confirm(context.Background(), stationID, "lenha")
	assert.ErrorIs(t, err, apperrors.ErrUnknownFuelType)
}
