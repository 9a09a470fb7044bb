package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/Oliejik/T-No-Posto/internal/domain"
	"github.com/Oliejik/T-No-Posto/internal/domain/repository"
	apperrors "github.com/Oliejik/T-No-Posto/internal/pkg/errors"
	"github.com/Oliejik/T-No-Posto/internal/repository/postgres/testhelpers"
)

type StationRepositoryTestSuite struct {
	suite.Suite
	testDB      *testhelpers.TestDB
	stationRepo repository.StationRepository
	priceRepo   repository.PriceRepository
	ctx         context.Context
}

func (s *StationRepositoryTestSuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	err := testhelpers.ApplyMigrations(s.testDB.DB.DB, "../../../migrations")
	s.NoError(err, "Failed to apply migrations")

	s.stationRepo = testhelpers.NewStationRepositoryForTest(s.testDB.DB, s.testDB.Logger)
	s.priceRepo = testhelpers.NewPriceRepositoryForTest(s.testDB.DB, s.testDB.Logger)
}

func (s *StationRepositoryTestSuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

func (s *StationRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.NoError(s.testDB.Cleanup(s.ctx))
}

func (s *StationRepositoryTestSuite) newStation(name string, lat, lng float64) *domain.Station {
	return &domain.Station{
		ID:          uuid.New(),
		Name:        name,
		Brand:       domain.BrandPetrobras,
		Address:     "Av. Principal, 100",
		Coordinates: domain.Coordinate{Lat: lat, Lng: lng},
	}
}

func (s *StationRepositoryTestSuite) TestCreateAndGetByID() {
	station := s.newStation("Posto Central", -8.285816, -35.034964)
	s.NoError(s.stationRepo.Create(s.ctx, station))

	got, err := s.stationRepo.GetByID(s.ctx, station.ID)
	s.NoError(err)
	s.Equal(station.Name, got.Name)
	s.Equal(station.Brand, got.Brand)
	s.InDelta(station.Coordinates.Lat, got.Coordinates.Lat, 1e-9)
	s.Empty(got.Prices)
}

func (s *StationRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := s.stationRepo.GetByID(s.ctx, uuid.New())
	s.ErrorIs(err, apperrors.ErrStationNotFound)
}

func (s *StationRepositoryTestSuite) TestGetWithinRadius() {
	near := s.newStation("Posto Perto", -8.286, -35.035)
	far := s.newStation("Posto Longe", -8.40, -35.20)
	s.NoError(s.stationRepo.Create(s.ctx, near))
	s.NoError(s.stationRepo.Create(s.ctx, far))

	stations, err := s.stationRepo.GetWithinRadius(s.ctx, -8.285816, -35.034964, 5, 50)
	s.NoError(err)
	s.Len(stations, 1)
	s.Equal(near.ID, stations[0].ID)
}

func (s *StationRepositoryTestSuite) TestPricesAttached() {
	station := s.newStation("Posto Com Preco", -8.286, -35.035)
	s.NoError(s.stationRepo.Create(s.ctx, station))

	record := domain.PriceRecord{
		Value:     3.49,
		UpdatedAt: time.Now().UTC(),
		UpdatedBy: uuid.New(),
	}
	s.NoError(s.priceRepo.Upsert(s.ctx, station.ID, domain.FuelEtanol, record))

	got, err := s.stationRepo.GetByID(s.ctx, station.ID)
	s.NoError(err)
	s.Contains(got.Prices, domain.FuelEtanol)
	s.InDelta(3.49, got.Prices[domain.FuelEtanol].Value, 1e-9)
	s.Equal(0, got.Prices[domain.FuelEtanol].Confirmations)
}

func (s *StationRepositoryTestSuite) TestUpsertOverwritesAndResetsConfirmations() {
	station := s.newStation("Posto Atualizado", -8.286, -35.035)
	s.NoError(s.stationRepo.Create(s.ctx, station))

	userID := uuid.New()
	s.NoError(s.priceRepo.Upsert(s.ctx, station.ID, domain.FuelEtanol, domain.PriceRecord{
		Value: 3.49, UpdatedAt: time.Now().UTC(), UpdatedBy: userID,
	}))

	count, err := s.priceRepo.Confirm(s.ctx, station.ID, domain.FuelEtanol)
	s.NoError(err)
	s.Equal(1, count)

	s.NoError(s.priceRepo.Upsert(s.ctx, station.ID, domain.FuelEtanol, domain.PriceRecord{
		Value: 3.19, UpdatedAt: time.Now().UTC(), UpdatedBy: userID,
	}))

	got, err := s.stationRepo.GetByID(s.ctx, station.ID)
	s.NoError(err)
	s.InDelta(3.19, got.Prices[domain.FuelEtanol].Value, 1e-9)
	s.Equal(0, got.Prices[domain.FuelEtanol].Confirmations, "new report resets confirmations")
}

func (s *StationRepositoryTestSuite) TestDeleteCascadesPrices() {
	station := s.newStation("Posto Removido", -8.286, -35.035)
	s.NoError(s.stationRepo.Create(s.ctx, station))
	s.NoError(s.priceRepo.Upsert(s.ctx, station.ID, domain.FuelDieselS10, domain.PriceRecord{
		Value: 6.10, UpdatedAt: time.Now().UTC(), UpdatedBy: uuid.New(),
	}))

	s.NoError(s.stationRepo.Delete(s.ctx, station.ID))

	_, err := s.stationRepo.GetByID(s.ctx, station.ID)
	s.ErrorIs(err, apperrors.ErrStationNotFound)
	s.ErrorIs(s.stationRepo.Delete(s.ctx, station.ID), apperrors.ErrStationNotFound)
}

func TestStationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(StationRepositoryTestSuite))
}
