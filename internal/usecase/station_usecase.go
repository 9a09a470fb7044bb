package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Oliejik/T-No-Posto/internal/domain"
	"github.com/Oliejik/T-No-Posto/internal/domain/repository"
	"github.com/Oliejik/T-No-Posto/internal/pkg/errors"
	"github.com/Oliejik/T-No-Posto/internal/pkg/utils"
	"github.com/Oliejik/T-No-Posto/internal/usecase/dto"
)

const stationsCachePrefix = "stations:"

// StationUseCase serves station reads for the map and the admin CRUD.
// Favorite flags and distances are derived per caller and never cached.
type StationUseCase struct {
	stationRepo     repository.StationRepository
	favoriteRepo    repository.FavoriteRepository
	cacheRepo       repository.CacheRepository
	geocodeRepo     repository.GeocodeRepository
	logger          *zap.Logger
	cacheTTL        time.Duration
	defaultRadiusKm float64
	defaultLimit    int
}

func NewStationUseCase(
	stationRepo repository.StationRepository,
	favoriteRepo repository.FavoriteRepository,
	cacheRepo repository.CacheRepository,
	geocodeRepo repository.GeocodeRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
	defaultRadiusKm float64,
) *StationUseCase {
	return &StationUseCase{
		stationRepo:     stationRepo,
		favoriteRepo:    favoriteRepo,
		cacheRepo:       cacheRepo,
		geocodeRepo:     geocodeRepo,
		logger:          logger,
		cacheTTL:        cacheTTL,
		defaultRadiusKm: defaultRadiusKm,
		defaultLimit:    100,
	}
}

// List returns every station. When at is set, distances are computed and the
// result is sorted nearest-first; when userID is set, favorite flags are
// annotated.
func (uc *StationUseCase) List(ctx context.Context, userID uuid.UUID, at *domain.Coordinate) ([]*domain.Station, error) {
	stations, err := uc.stationRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("Failed to list stations", zap.Error(err))
		return nil, err
	}

	uc.annotate(ctx, stations, userID, at)
	return stations, nil
}

// Nearby returns stations within the requested radius, nearest first. The
// raw station set is cached per rounded coordinate; favorite flags and exact
// distances are applied per request on top of the cached data.
func (uc *StationUseCase) Nearby(ctx context.Context, userID uuid.UUID, req dto.NearbyStationsRequest) ([]*domain.Station, error) {
	if !utils.ValidateCoordinates(req.Lat, req.Lng) {
		return nil, errors.ErrInvalidCoordinates
	}
	if req.RadiusKm == 0 {
		req.RadiusKm = uc.defaultRadiusKm
	}
	if !utils.ValidateRadius(req.RadiusKm) {
		return nil, errors.ErrInvalidRadius
	}
	if req.Limit == 0 {
		req.Limit = uc.defaultLimit
	}

	stations, err := uc.nearbyCached(ctx, req)
	if err != nil {
		return nil, err
	}

	at := domain.Coordinate{Lat: req.Lat, Lng: req.Lng}
	uc.annotate(ctx, stations, userID, &at)

	sort.SliceStable(stations, func(i, j int) bool {
		if stations[i].Distance == nil || stations[j].Distance == nil {
			return stations[j].Distance == nil
		}
		return *stations[i].Distance < *stations[j].Distance
	})

	return stations, nil
}

func (uc *StationUseCase) nearbyCached(ctx context.Context, req dto.NearbyStationsRequest) ([]*domain.Station, error) {
	// Three decimals (~110 m) keeps the hit rate useful without serving a
	// visibly wrong station set.
	key := fmt.Sprintf("%snearby:%.3f:%.3f:%.1f:%d", stationsCachePrefix, req.Lat, req.Lng, req.RadiusKm, req.Limit)

	if cached, err := uc.cacheRepo.Get(ctx, key); err == nil && cached != nil {
		var stations []*domain.Station
		if err := json.Unmarshal(cached, &stations); err == nil {
			return stations, nil
		}
		uc.logger.Warn("Dropping corrupt cache entry", zap.String("key", key))
	}

	stations, err := uc.stationRepo.GetWithinRadius(ctx, req.Lat, req.Lng, req.RadiusKm, req.Limit)
	if err != nil {
		uc.logger.Error("Failed to query nearby stations", zap.Error(err))
		return nil, err
	}

	if data, err := json.Marshal(stations); err == nil {
		if err := uc.cacheRepo.Set(ctx, key, data, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache nearby stations", zap.Error(err))
		}
	}

	return stations, nil
}

func (uc *StationUseCase) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Station, error) {
	station, err := uc.stationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	uc.annotate(ctx, []*domain.Station{station}, userID, nil)
	return station, nil
}

// FetchStations implements mapview.StationSource: the live map pulls the
// same nearby set a REST client would, around the session's viewport
// position. uuid.Nil means an anonymous session without favorites.
func (uc *StationUseCase) FetchStations(ctx context.Context, userID uuid.UUID, around domain.Coordinate) ([]*domain.Station, error) {
	return uc.Nearby(ctx, userID, dto.NearbyStationsRequest{
		Lat:      around.Lat,
		Lng:      around.Lng,
		RadiusKm: uc.defaultRadiusKm,
	})
}

// Create registers a station from the admin panel. An empty address is
// filled by reverse geocoding the pin position; a geocoder failure degrades
// to an empty address instead of blocking the save.
func (uc *StationUseCase) Create(ctx context.Context, req dto.SaveStationRequest) (*domain.Station, error) {
	if !utils.ValidateCoordinates(req.Lat, req.Lng) {
		return nil, errors.ErrInvalidCoordinates
	}

	station := &domain.Station{
		ID:          uuid.New(),
		Name:        req.Name,
		Brand:       domain.Brand(req.Brand),
		Address:     req.Address,
		Coordinates: domain.Coordinate{Lat: req.Lat, Lng: req.Lng},
		Prices:      map[domain.FuelType]domain.PriceRecord{},
	}
	uc.fillAddress(ctx, station)

	if err := uc.stationRepo.Create(ctx, station); err != nil {
		uc.logger.Error("Failed to create station", zap.Error(err))
		return nil, err
	}

	uc.invalidate(ctx)
	return station, nil
}

func (uc *StationUseCase) Update(ctx context.Context, id uuid.UUID, req dto.SaveStationRequest) (*domain.Station, error) {
	if !utils.ValidateCoordinates(req.Lat, req.Lng) {
		return nil, errors.ErrInvalidCoordinates
	}

	station, err := uc.stationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	station.Name = req.Name
	station.Brand = domain.Brand(req.Brand)
	station.Address = req.Address
	station.Coordinates = domain.Coordinate{Lat: req.Lat, Lng: req.Lng}
	uc.fillAddress(ctx, station)

	if err := uc.stationRepo.Update(ctx, station); err != nil {
		uc.logger.Error("Failed to update station", zap.String("station_id", id.String()), zap.Error(err))
		return nil, err
	}

	uc.invalidate(ctx)
	return station, nil
}

func (uc *StationUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := uc.stationRepo.Delete(ctx, id); err != nil {
		uc.logger.Error("Failed to delete station", zap.String("station_id", id.String()), zap.Error(err))
		return err
	}
	uc.invalidate(ctx)
	return nil
}

func (uc *StationUseCase) fillAddress(ctx context.Context, station *domain.Station) {
	if station.Address != "" || uc.geocodeRepo == nil {
		return
	}
	address, err := uc.geocodeRepo.ReverseGeocode(ctx, station.Coordinates.Lat, station.Coordinates.Lng)
	if err != nil {
		uc.logger.Warn("Reverse geocoding failed, leaving address empty",
			zap.String("station_id", station.ID.String()),
			zap.Error(err))
		return
	}
	station.Address = address
}

// annotate applies the per-caller derived fields: favorite flags for the
// requesting user and distances from the given position.
func (uc *StationUseCase) annotate(ctx context.Context, stations []*domain.Station, userID uuid.UUID, at *domain.Coordinate) {
	if userID != uuid.Nil {
		favorites, err := uc.favoriteRepo.ListByUser(ctx, userID)
		if err != nil {
			uc.logger.Warn("Failed to load favorites", zap.String("user_id", userID.String()), zap.Error(err))
		} else {
			set := make(map[uuid.UUID]struct{}, len(favorites))
			for _, id := range favorites {
				set[id] = struct{}{}
			}
			for _, s := range stations {
				_, s.IsFavorite = set[s.ID]
			}
		}
	}

	if at != nil && at.Valid() {
		for _, s := range stations {
			if !s.Coordinates.Valid() {
				s.Distance = nil
				continue
			}
			d := at.DistanceKm(s.Coordinates)
			s.Distance = &d
		}
	}
}

func (uc *StationUseCase) invalidate(ctx context.Context) {
	if err := uc.cacheRepo.DeleteByPrefix(ctx, stationsCachePrefix); err != nil {
		uc.logger.Warn("Failed to invalidate station cache", zap.Error(err))
	}
}
