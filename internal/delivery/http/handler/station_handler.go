package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Oliejik/T-No-Posto/internal/delivery/http/middleware"
	"github.com/Oliejik/T-No-Posto/internal/domain"
	"github.com/Oliejik/T-No-Posto/internal/pkg/errors"
	"github.com/Oliejik/T-No-Posto/internal/pkg/utils"
	"github.com/Oliejik/T-No-Posto/internal/pkg/validator"
	"github.com/Oliejik/T-No-Posto/internal/usecase"
	"github.com/Oliejik/T-No-Posto/internal/usecase/dto"
)

type StationHandler struct {
	stationUseCase *usecase.StationUseCase
	logger         *zap.Logger
}

func NewStationHandler(stationUseCase *usecase.StationUseCase, logger *zap.Logger) *StationHandler {
	return &StationHandler{
		stationUseCase: stationUseCase,
		logger:         logger,
	}
}

// List godoc
// @Summary List all stations
// @Description Returns every station, optionally with distances from lat/lng
// @Tags stations
// @Produce json
// @Param lat query number false "Caller latitude"
// @Param lng query number false "Caller longitude"
// @Param fuel query string false "Only stations selling this fuel"
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/stations [get]
func (h *StationHandler) List(c *fiber.Ctx) error {
	var at *domain.Coordinate
	if c.Query("lat") != "" && c.Query("lng") != "" {
		lat, err1 := strconv.ParseFloat(c.Query("lat"), 64)
		lng, err2 := strconv.ParseFloat(c.Query("lng"), 64)
		if err1 != nil || err2 != nil || !utils.ValidateCoordinates(lat, lng) {
			return utils.SendError(c, errors.ErrInvalidCoordinates)
		}
		at = &domain.Coordinate{Lat: lat, Lng: lng}
	}

	fuel := domain.FuelType(c.Query("fuel"))
	if fuel != domain.FuelFilterAll && !fuel.Valid() {
		return utils.SendError(c, errors.ErrUnknownFuelType)
	}

	stations, err := h.stationUseCase.List(c.Context(), middleware.UserID(c), at)
	if err != nil {
		return utils.SendError(c, err)
	}

	if fuel != domain.FuelFilterAll {
		filtered := stations[:0]
		for _, s := range stations {
			if _, ok := s.Prices[fuel]; ok {
				filtered = append(filtered, s)
			}
		}
		stations = filtered
	}

	return utils.SendSuccess(c, dto.StationsResponse{
		Stations: dto.ConvertStations(stations),
	}, &utils.Meta{Total: len(stations)})
}

// Nearby godoc
// @Summary Stations around a point
// @Description Returns stations within radius_km of lat/lng, nearest first
// @Tags stations
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius_km query number false "Search radius in km (default 10)"
// @Param limit query int false "Maximum results (default 100)"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/stations/nearby [get]
func (h *StationHandler) Nearby(c *fiber.Ctx) error {
	var req dto.NearbyStationsRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	stations, err := h.stationUseCase.Nearby(c.Context(), middleware.UserID(c), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.StationsResponse{
		Stations: dto.ConvertStations(stations),
	}, &utils.Meta{Total: len(stations)})
}

// GetByID godoc
// @Summary Station details
// @Tags stations
// @Produce json
// @Param id path string true "Station ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/stations/{id} [get]
func (h *StationHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	station, err := h.stationUseCase.GetByID(c.Context(), middleware.UserID(c), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.ConvertStation(station), nil)
}

// Create godoc
// @Summary Create a station
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.SaveStationRequest true "Station data"
// @Success 200 {object} utils.SuccessResponse
// @Security BearerAuth
// @Router /api/v1/admin/stations [post]
func (h *StationHandler) Create(c *fiber.Ctx) error {
	var req dto.SaveStationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	station, err := h.stationUseCase.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.ConvertStation(station), nil)
}

// Update godoc
// @Summary Update a station
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Station ID"
// @Param request body dto.SaveStationRequest true "Station data"
// @Success 200 {object} utils.SuccessResponse
// @Security BearerAuth
// @Router /api/v1/admin/stations/{id} [put]
func (h *StationHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	var req dto.SaveStationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	station, err := h.stationUseCase.Update(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.ConvertStation(station), nil)
}

// Delete godoc
// @Summary Delete a station
// @Tags admin
// @Param id path string true "Station ID"
// @Success 200 {object} utils.SuccessResponse
// @Security BearerAuth
// @Router /api/v1/admin/stations/{id} [delete]
func (h *StationHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := h.stationUseCase.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"deleted": id.String()}, nil)
}
