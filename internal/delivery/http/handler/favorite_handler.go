package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Oliejik/T-No-Posto/internal/delivery/http/middleware"
	"github.com/Oliejik/T-No-Posto/internal/pkg/errors"
	"github.com/Oliejik/T-No-Posto/internal/pkg/utils"
	"github.com/Oliejik/T-No-Posto/internal/usecase"
	"github.com/Oliejik/T-No-Posto/internal/usecase/dto"
)

type FavoriteHandler struct {
	favoriteUseCase *usecase.FavoriteUseCase
	logger          *zap.Logger
}

func NewFavoriteHandler(favoriteUseCase *usecase.FavoriteUseCase, logger *zap.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUseCase: favoriteUseCase,
		logger:          logger,
	}
}

// List godoc
// @Summary List favorite stations
// @Tags favorites
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Security BearerAuth
// @Router /api/v1/favorites [get]
func (h *FavoriteHandler) List(c *fiber.Ctx) error {
	stations, err := h.favoriteUseCase.List(c.Context(), middleware.UserID(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.StationsResponse{
		Stations: dto.ConvertStations(stations),
	}, &utils.Meta{Total: len(stations)})
}

// Add godoc
// @Summary Favorite a station
// @Tags favorites
// @Param id path string true "Station ID"
// @Success 200 {object} utils.SuccessResponse
// @Security BearerAuth
// @Router /api/v1/favorites/{id} [put]
func (h *FavoriteHandler) Add(c *fiber.Ctx) error {
	stationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := h.favoriteUseCase.Add(c.Context(), middleware.UserID(c), stationID); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"favorited": stationID.String()}, nil)
}

// Remove godoc
// @Summary Unfavorite a station
// @Tags favorites
// @Param id path string true "Station ID"
// @Success 200 {object} utils.SuccessResponse
// @Security BearerAuth
// @Router /api/v1/favorites/{id} [delete]
func (h *FavoriteHandler) Remove(c *fiber.Ctx) error {
	stationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := h.favoriteUseCase.Remove(c.Context(), middleware.UserID(c), stationID); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"unfavorited": stationID.String()}, nil)
}
