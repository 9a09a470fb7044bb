package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Oliejik/T-No-Posto/internal/delivery/http/middleware"
	"github.com/Oliejik/T-No-Posto/internal/pkg/errors"
	"github.com/Oliejik/T-No-Posto/internal/pkg/utils"
	"github.com/Oliejik/T-No-Posto/internal/pkg/validator"
	"github.com/Oliejik/T-No-Posto/internal/usecase"
	"github.com/Oliejik/T-No-Posto/internal/usecase/dto"
)

type PriceHandler struct {
	priceUseCase *usecase.PriceUseCase
	logger       *zap.Logger
}

func NewPriceHandler(priceUseCase *usecase.PriceUseCase, logger *zap.Logger) *PriceHandler {
	return &PriceHandler{
		priceUseCase: priceUseCase,
		logger:       logger,
	}
}

// Submit godoc
// @Summary Report a fuel price
// @Description Records a crowdsourced price; the previous report is replaced
// @Tags prices
// @Accept json
// @Produce json
// @Param id path string true "Station ID"
// @Param request body dto.SubmitPriceRequest true "Price report"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/stations/{id}/prices [post]
func (h *PriceHandler) Submit(c *fiber.Ctx) error {
	stationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	var req dto.SubmitPriceRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	station, err := h.priceUseCase.Submit(c.Context(), middleware.UserID(c), stationID, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.ConvertStation(station), nil)
}

// Confirm godoc
// @Summary Confirm a posted price
// @Description Increments the confirmation counter for a station's fuel price
// @Tags prices
// @Produce json
// @Param id path string true "Station ID"
// @Param fuel path string true "Fuel slug"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/stations/{id}/prices/{fuel}/confirm [post]
func (h *PriceHandler) Confirm(c *fiber.Ctx) error {
	stationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	count, err := h.priceUseCase.Confirm(c.Context(), stationID, c.Params("fuel"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"confirmations": count}, nil)
}
