package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Oliejik/T-No-Posto/internal/pkg/errors"
	"github.com/Oliejik/T-No-Posto/internal/pkg/utils"
	"github.com/Oliejik/T-No-Posto/internal/pkg/validator"
	"github.com/Oliejik/T-No-Posto/internal/usecase"
	"github.com/Oliejik/T-No-Posto/internal/usecase/dto"
)

type FuelTypeHandler struct {
	fuelTypeUseCase *usecase.FuelTypeUseCase
	logger          *zap.Logger
}

func NewFuelTypeHandler(fuelTypeUseCase *usecase.FuelTypeUseCase, logger *zap.Logger) *FuelTypeHandler {
	return &FuelTypeHandler{
		fuelTypeUseCase: fuelTypeUseCase,
		logger:          logger,
	}
}

// List godoc
// @Summary Fuel taxonomy
// @Tags fuel-types
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/fuel-types [get]
func (h *FuelTypeHandler) List(c *fiber.Ctx) error {
	records, err := h.fuelTypeUseCase.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	out := make([]dto.FuelTypeResponse, 0, len(records))
	for _, r := range records {
		out = append(out, dto.FuelTypeResponse{
			ID:          r.ID.String(),
			Name:        string(r.Name),
			DisplayName: r.DisplayName,
		})
	}
	return utils.SendSuccess(c, out, &utils.Meta{Total: len(out)})
}

// Save godoc
// @Summary Upsert a fuel type label
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.SaveFuelTypeRequest true "Fuel type"
// @Success 200 {object} utils.SuccessResponse
// @Security BearerAuth
// @Router /api/v1/admin/fuel-types [put]
func (h *FuelTypeHandler) Save(c *fiber.Ctx) error {
	var req dto.SaveFuelTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	record, err := h.fuelTypeUseCase.Save(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.FuelTypeResponse{
		ID:          record.ID.String(),
		Name:        string(record.Name),
		DisplayName: record.DisplayName,
	}, nil)
}
