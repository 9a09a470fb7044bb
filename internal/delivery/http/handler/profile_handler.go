package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Oliejik/T-No-Posto/internal/delivery/http/middleware"
	"github.com/Oliejik/T-No-Posto/internal/pkg/errors"
	"github.com/Oliejik/T-No-Posto/internal/pkg/utils"
	"github.com/Oliejik/T-No-Posto/internal/pkg/validator"
	"github.com/Oliejik/T-No-Posto/internal/usecase"
	"github.com/Oliejik/T-No-Posto/internal/usecase/dto"
)

type ProfileHandler struct {
	profileUseCase *usecase.ProfileUseCase
	logger         *zap.Logger
}

func NewProfileHandler(profileUseCase *usecase.ProfileUseCase, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
		logger:         logger,
	}
}

// Get godoc
// @Summary Current user's profile
// @Tags profile
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Security BearerAuth
// @Router /api/v1/profile [get]
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	profile, err := h.profileUseCase.Get(c.Context(), middleware.UserID(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.ConvertProfile(profile), nil)
}

// Update godoc
// @Summary Update display name
// @Tags profile
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Profile changes"
// @Success 200 {object} utils.SuccessResponse
// @Security BearerAuth
// @Router /api/v1/profile [put]
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	profile, err := h.profileUseCase.UpdateName(c.Context(), middleware.UserID(c), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.ConvertProfile(profile), nil)
}
