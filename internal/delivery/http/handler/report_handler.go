package handler

import (
	"strings"

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

type ReportHandler struct {
	reportUseCase *usecase.ReportUseCase
	logger        *zap.Logger
}

func NewReportHandler(reportUseCase *usecase.ReportUseCase, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		reportUseCase: reportUseCase,
		logger:        logger,
	}
}

// Create godoc
// @Summary File a report about a station
// @Tags reports
// @Accept json
// @Produce json
// @Param request body dto.CreateReportRequest true "Report"
// @Success 200 {object} utils.SuccessResponse
// @Security BearerAuth
// @Router /api/v1/reports [post]
func (h *ReportHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	report, err := h.reportUseCase.File(c.Context(), middleware.UserID(c), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.ConvertReport(report), nil)
}

// List godoc
// @Summary Moderation queue
// @Tags admin
// @Produce json
// @Param status query string false "Comma-separated statuses (pending,resolved,dismissed)"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} utils.SuccessResponse
// @Security BearerAuth
// @Router /api/v1/admin/reports [get]
func (h *ReportHandler) List(c *fiber.Ctx) error {
	var statuses []string
	if raw := c.Query("status"); raw != "" {
		statuses = strings.Split(raw, ",")
	}

	reports, total, err := h.reportUseCase.List(c.Context(), statuses, c.QueryInt("limit"), c.QueryInt("offset"))
	if err != nil {
		return utils.SendError(c, err)
	}

	out := make([]dto.ReportResponse, 0, len(reports))
	for _, r := range reports {
		out = append(out, dto.ConvertReport(r))
	}
	return utils.SendSuccess(c, out, &utils.Meta{Total: total})
}

// Moderate godoc
// @Summary Resolve or dismiss a report
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Param request body dto.ModerateReportRequest true "Decision"
// @Success 200 {object} utils.SuccessResponse
// @Security BearerAuth
// @Router /api/v1/admin/reports/{id} [put]
func (h *ReportHandler) Moderate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	var req dto.ModerateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := h.reportUseCase.Moderate(c.Context(), id, req); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"id": id.String(), "status": req.Status}, nil)
}
