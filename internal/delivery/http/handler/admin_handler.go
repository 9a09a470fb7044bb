package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Oliejik/T-No-Posto/internal/pkg/errors"
	"github.com/Oliejik/T-No-Posto/internal/pkg/utils"
	"github.com/Oliejik/T-No-Posto/internal/pkg/validator"
	"github.com/Oliejik/T-No-Posto/internal/usecase"
	"github.com/Oliejik/T-No-Posto/internal/usecase/dto"
)

// AdminHandler groups the dashboard endpoints: user management, statistics
// and notification broadcasts.
type AdminHandler struct {
	profileUseCase      *usecase.ProfileUseCase
	statsUseCase        *usecase.StatsUseCase
	notificationUseCase *usecase.NotificationUseCase
	logger              *zap.Logger
}

func NewAdminHandler(
	profileUseCase *usecase.ProfileUseCase,
	statsUseCase *usecase.StatsUseCase,
	notificationUseCase *usecase.NotificationUseCase,
	logger *zap.Logger,
) *AdminHandler {
	return &AdminHandler{
		profileUseCase:      profileUseCase,
		statsUseCase:        statsUseCase,
		notificationUseCase: notificationUseCase,
		logger:              logger,
	}
}

// ListUsers godoc
// @Summary List users
// @Tags admin
// @Produce json
// @Param status query string false "Comma-separated statuses (active,banned)"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} utils.SuccessResponse
// @Security BearerAuth
// @Router /api/v1/admin/users [get]
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	var statuses []string
	if raw := c.Query("status"); raw != "" {
		statuses = strings.Split(raw, ",")
	}

	profiles, total, err := h.profileUseCase.List(c.Context(), statuses, c.QueryInt("limit"), c.QueryInt("offset"))
	if err != nil {
		return utils.SendError(c, err)
	}

	out := make([]dto.ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, dto.ConvertProfile(p))
	}
	return utils.SendSuccess(c, out, &utils.Meta{Total: total})
}

// UpdateUserStatus godoc
// @Summary Ban or reinstate a user
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body dto.UpdateUserStatusRequest true "New status"
// @Success 200 {object} utils.SuccessResponse
// @Security BearerAuth
// @Router /api/v1/admin/users/{id}/status [put]
func (h *AdminHandler) UpdateUserStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	var req dto.UpdateUserStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	profile, err := h.profileUseCase.SetStatus(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.ConvertProfile(profile), nil)
}

// Stats godoc
// @Summary Dashboard statistics
// @Tags admin
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Security BearerAuth
// @Router /api/v1/admin/stats [get]
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.statsUseCase.Dashboard(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stats, nil)
}

// NotificationReach godoc
// @Summary Estimate notification audience size
// @Tags admin
// @Produce json
// @Param audience query string true "Audience (all, active, inactive)"
// @Success 200 {object} utils.SuccessResponse
// @Security BearerAuth
// @Router /api/v1/admin/notifications/reach [get]
func (h *AdminHandler) NotificationReach(c *fiber.Ctx) error {
	audience := c.Query("audience")

	reach, err := h.notificationUseCase.EstimateReach(c.Context(), audience)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.ReachResponse{
		Audience: audience,
		Reach:    reach,
	}, nil)
}

// SendNotification godoc
// @Summary Broadcast a notification
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.SendNotificationRequest true "Notification"
// @Success 200 {object} utils.SuccessResponse
// @Security BearerAuth
// @Router /api/v1/admin/notifications [post]
func (h *AdminHandler) SendNotification(c *fiber.Ctx) error {
	var req dto.SendNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	notification, err := h.notificationUseCase.Send(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.ConvertNotification(notification), nil)
}

// ListNotifications godoc
// @Summary Notification history
// @Tags admin
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} utils.SuccessResponse
// @Security BearerAuth
// @Router /api/v1/admin/notifications [get]
func (h *AdminHandler) ListNotifications(c *fiber.Ctx) error {
	notifications, total, err := h.notificationUseCase.List(c.Context(), c.QueryInt("limit"), c.QueryInt("offset"))
	if err != nil {
		return utils.SendError(c, err)
	}

	out := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, dto.ConvertNotification(n))
	}
	return utils.SendSuccess(c, out, &utils.Meta{Total: total})
}
