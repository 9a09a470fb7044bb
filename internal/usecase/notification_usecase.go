package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Oliejik/T-No-Posto/internal/domain"
	"github.com/Oliejik/T-No-Posto/internal/domain/repository"
	"github.com/Oliejik/T-No-Posto/internal/pkg/errors"
	"github.com/Oliejik/T-No-Posto/internal/usecase/dto"
)

// NotificationUseCase backs the admin broadcast screen. There is no push
// pipeline yet: a send estimates the reach, stores the record and logs it.
type NotificationUseCase struct {
	notificationRepo repository.NotificationRepository
	profileRepo      repository.ProfileRepository
	logger           *zap.Logger
}

func NewNotificationUseCase(
	notificationRepo repository.NotificationRepository,
	profileRepo repository.ProfileRepository,
	logger *zap.Logger,
) *NotificationUseCase {
	return &NotificationUseCase{
		notificationRepo: notificationRepo,
		profileRepo:      profileRepo,
		logger:           logger,
	}
}

// EstimateReach returns how many users the audience currently matches.
func (uc *NotificationUseCase) EstimateReach(ctx context.Context, audience string) (int, error) {
	a := domain.Audience(audience)
	if !a.Valid() {
		return 0, errors.ErrInvalidAudience
	}
	return uc.profileRepo.CountByAudience(ctx, a)
}

func (uc *NotificationUseCase) Send(ctx context.Context, req dto.SendNotificationRequest) (*domain.AppNotification, error) {
	audience := domain.Audience(req.Audience)
	if !audience.Valid() {
		return nil, errors.ErrInvalidAudience
	}

	reach, err := uc.profileRepo.CountByAudience(ctx, audience)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	notification := &domain.AppNotification{
		ID:        uuid.New(),
		Title:     req.Title,
		Message:   req.Message,
		Audience:  audience,
		Reach:     reach,
		SentAt:    &now,
		CreatedAt: now,
	}
	if err := uc.notificationRepo.Create(ctx, notification); err != nil {
		uc.logger.Error("Failed to record notification", zap.Error(err))
		return nil, err
	}

	uc.logger.Info("Notification sent",
		zap.String("notification_id", notification.ID.String()),
		zap.String("audience", string(audience)),
		zap.Int("reach", reach))
	return notification, nil
}

func (uc *NotificationUseCase) List(ctx context.Context, limit, offset int) ([]*domain.AppNotification, int, error) {
	if limit <= 0 {
		limit = 50
	}
	return uc.notificationRepo.List(ctx, limit, offset)
}
