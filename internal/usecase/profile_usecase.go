package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Oliejik/T-No-Posto/internal/domain"
	"github.com/Oliejik/T-No-Posto/internal/domain/repository"
	"github.com/Oliejik/T-No-Posto/internal/pkg/errors"
	"github.com/Oliejik/T-No-Posto/internal/usecase/dto"
)

type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
	logger      *zap.Logger
}

func NewProfileUseCase(profileRepo repository.ProfileRepository, logger *zap.Logger) *ProfileUseCase {
	return &ProfileUseCase{profileRepo: profileRepo, logger: logger}
}

func (uc *ProfileUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	return uc.profileRepo.GetByID(ctx, id)
}

func (uc *ProfileUseCase) UpdateName(ctx context.Context, id uuid.UUID, req dto.UpdateProfileRequest) (*domain.Profile, error) {
	if err := uc.profileRepo.UpdateName(ctx, id, req.Name); err != nil {
		uc.logger.Error("Failed to update profile name", zap.String("user_id", id.String()), zap.Error(err))
		return nil, err
	}
	return uc.profileRepo.GetByID(ctx, id)
}

// List is the admin user listing. An empty status filter means every status.
func (uc *ProfileUseCase) List(ctx context.Context, statuses []string, limit, offset int) ([]*domain.Profile, int, error) {
	parsed := make([]domain.ProfileStatus, 0, len(statuses))
	for _, s := range statuses {
		status := domain.ProfileStatus(s)
		if status != domain.ProfileActive && status != domain.ProfileBanned {
			return nil, 0, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"status": s})
		}
		parsed = append(parsed, status)
	}
	if limit <= 0 {
		limit = 50
	}
	return uc.profileRepo.List(ctx, parsed, limit, offset)
}

// SetStatus bans or reinstates a user.
func (uc *ProfileUseCase) SetStatus(ctx context.Context, id uuid.UUID, req dto.UpdateUserStatusRequest) (*domain.Profile, error) {
	status := domain.ProfileStatus(req.Status)
	if status != domain.ProfileActive && status != domain.ProfileBanned {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"status": req.Status})
	}

	if err := uc.profileRepo.UpdateStatus(ctx, id, status); err != nil {
		uc.logger.Error("Failed to update user status",
			zap.String("user_id", id.String()),
			zap.String("status", req.Status),
			zap.Error(err))
		return nil, err
	}

	uc.logger.Info("User status changed",
		zap.String("user_id", id.String()),
		zap.String("status", req.Status))
	return uc.profileRepo.GetByID(ctx, id)
}
