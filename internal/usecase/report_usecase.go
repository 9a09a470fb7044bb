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

type ReportUseCase struct {
	reportRepo  repository.ReportRepository
	stationRepo repository.StationRepository
	logger      *zap.Logger
}

func NewReportUseCase(
	reportRepo repository.ReportRepository,
	stationRepo repository.StationRepository,
	logger *zap.Logger,
) *ReportUseCase {
	return &ReportUseCase{
		reportRepo:  reportRepo,
		stationRepo: stationRepo,
		logger:      logger,
	}
}

// File creates a pending report. The station name is captured at filing time
// so the moderation queue stays readable if the station is later removed.
func (uc *ReportUseCase) File(ctx context.Context, userID uuid.UUID, req dto.CreateReportRequest) (*domain.Report, error) {
	station, err := uc.stationRepo.GetByID(ctx, req.StationID)
	if err != nil {
		return nil, err
	}

	report := &domain.Report{
		ID:          uuid.New(),
		StationID:   station.ID,
		StationName: station.Name,
		ReportedBy:  userID,
		Reason:      req.Reason,
		Status:      domain.ReportPending,
		CreatedAt:   time.Now().UTC(),
	}
	if err := uc.reportRepo.Create(ctx, report); err != nil {
		uc.logger.Error("Failed to create report", zap.String("station_id", station.ID.String()), zap.Error(err))
		return nil, err
	}

	uc.logger.Info("Report filed",
		zap.String("report_id", report.ID.String()),
		zap.String("station_id", station.ID.String()))
	return report, nil
}

// List is the admin moderation queue. Empty statuses means every status.
func (uc *ReportUseCase) List(ctx context.Context, statuses []string, limit, offset int) ([]*domain.Report, int, error) {
	parsed := make([]domain.ReportStatus, 0, len(statuses))
	for _, s := range statuses {
		status := domain.ReportStatus(s)
		if !status.Valid() {
			return nil, 0, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"status": s})
		}
		parsed = append(parsed, status)
	}
	if limit <= 0 {
		limit = 50
	}
	return uc.reportRepo.List(ctx, parsed, limit, offset)
}

// Moderate resolves or dismisses a pending report.
func (uc *ReportUseCase) Moderate(ctx context.Context, id uuid.UUID, req dto.ModerateReportRequest) error {
	status := domain.ReportStatus(req.Status)
	if status != domain.ReportResolved && status != domain.ReportDismissed {
		return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"status": req.Status})
	}

	if err := uc.reportRepo.UpdateStatus(ctx, id, status); err != nil {
		uc.logger.Error("Failed to moderate report", zap.String("report_id", id.String()), zap.Error(err))
		return err
	}

	uc.logger.Info("Report moderated",
		zap.String("report_id", id.String()),
		zap.String("status", req.Status))
	return nil
}
