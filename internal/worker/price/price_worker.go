// Package price contains the contribution worker: it consumes price-updated
// events and credits the reporting user, keeping the write path of a price
// submission fast.
package price

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Oliejik/T-No-Posto/internal/domain"
	"github.com/Oliejik/T-No-Posto/internal/domain/repository"
	"github.com/Oliejik/T-No-Posto/internal/worker"
)

const (
	maxBatchSize    = 20
	emptyQueueSleep = 100 * time.Millisecond
)

type ContributionWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	profileRepo  repository.ProfileRepository
	cacheRepo    repository.CacheRepository
	consumerName string
	maxRetries   int
}

func NewContributionWorker(
	streamRepo repository.StreamRepository,
	profileRepo repository.ProfileRepository,
	cacheRepo repository.CacheRepository,
	consumerGroup string,
	maxRetries int,
	logger *zap.Logger,
) *ContributionWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &ContributionWorker{
		BaseWorker:   worker.NewBaseWorker("price-contribution", consumerGroup, logger),
		streamRepo:   streamRepo,
		profileRepo:  profileRepo,
		cacheRepo:    cacheRepo,
		consumerName: consumerName,
		maxRetries:   maxRetries,
	}
}

func (w *ContributionWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting ContributionWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("max_batch_size", maxBatchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamPriceUpdated, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.processBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				time.Sleep(time.Second)
				continue
			}

			if processed == 0 {
				time.Sleep(emptyQueueSleep)
			}
		}
	}
}

// processBatch reads up to maxBatchSize events and credits each reporter.
// Malformed messages are acked and dropped; transient failures stay pending
// for redelivery.
func (w *ContributionWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ReadBatch(
		ctx,
		domain.StreamPriceUpdated,
		w.ConsumerGroup(),
		w.consumerName,
		maxBatchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to read batch: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil
	}

	logger.Debug("Processing batch", zap.Int("message_count", len(messages)))

	ackIDs := make([]string, 0, len(messages))
	credited := 0
	for _, msg := range messages {
		var event domain.PriceUpdatedEvent
		if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
			logger.Warn("Dropping malformed event",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			ackIDs = append(ackIDs, msg.ID)
			continue
		}

		if err := w.creditReporter(ctx, event); err != nil {
			logger.Error("Failed to credit reporter, message stays pending",
				zap.String("message_id", msg.ID),
				zap.String("user_id", event.UpdatedBy.String()),
				zap.Error(err))
			continue
		}

		credited++
		ackIDs = append(ackIDs, msg.ID)
	}

	if credited > 0 {
		// Dashboard averages changed with the prices behind these events.
		if err := w.cacheRepo.DeleteByPrefix(ctx, "stats:"); err != nil {
			logger.Warn("Failed to invalidate stats cache", zap.Error(err))
		}
	}

	if err := w.streamRepo.Ack(ctx, domain.StreamPriceUpdated, w.ConsumerGroup(), ackIDs...); err != nil {
		return len(ackIDs), fmt.Errorf("failed to ack messages: %w", err)
	}

	return len(ackIDs), nil
}

func (w *ContributionWorker) creditReporter(ctx context.Context, event domain.PriceUpdatedEvent) error {
	var lastErr error
	for attempt := 0; attempt <= w.maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(time.Duration(attempt) * 100 * time.Millisecond)
		}
		if lastErr = w.profileRepo.IncrementContributions(ctx, event.UpdatedBy); lastErr == nil {
			w.Logger().Debug("Contribution credited",
				zap.String("user_id", event.UpdatedBy.String()),
				zap.String("station_id", event.StationID.String()),
				zap.String("fuel", string(event.FuelType)))
			return nil
		}
	}
	return lastErr
}
