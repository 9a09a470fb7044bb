package price

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Oliejik/T-No-Posto/internal/domain"
)

type mockStreamRepo struct {
	mock.Mock
}

func (m *mockStreamRepo) Publish(ctx context.Context, stream string, payload interface{}) error {
	args := m.Called(ctx, stream, payload)
	return args.Error(0)
}

func (m *mockStreamRepo) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *mockStreamRepo) ReadBatch(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *mockStreamRepo) Ack(ctx context.Context, stream, group string, ids ...string) error {
	args := m.Called(ctx, stream, group, ids)
	return args.Error(0)
}

type mockCacheRepo struct {
	mock.Mock
}

func (m *mockCacheRepo) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *mockCacheRepo) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *mockCacheRepo) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *mockCacheRepo) DeleteByPrefix(ctx context.Context, prefix string) error {
	args := m.Called(ctx, prefix)
	return args.Error(0)
}

type mockProfileRepo struct {
	mock.Mock
}

func (m *mockProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *mockProfileRepo) List(ctx context.Context, statuses []domain.ProfileStatus, limit, offset int) ([]*domain.Profile, int, error) {
	args := m.Called(ctx, statuses, limit, offset)
	return nil, args.Int(1), args.Error(2)
}

func (m *mockProfileRepo) UpdateName(ctx context.Context, id uuid.UUID, name string) error {
	args := m.Called(ctx, id, name)
	return args.Error(0)
}

func (m *mockProfileRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ProfileStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *mockProfileRepo) IncrementContributions(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockProfileRepo) CountByAudience(ctx context.Context, audience domain.Audience) (int, error) {
	args := m.Called(ctx, audience)
	return args.Int(0), args.Error(1)
}

func eventMessage(t *testing.T, id string, userID uuid.UUID) domain.StreamMessage {
	t.Helper()
	data, err := json.Marshal(domain.PriceUpdatedEvent{
		StationID: uuid.New(),
		FuelType:  domain.FuelEtanol,
		Value:     3.49,
		UpdatedBy: userID,
		UpdatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	return domain.StreamMessage{ID: id, Data: string(data)}
}

func TestContributionWorker_ProcessBatchCreditsAndAcks(t *testing.T) {
	userID := uuid.New()
	streamRepo := new(mockStreamRepo)
	profileRepo := new(mockProfileRepo)
	cacheRepo := new(mockCacheRepo)

	streamRepo.On("ReadBatch", mock.Anything, domain.StreamPriceUpdated, "grp", mock.Anything, maxBatchSize).
		Return([]domain.StreamMessage{eventMessage(t, "1-0", userID)}, nil)
	profileRepo.On("IncrementContributions", mock.Anything, userID).Return(nil)
	cacheRepo.On("DeleteByPrefix", mock.Anything, "stats:").Return(nil)
	streamRepo.On("Ack", mock.Anything, domain.StreamPriceUpdated, "grp", []string{"1-0"}).Return(nil)

	w := NewContributionWorker(streamRepo, profileRepo, cacheRepo, "grp", 0, zap.NewNop())
	processed, err := w.processBatch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, processed)
	profileRepo.AssertExpectations(t)
	streamRepo.AssertExpectations(t)
	cacheRepo.AssertExpectations(t)
}

func TestContributionWorker_MalformedEventIsAckedAndDropped(t *testing.T) {
	streamRepo := new(mockStreamRepo)
	profileRepo := new(mockProfileRepo)
	cacheRepo := new(mockCacheRepo)

	streamRepo.On("ReadBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.StreamMessage{{ID: "1-0", Data: "not json"}}, nil)
	streamRepo.On("Ack", mock.Anything, domain.StreamPriceUpdated, "grp", []string{"1-0"}).Return(nil)

	w := NewContributionWorker(streamRepo, profileRepo, cacheRepo, "grp", 0, zap.NewNop())
	processed, err := w.processBatch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, processed)
	profileRepo.AssertNotCalled(t, "IncrementContributions", mock.Anything, mock.Anything)
	cacheRepo.AssertNotCalled(t, "DeleteByPrefix", mock.Anything, mock.Anything)
}

func TestContributionWorker_FailedCreditStaysPending(t *testing.T) {
	userID := uuid.New()
	streamRepo := new(mockStreamRepo)
	profileRepo := new(mockProfileRepo)
	cacheRepo := new(mockCacheRepo)

	streamRepo.On("ReadBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.StreamMessage{eventMessage(t, "1-0", userID)}, nil)
	profileRepo.On("IncrementContributions", mock.Anything, userID).Return(errors.New("db down"))
	// The failed message must not be acked.
	streamRepo.On("Ack", mock.Anything, domain.StreamPriceUpdated, "grp", []string{}).Return(nil)

	w := NewContributionWorker(streamRepo, profileRepo, cacheRepo, "grp", 1, zap.NewNop())
	processed, err := w.processBatch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, processed)
	cacheRepo.AssertNotCalled(t, "DeleteByPrefix", mock.Anything, mock.Anything)
}

func TestContributionWorker_EmptyBatch(t *testing.T) {
	streamRepo := new(mockStreamRepo)
	streamRepo.On("ReadBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil)

	w := NewContributionWorker(streamRepo, new(mockProfileRepo), new(mockCacheRepo), "grp", 0, zap.NewNop())
	processed, err := w.processBatch(context.Background())

	require.NoError(t, err)
	assert.Zero(t, processed)
}
