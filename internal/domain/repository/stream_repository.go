package repository

import (
	"context"

	"github.com/Oliejik/T-No-Posto/internal/domain"
)

type StreamRepository interface {
	Publish(ctx context.Context, stream string, payload interface{}) error
	CreateConsumerGroup(ctx context.Context, stream, group string) error
	ReadBatch(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error)
	Ack(ctx context.Context, stream, group string, ids ...string) error
}
