package repository

import (
	"context"
	"time"
)

// CacheRepository is the byte-level cache used for nearby-station responses
// and dashboard statistics. A nil result with nil error is a miss.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteByPrefix(ctx context.Context, prefix string) error
}
