package worker

import (
	"context"
)

// Worker is a long-running background job.
type Worker interface {
	Start(ctx context.Context) error
	Stop() error
	Name() string
}
