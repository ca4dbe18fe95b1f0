package ports

import (
	"context"
	"time"
)

// SubmissionGuard admits at most one in-flight submission per form instance.
type SubmissionGuard interface {
	// Acquire returns false when key is already held.
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}
