package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "timesheet:"

// SubmissionGuard holds one key per in-flight form submission so that
// replicas behind a load balancer share the same view.
type SubmissionGuard struct {
	client *redis.Client
}

func NewSubmissionGuard(client *redis.Client) *SubmissionGuard {
	return &SubmissionGuard{client: client}
}

// Acquire sets key only if absent. The TTL bounds a holder that never
// releases.
func (g *SubmissionGuard) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := g.client.SetNX(ctx, keyPrefix+key, "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("submission guard acquire: %w", err)
	}
	return ok, nil
}

func (g *SubmissionGuard) Release(ctx context.Context, key string) error {
	if err := g.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("submission guard release: %w", err)
	}
	return nil
}

// Ping reports whether the backing Redis answers.
func (g *SubmissionGuard) Ping(ctx context.Context) error {
	return g.client.Ping(ctx).Err()
}
