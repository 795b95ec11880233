// Package metrics provides author.Metrics adapters. The Redis recorder keeps
// simple monotonically increasing counters that the ops dashboard scrapes;
// Noop is wired when no Redis address is configured.
package metrics

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	creationSuccessKey = "authors:creations:success"
	creationFailureKey = "authors:creations:failure"
)

// RedisRecorder counts author creation outcomes in Redis.
type RedisRecorder struct {
	client *redis.Client
}

// NewRedisRecorder creates a recorder on the given client.
func NewRedisRecorder(client *redis.Client) *RedisRecorder {
	return &RedisRecorder{client: client}
}

// RecordCreationSuccess increments the success counter.
func (r *RedisRecorder) RecordCreationSuccess(ctx context.Context) error {
	if err := r.client.Incr(ctx, creationSuccessKey).Err(); err != nil {
		return fmt.Errorf("incr %s: %w", creationSuccessKey, err)
	}
	return nil
}

// RecordCreationFailure increments the failure counter.
func (r *RedisRecorder) RecordCreationFailure(ctx context.Context) error {
	if err := r.client.Incr(ctx, creationFailureKey).Err(); err != nil {
		return fmt.Errorf("incr %s: %w", creationFailureKey, err)
	}
	return nil
}

// Counts returns the current success and failure totals. Missing keys read
// as zero.
func (r *RedisRecorder) Counts(ctx context.Context) (successes, failures int64, err error) {
	vals, err := r.client.MGet(ctx, creationSuccessKey, creationFailureKey).Result()
	if err != nil {
		return 0, 0, fmt.Errorf("mget counters: %w", err)
	}
	parse := func(v interface{}) int64 {
		s, ok := v.(string)
		if !ok {
			return 0
		}
		var n int64
		fmt.Sscanf(s, "%d", &n)
		return n
	}
	return parse(vals[0]), parse(vals[1]), nil
}

// Noop discards all metric recordings.
type Noop struct{}

// RecordCreationSuccess does nothing.
func (Noop) RecordCreationSuccess(context.Context) error { return nil }

// RecordCreationFailure does nothing.
func (Noop) RecordCreationFailure(context.Context) error { return nil }
