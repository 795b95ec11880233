package metrics

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func setupRecorder(t *testing.T) *RedisRecorder {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisRecorder(client)
}

func TestRedisRecorder_Counts(t *testing.T) {
	rec := setupRecorder(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := rec.RecordCreationSuccess(ctx); err != nil {
			t.Fatalf("RecordCreationSuccess: %v", err)
		}
	}
	if err := rec.RecordCreationFailure(ctx); err != nil {
		t.Fatalf("RecordCreationFailure: %v", err)
	}

	successes, failures, err := rec.Counts(ctx)
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	if successes != 3 || failures != 1 {
		t.Errorf("Counts = %d/%d, want 3/1", successes, failures)
	}
}

func TestRedisRecorder_CountsEmpty(t *testing.T) {
	rec := setupRecorder(t)

	successes, failures, err := rec.Counts(context.Background())
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	if successes != 0 || failures != 0 {
		t.Errorf("Counts = %d/%d, want 0/0", successes, failures)
	}
}

func TestRedisRecorder_ErrorWhenDown(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	mr.Close()

	rec := NewRedisRecorder(client)
	if err := rec.RecordCreationSuccess(context.Background()); err == nil {
		t.Error("expected error when redis is unreachable")
	}
}
