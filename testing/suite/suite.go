package suite

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

const maxWaitDuration = 120 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Storage *redis.Client
}

// New starts an in-process redis server for the test and returns a client connected to it.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(cancel)

	mini := miniredis.RunT(t)

	redisClient := redis.NewClient(&redis.Options{
		Addr: mini.Addr(),
	})
	t.Cleanup(func() {
		_ = redisClient.Close()
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		t.Fatalf("could not connect to redis: %v", err)
	}

	return ctx, &Suite{
		T:       t,
		Logger:  NopLogger(),
		Storage: redisClient,
	}
}

// NopLogger returns a logger that discards all output.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
