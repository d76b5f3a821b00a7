package storage

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
)

type RedisStorage struct {
	Connection *redis.Client
}

// NewRedisStorage - connects to redis and checks the connection with a ping.
func NewRedisStorage(ctx context.Context, conf config.Redis) (*RedisStorage, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     conf.GetRedisAddr(),
		Password: conf.Password,
		DB:       conf.DB,
	})

	if _, err := conn.Ping(ctx).Result(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStorage{Connection: conn}, nil
}

func (that *RedisStorage) Close() error {
	return that.Connection.Close()
}
