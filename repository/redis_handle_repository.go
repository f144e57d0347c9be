package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"AmbientFM/logger"

	"github.com/go-redis/redis/v8"
)

// redisHandleStore keeps the pid under a single Redis key, so several hosts
// sharing one Redis see the same handle.
type redisHandleStore struct {
	client *redis.Client
	key    string
}

// NewRedisHandleStore creates a HandleStore backed by key in Redis.
func NewRedisHandleStore(client *redis.Client, key string) HandleStore {
	return &redisHandleStore{client: client, key: key}
}

func (s *redisHandleStore) Save(ctx context.Context, pid int) error {
	if err := s.client.Set(ctx, s.key, strconv.Itoa(pid), 0).Err(); err != nil {
		return fmt.Errorf("failed to store pid in Redis: %w", err)
	}
	return nil
}

func (s *redisHandleStore) Load(ctx context.Context) (int, bool) {
	val, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Debug("[HandleStore] failed to read pid from Redis",
				logger.String("key", s.key), logger.ErrorField(err))
		}
		return 0, false
	}
	pid, err := strconv.Atoi(val)
	if err != nil {
		return 0, false
	}
	return pid, true
}

func (s *redisHandleStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("failed to clear pid in Redis: %w", err)
	}
	return nil
}
