package db

import (
	"context"
	"fmt"
	"time"

	"AmbientFM/config"

	"github.com/go-redis/redis/v8"
)

// ConnectRedis 初始化Redis连接并测试连通性
func ConnectRedis(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// TestRedis 测试Redis基本读写，使用 handle key 旁边的检查键，不影响已保存的 pid
func TestRedis(ctx context.Context, client *redis.Client, handleKey string) error {
	checkKey := handleKey + ":check"
	const marker = "ambient handle backend reachable"

	if err := client.Set(ctx, checkKey, marker, time.Minute).Err(); err != nil {
		return fmt.Errorf("failed to set Redis key: %w", err)
	}

	val, err := client.Get(ctx, checkKey).Result()
	if err != nil {
		return fmt.Errorf("failed to get Redis key: %w", err)
	}
	if val != marker {
		return fmt.Errorf("unexpected value from Redis: got %s", val)
	}

	if err := client.Del(ctx, checkKey).Err(); err != nil {
		return fmt.Errorf("failed to delete Redis key: %w", err)
	}
	return nil
}
