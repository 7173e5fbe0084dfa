package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/agrilink/market-service/internal/config"

	"github.com/redis/go-redis/v9"
)

// Cache adapts a Redis client to the byte-value cache interface used by the
// services, so it is interchangeable with the in-process LRU.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(ctx context.Context, cfg config.Redis, ttl time.Duration) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &Cache{client: client, ttl: ttl}, nil
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

func (c *Cache) Set(ctx context.Context, key string, value []byte) {
	c.client.Set(ctx, key, value, c.ttl)
}

func (c *Cache) Del(ctx context.Context, key string) {
	c.client.Del(ctx, key)
}

func (c *Cache) Close() error {
	return c.client.Close()
}
