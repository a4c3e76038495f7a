package storage

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"overcooked-delivery/order-svc/internal/domain"
	"overcooked-delivery/order-svc/internal/service"

	"github.com/redis/go-redis/v9"
)

// RedisCache stores checkout placements keyed by user and Idempotency-Key.
type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) PlacementKey(userID int, key string) string {
	return "checkout:" + strconv.Itoa(userID) + ":" + key
}

func (c *RedisCache) GetPlacement(ctx context.Context, userID int, key string) (*domain.Placement, error) {
	raw, err := c.Client.Get(ctx, c.PlacementKey(userID, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var placement domain.Placement
	if err := json.Unmarshal(raw, &placement); err != nil {
		return nil, err
	}
	return &placement, nil
}

func (c *RedisCache) SavePlacement(ctx context.Context, userID int, key string, placement *domain.Placement) error {
	payload, err := json.Marshal(placement)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, c.PlacementKey(userID, key), payload, c.TTL).Err()
}

var _ service.PlacementCache = (*RedisCache)(nil)
