package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-doctor-directory/internal/domain/entity"

	"github.com/redis/go-redis/v9"
)

// CatalogKey holds the JSON encoded doctor list
const CatalogKey = "doctors:catalog"

// RedisCatalogCache stores the loaded doctor list in Redis
type RedisCatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCatalogCache(client *redis.Client, ttl time.Duration) *RedisCatalogCache {
	return &RedisCatalogCache{client: client, ttl: ttl}
}

// Get returns the cached list. ok is false on a cache miss.
func (c *RedisCatalogCache) Get(ctx context.Context) ([]entity.Doctor, bool, error) {
	raw, err := c.client.Get(ctx, CatalogKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %s: %w", CatalogKey, err)
	}

	var doctors []entity.Doctor
	if err := json.Unmarshal(raw, &doctors); err != nil {
		return nil, false, fmt.Errorf("decode %s: %w", CatalogKey, err)
	}
	return doctors, true, nil
}

func (c *RedisCatalogCache) Set(ctx context.Context, doctors []entity.Doctor) error {
	raw, err := json.Marshal(doctors)
	if err != nil {
		return fmt.Errorf("encode %s: %w", CatalogKey, err)
	}
	if err := c.client.Set(ctx, CatalogKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("set %s: %w", CatalogKey, err)
	}
	return nil
}

func (c *RedisCatalogCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, CatalogKey).Err(); err != nil {
		return fmt.Errorf("delete %s: %w", CatalogKey, err)
	}
	return nil
}
