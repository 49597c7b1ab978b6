package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	domain "github.com/Jazz7-Dev/FoodY.com/internal/entity"
	"github.com/Jazz7-Dev/FoodY.com/internal/usecase"
)

const foodListKey = "catalog:foods"

// RedisFoodCache keeps a serialized snapshot of the food catalog. The
// catalog is managed out of band, so entries only ever expire by TTL.
type RedisFoodCache struct {
	rdb *redis.Client
}

func NewRedisFoodCache(rdb *redis.Client) *RedisFoodCache {
	return &RedisFoodCache{rdb: rdb}
}

func (c *RedisFoodCache) Get(ctx context.Context) ([]domain.Food, bool, error) {
	raw, err := c.rdb.Get(ctx, foodListKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var foods []domain.Food
	if err := json.Unmarshal(raw, &foods); err != nil {
		// stale or corrupt payload; treat as a miss
		return nil, false, nil
	}
	return foods, true, nil
}

func (c *RedisFoodCache) Set(ctx context.Context, foods []domain.Food, ttl time.Duration) error {
	raw, err := json.Marshal(foods)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, foodListKey, raw, ttl).Err()
}

var _ usecase.FoodCache = (*RedisFoodCache)(nil)
