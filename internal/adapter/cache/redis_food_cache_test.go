package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/Jazz7-Dev/FoodY.com/internal/entity"
)

func setupCache(t *testing.T) (*RedisFoodCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewRedisFoodCache(rdb), mr
}

func TestFoodCache_MissThenRoundTrip(t *testing.T) {
	c, _ := setupCache(t)
	ctx := context.Background()

	_, hit, err := c.Get(ctx)
	require.NoError(t, err)
	assert.False(t, hit)

	foods := []domain.Food{
		{ID: "f1", Name: "Pizza", Price: 10, Description: "Cheese pizza"},
		{ID: "f2", Name: "Burger", Price: 6},
	}
	require.NoError(t, c.Set(ctx, foods, 5*time.Minute))

	got, hit, err := c.Get(ctx)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, foods, got)
}

func TestFoodCache_ExpiresByTTL(t *testing.T) {
	c, mr := setupCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, []domain.Food{{ID: "f1", Name: "Pizza", Price: 10}}, time.Minute))
	mr.FastForward(2 * time.Minute)

	_, hit, err := c.Get(ctx)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestFoodCache_CorruptPayloadIsAMiss(t *testing.T) {
	c, mr := setupCache(t)

	require.NoError(t, mr.Set(foodListKey, "{not json"))

	_, hit, err := c.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, hit)
}
