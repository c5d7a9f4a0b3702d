package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/picklesmvr/mvr-v1/models"
)

func newTestCache(t *testing.T) *RedisCache {
	t.Helper()
	mr := miniredis.RunT(t)
	return NewRedisCache(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
}

func TestRedisCacheRoundTrip(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	cart := &models.Cart{
		ID:     "c1",
		UserID: "u1",
		Items: []models.CartItem{
			{MenuItemID: "chicken", Quantity: 2, Price: 800.0},
		},
		TotalAmount: 1600.0,
	}
	require.NoError(t, c.Set(ctx, "u1", cart))

	got, err := c.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, cart.ID, got.ID)
	assert.Equal(t, cart.Items, got.Items)
	assert.Equal(t, cart.TotalAmount, got.TotalAmount)
}

func TestRedisCacheMiss(t *testing.T) {
	c := newTestCache(t)

	_, err := c.Get(context.Background(), "nobody")
	assert.True(t, errors.Is(err, ErrCacheMiss))
}

func TestRedisCacheDelete(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "u1", &models.Cart{UserID: "u1"}))
	require.NoError(t, c.Delete(ctx, "u1"))

	_, err := c.Get(ctx, "u1")
	assert.True(t, errors.Is(err, ErrCacheMiss))
}

func TestDisabledCacheAlwaysMisses(t *testing.T) {
	c := Disabled{}
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "u1", &models.Cart{UserID: "u1"}))
	_, err := c.Get(ctx, "u1")
	assert.True(t, errors.Is(err, ErrCacheMiss))
	assert.NoError(t, c.Delete(ctx, "u1"))
}
