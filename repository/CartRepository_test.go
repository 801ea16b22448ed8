package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"storefront/entities"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCart_StartsEmpty(t *testing.T) {
	cr := NewMemoryCartRepository()
	lines, err := cr.GetCart(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, lines)
	assert.Empty(t, lines)
}

func TestMemoryCart_SetGetCopies(t *testing.T) {
	cr := NewMemoryCartRepository()
	ctx := context.Background()

	in := []entities.CartLine{{Id: "1", Quantity: 2}, {Id: "2", Quantity: 1}}
	require.NoError(t, cr.SetCart(ctx, in))
	in[0].Quantity = 99

	out, err := cr.GetCart(ctx)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, 2, out[0].Quantity)
	assert.Equal(t, "2", out[1].Id)

	out[1].Quantity = 42
	again, _ := cr.GetCart(ctx)
	assert.Equal(t, 1, again[1].Quantity)
}

func TestNewRedisCartRepository_Validates(t *testing.T) {
	_, err := NewRedisCartRepository(context.Background(), nil, "k", time.Hour)
	assert.Error(t, err)

	rdb := redis.NewClient(&redis.Options{Addr: "localhost:0"})
	defer rdb.Close()
	_, err = NewRedisCartRepository(context.Background(), rdb, "", time.Hour)
	assert.Error(t, err)
}

// Runs against a real server when REDIS_ADDR is set.
func TestRedisCart_RoundTrip(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	ctx := context.Background()
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	defer rdb.Close()

	key := "storefront:test:" + t.Name()
	t.Cleanup(func() { rdb.Del(context.Background(), key) })

	cr, err := NewRedisCartRepository(ctx, rdb, key, time.Minute)
	require.NoError(t, err)

	lines, err := cr.GetCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, lines)

	want := []entities.CartLine{
		{Id: "2", Name: "Ergonomic Mechanical Keyboard", Price: 149.99, Image: "/kb.jpg", Quantity: 1},
		{Id: "1", Name: "Premium Wireless Headphones", Price: 299.99, Image: "/hp.png", Quantity: 3},
	}
	require.NoError(t, cr.SetCart(ctx, want))

	got, err := cr.GetCart(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	ttl, err := rdb.TTL(ctx, key).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}
