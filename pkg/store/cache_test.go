package store_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storekit-io/wcapi/pkg/store"
)

func TestMemoryCache_SetAndGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := store.NewMemoryCache(10)

	entry := &store.CacheEntry{
		Body:       []byte(`{"id":1}`),
		StatusCode: 200,
		Headers:    map[string]string{"X-WP-Total": "30"},
		CreatedAt:  time.Now(),
		ExpiresAt:  time.Now().Add(time.Minute),
	}

	require.NoError(t, cache.Set(ctx, "GET /products", entry))

	got, err := cache.Get(ctx, "GET /products")
	require.NoError(t, err)
	assert.Equal(t, entry.Body, got.Body)
	assert.Equal(t, "30", got.Headers["X-WP-Total"])
	assert.True(t, cache.Has(ctx, "GET /products"))
}

func TestMemoryCache_RejectsOversizedBodies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := store.NewMemoryCache(10)

	entry := &store.CacheEntry{
		Body:      make([]byte, 1024*1024+1),
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Minute),
	}

	err := cache.Set(ctx, "GET /products", entry)

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrCacheValueTooLarge)
	assert.Equal(t, 0, cache.Len())
}

func TestMemoryCache_MissingKey(t *testing.T) {
	t.Parallel()

	cache := store.NewMemoryCache(10)

	_, err := cache.Get(context.Background(), "GET /nothing")

	assert.ErrorIs(t, err, store.ErrCacheKeyNotFound)
	assert.False(t, cache.Has(context.Background(), "GET /nothing"))
}

func TestMemoryCache_Expiry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := store.NewMemoryCache(10)

	expired := &store.CacheEntry{
		Body:      []byte("stale"),
		CreatedAt: time.Now().Add(-2 * time.Minute),
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	require.NoError(t, cache.Set(ctx, "GET /orders", expired))
	assert.False(t, cache.Has(ctx, "GET /orders"))

	_, err := cache.Get(ctx, "GET /orders")

	assert.ErrorIs(t, err, store.ErrCacheEntryExpired)

	// The expired entry is dropped on read.
	assert.Zero(t, cache.Len())
}

func TestMemoryCache_EvictsOldestWhenFull(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := store.NewMemoryCache(3)
	base := time.Now()

	for i := 0; i < 3; i++ {
		entry := &store.CacheEntry{
			Body:      []byte{byte(i)},
			CreatedAt: base.Add(time.Duration(i) * time.Second),
			ExpiresAt: base.Add(time.Hour),
		}
		require.NoError(t, cache.Set(ctx, fmt.Sprintf("key-%d", i), entry))
	}

	newest := &store.CacheEntry{
		Body:      []byte("new"),
		CreatedAt: base.Add(time.Minute),
		ExpiresAt: base.Add(time.Hour),
	}
	require.NoError(t, cache.Set(ctx, "key-3", newest))

	assert.Equal(t, 3, cache.Len())
	assert.False(t, cache.Has(ctx, "key-0"))
	assert.True(t, cache.Has(ctx, "key-1"))
	assert.True(t, cache.Has(ctx, "key-3"))
}

func TestMemoryCache_DeleteAndClear(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := store.NewMemoryCache(10)
	entry := &store.CacheEntry{CreatedAt: time.Now(), ExpiresAt: time.Now().Add(time.Hour)}

	require.NoError(t, cache.Set(ctx, "a", entry))
	require.NoError(t, cache.Set(ctx, "b", entry))

	require.NoError(t, cache.Delete(ctx, "a"))
	assert.False(t, cache.Has(ctx, "a"))
	assert.Equal(t, 1, cache.Len())

	require.NoError(t, cache.Clear(ctx))
	assert.Zero(t, cache.Len())
}

func TestNoOpCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := store.NewNoOpCache()

	require.NoError(t, cache.Set(ctx, "key", &store.CacheEntry{}))

	_, err := cache.Get(ctx, "key")

	assert.ErrorIs(t, err, store.ErrCacheDisabled)
	assert.False(t, cache.Has(ctx, "key"))
	assert.NoError(t, cache.Delete(ctx, "key"))
	assert.NoError(t, cache.Clear(ctx))
}

func TestNewCacheFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("nil config defaults to memory", func(t *testing.T) {
		t.Parallel()

		cache, err := store.NewCacheFromConfig(nil)

		require.NoError(t, err)
		assert.IsType(t, &store.MemoryCache{}, cache)
	})

	t.Run("none", func(t *testing.T) {
		t.Parallel()

		cache, err := store.NewCacheFromConfig(&store.CacheConfig{Type: store.CacheTypeNone})

		require.NoError(t, err)
		assert.IsType(t, &store.NoOpCache{}, cache)
	})

	t.Run("nats without config", func(t *testing.T) {
		t.Parallel()

		_, err := store.NewCacheFromConfig(&store.CacheConfig{Type: store.CacheTypeNATS})

		assert.ErrorIs(t, err, store.ErrNATSConfigRequired)
	})

	t.Run("unsupported type", func(t *testing.T) {
		t.Parallel()

		_, err := store.NewCacheFromConfig(&store.CacheConfig{Type: "redis"})

		assert.ErrorIs(t, err, store.ErrUnsupportedCacheType)
	})
}
