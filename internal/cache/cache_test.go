// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package cache_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omkarjainak/defisocial/internal/cache"
)

func newMemory(t *testing.T) *cache.MemoryCache {
	t.Helper()
	cfg := cache.DefaultCacheConfig()
	cfg.CleanupInterval = 0
	c := cache.NewMemoryCache(cfg)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestNewCache(t *testing.T) {
	t.Run("Memory", func(t *testing.T) {
		c, err := cache.NewCache(cache.DefaultCacheConfig())
		require.NoError(t, err)
		defer c.Close()

		ctx := context.Background()
		require.NoError(t, c.Set(ctx, "test", []byte("value"), time.Minute))

		value, err := c.Get(ctx, "test")
		require.NoError(t, err)
		assert.Equal(t, []byte("value"), value)
	})

	t.Run("InvalidCacheType", func(t *testing.T) {
		cfg := cache.DefaultCacheConfig()
		cfg.Backend = "invalid"

		_, err := cache.NewCache(cfg)
		assert.ErrorIs(t, err, cache.ErrInvalidCacheType)
	})
}

func TestMemoryCache_Basic(t *testing.T) {
	c := newMemory(t)
	ctx := context.Background()

	_, err := c.Get(ctx, "missing")
	assert.ErrorIs(t, err, cache.ErrKeyNotFound)

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	ok, err := c.Exists(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, c.Delete(ctx, "k"))
	ok, _ = c.Exists(ctx, "k")
	assert.False(t, ok)

	stats := c.Stats()
	assert.Equal(t, int64(1), stats.Misses)
}

func TestMemoryCache_ReturnsCopies(t *testing.T) {
	c := newMemory(t)
	ctx := context.Background()

	original := []byte("abc")
	require.NoError(t, c.Set(ctx, "k", original, time.Minute))
	original[0] = 'z'

	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)

	got[1] = 'z'
	again, _ := c.Get(ctx, "k")
	assert.Equal(t, []byte("abc"), again)
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := newMemory(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "short", []byte("v"), 10*time.Millisecond))
	time.Sleep(30 * time.Millisecond)

	_, err := c.Get(ctx, "short")
	assert.ErrorIs(t, err, cache.ErrKeyNotFound)
	assert.Equal(t, int64(0), c.Stats().Keys)
}

func TestMemoryCache_DeletePattern(t *testing.T) {
	c := newMemory(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "p:posts:list", []byte("1"), time.Minute))
	require.NoError(t, c.Set(ctx, "p:posts:alice-1", []byte("2"), time.Minute))
	require.NoError(t, c.Set(ctx, "p:users:alice", []byte("3"), time.Minute))

	require.NoError(t, c.DeletePattern(ctx, "p:posts:*"))

	ok, _ := c.Exists(ctx, "p:posts:list")
	assert.False(t, ok)
	ok, _ = c.Exists(ctx, "p:posts:alice-1")
	assert.False(t, ok)
	ok, _ = c.Exists(ctx, "p:users:alice")
	assert.True(t, ok)
}

func TestMemoryCache_EvictsOverMemoryLimit(t *testing.T) {
	cfg := cache.DefaultCacheConfig()
	cfg.CleanupInterval = 0
	cfg.MaxMemory = 200
	c := cache.NewMemoryCache(cfg)
	defer c.Close()
	ctx := context.Background()

	for _, k := range []string{"a", "b", "c", "d"} {
		require.NoError(t, c.Set(ctx, k, make([]byte, 40), time.Minute))
	}

	stats := c.Stats()
	assert.LessOrEqual(t, stats.MemoryUsage, int64(200))
	assert.Positive(t, stats.Evictions)
	ok, _ := c.Exists(ctx, "d")
	assert.True(t, ok, "most recent write must survive eviction")
}

func TestMemoryCache_Closed(t *testing.T) {
	c := newMemory(t)
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())

	_, err := c.Get(context.Background(), "k")
	assert.ErrorIs(t, err, cache.ErrCacheDisabled)
	assert.ErrorIs(t, c.Set(context.Background(), "k", nil, 0), cache.ErrCacheDisabled)
}

func TestGenericCacheService(t *testing.T) {
	type record struct {
		ID      string `json:"id"`
		Version uint8  `json:"version"`
	}
	ctx := context.Background()

	t.Run("RoundTrip", func(t *testing.T) {
		svc := cache.NewGenericCacheService(newMemory(t), cache.DefaultCacheConfig())

		require.NoError(t, svc.CacheData(ctx, "posts", "alice-1", record{ID: "alice-1", Version: 1}, 0))

		var got record
		require.NoError(t, svc.GetCached(ctx, "posts", "alice-1", &got))
		assert.Equal(t, record{ID: "alice-1", Version: 1}, got)

		require.NoError(t, svc.InvalidateFamily(ctx, "posts"))
		assert.ErrorIs(t, svc.GetCached(ctx, "posts", "alice-1", &got), cache.ErrKeyNotFound)
	})

	t.Run("InvalidateKey", func(t *testing.T) {
		svc := cache.NewGenericCacheService(newMemory(t), cache.DefaultCacheConfig())

		require.NoError(t, svc.CacheData(ctx, "posts", "list", []string{"a"}, time.Minute))
		require.NoError(t, svc.InvalidateKey(ctx, "posts", "list"))

		var got []string
		assert.ErrorIs(t, svc.GetCached(ctx, "posts", "list", &got), cache.ErrKeyNotFound)
	})

	t.Run("Disabled", func(t *testing.T) {
		cfg := cache.DefaultCacheConfig()
		cfg.Enabled = false
		svc := cache.NewGenericCacheService(newMemory(t), cfg)

		assert.ErrorIs(t, svc.CacheData(ctx, "posts", "k", 1, 0), cache.ErrCacheDisabled)
		var v int
		assert.ErrorIs(t, svc.GetCached(ctx, "posts", "k", &v), cache.ErrCacheDisabled)
	})

	t.Run("NilService", func(t *testing.T) {
		var svc *cache.GenericCacheService
		var v int
		assert.ErrorIs(t, svc.GetCached(ctx, "posts", "k", &v), cache.ErrCacheDisabled)
	})
}

// Requires a reachable Redis; set REDIS_TEST_ADDRESS to run.
func TestRedisCache_Integration(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDRESS")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDRESS not set")
	}

	cfg := cache.DefaultCacheConfig()
	cfg.Backend = string(cache.CacheTypeRedis)
	cfg.Redis.Address = addr

	c, err := cache.NewCache(cfg)
	require.NoError(t, err)
	defer c.Close()

	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "defisocial-test:a", []byte("1"), time.Minute))
	got, err := c.Get(ctx, "defisocial-test:a")
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), got)

	require.NoError(t, c.DeletePattern(ctx, "defisocial-test:*"))
	_, err = c.Get(ctx, "defisocial-test:a")
	assert.ErrorIs(t, err, cache.ErrKeyNotFound)
}
