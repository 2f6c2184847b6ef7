// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package cache

import (
	"context"
	"errors"
	"time"

	"github.com/omkarjainak/defisocial/internal/platform/config"
)

// Cache is the byte-level contract shared by the memory and redis backends.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with TTL; a non-positive TTL falls back to the backend default.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	Delete(ctx context.Context, key string) error

	// DeletePattern removes all keys matching a glob with * wildcards
	DeletePattern(ctx context.Context, pattern string) error

	Exists(ctx context.Context, key string) (bool, error)

	Close() error

	Stats() CacheStats
}

// CacheType represents different cache backend types
type CacheType string

const (
	CacheTypeMemory CacheType = "memory"
	CacheTypeRedis  CacheType = "redis"
)

// IsValid checks if the cache type is valid
func (ct CacheType) IsValid() bool {
	switch ct {
	case CacheTypeMemory, CacheTypeRedis:
		return true
	default:
		return false
	}
}

// CacheStats provides cache performance statistics
type CacheStats struct {
	Hits        int64   `json:"hits"`
	Misses      int64   `json:"misses"`
	HitRatio    float64 `json:"hitRatio"`
	Keys        int64   `json:"keys"`
	MemoryUsage int64   `json:"memoryUsage"`
	Evictions   int64   `json:"evictions"`
}

func hitRatio(hits, misses int64) float64 {
	total := hits + misses
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total)
}

// Common cache errors
var (
	ErrKeyNotFound           = errors.New("key not found")
	ErrCacheUnavailable      = errors.New("cache unavailable")
	ErrInvalidCacheType      = errors.New("invalid cache type")
	ErrCacheDisabled         = errors.New("cache disabled")
	ErrSerializationFailed   = errors.New("serialization failed")
	ErrDeserializationFailed = errors.New("deserialization failed")
)

// DefaultCacheConfig returns the cache section with the same defaults LoadFromEnv applies.
func DefaultCacheConfig() *config.CacheConfig {
	return &config.CacheConfig{
		Enabled:         true,
		Backend:         string(CacheTypeMemory),
		TTL:             time.Hour,
		Prefix:          "defisocial:",
		MaxMemory:       100 * 1024 * 1024, // 100MB
		CleanupInterval: 5 * time.Minute,
		Redis: config.RedisConfig{
			Address:      "localhost:6379",
			PoolSize:     10,
			MinIdleConns: 5,
			MaxConnAge:   300 * time.Second,
		},
	}
}
