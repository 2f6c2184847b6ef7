// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/omkarjainak/defisocial/internal/metrics"
	"github.com/omkarjainak/defisocial/internal/pkg/log"
	"github.com/omkarjainak/defisocial/internal/platform/config"
)

// GenericCacheService stores JSON values under prefixed keys and reports
// hits and misses to prometheus under a key family label.
type GenericCacheService struct {
	cache  Cache
	config *config.CacheConfig
}

// NewGenericCacheService wraps cache. A nil cache or a disabled config turns every call into a miss.
func NewGenericCacheService(cache Cache, cfg *config.CacheConfig) *GenericCacheService {
	if cfg == nil {
		cfg = DefaultCacheConfig()
	}
	return &GenericCacheService{cache: cache, config: cfg}
}

func (gcs *GenericCacheService) enabled() bool {
	return gcs != nil && gcs.config.Enabled && gcs.cache != nil
}

// GetCached retrieves and unmarshals cached data into target.
func (gcs *GenericCacheService) GetCached(ctx context.Context, family, key string, target interface{}) error {
	if !gcs.enabled() {
		return ErrCacheDisabled
	}

	fullKey := gcs.buildKey(family, key)
	data, err := gcs.cache.Get(ctx, fullKey)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			metrics.CacheRequests.WithLabelValues(family, "miss").Inc()
		} else {
			metrics.CacheRequests.WithLabelValues(family, "error").Inc()
			log.ErrorWithContext(ctx, "Cache get error for key %s: %v", fullKey, err)
		}
		return err
	}

	if err := json.Unmarshal(data, target); err != nil {
		metrics.CacheRequests.WithLabelValues(family, "error").Inc()
		log.ErrorWithContext(ctx, "Cache data unmarshal error for key %s: %v", fullKey, err)
		return fmt.Errorf("%w: %v", ErrDeserializationFailed, err)
	}

	metrics.CacheRequests.WithLabelValues(family, "hit").Inc()
	return nil
}

// CacheData marshals and stores data. A zero ttl uses the configured TTL.
func (gcs *GenericCacheService) CacheData(ctx context.Context, family, key string, data interface{}, ttl time.Duration) error {
	if !gcs.enabled() {
		return ErrCacheDisabled
	}
	if ttl <= 0 {
		ttl = gcs.config.TTL
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSerializationFailed, err)
	}

	fullKey := gcs.buildKey(family, key)
	if err := gcs.cache.Set(ctx, fullKey, jsonData, ttl); err != nil {
		log.ErrorWithContext(ctx, "Cache set error for key %s: %v", fullKey, err)
		return err
	}
	return nil
}

// InvalidateKey removes a specific key from cache
func (gcs *GenericCacheService) InvalidateKey(ctx context.Context, family, key string) error {
	if !gcs.enabled() {
		return ErrCacheDisabled
	}

	fullKey := gcs.buildKey(family, key)
	if err := gcs.cache.Delete(ctx, fullKey); err != nil {
		log.ErrorWithContext(ctx, "Cache key invalidation error for key %s: %v", fullKey, err)
		return err
	}
	return nil
}

// InvalidateFamily removes every key of one family.
func (gcs *GenericCacheService) InvalidateFamily(ctx context.Context, family string) error {
	if !gcs.enabled() {
		return ErrCacheDisabled
	}

	pattern := gcs.buildKey(family, "*")
	if err := gcs.cache.DeletePattern(ctx, pattern); err != nil {
		log.ErrorWithContext(ctx, "Cache pattern invalidation error for pattern %s: %v", pattern, err)
		return err
	}
	return nil
}

func (gcs *GenericCacheService) buildKey(family, key string) string {
	return gcs.config.Prefix + family + ":" + key
}
