// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package cache

import (
	"fmt"

	"github.com/omkarjainak/defisocial/internal/platform/config"
)

// NewCache builds the backend named by cfg.Backend.
func NewCache(cfg *config.CacheConfig) (Cache, error) {
	if cfg == nil {
		cfg = DefaultCacheConfig()
	}

	switch CacheType(cfg.Backend) {
	case CacheTypeMemory:
		return NewMemoryCache(cfg), nil
	case CacheTypeRedis:
		return NewRedisCache(cfg)
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidCacheType, cfg.Backend)
	}
}
