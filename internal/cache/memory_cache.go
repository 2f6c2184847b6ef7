// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package cache

import (
	"context"
	"path"
	"sync"
	"sync/atomic"
	"time"

	"github.com/omkarjainak/defisocial/internal/platform/config"
)

// cacheItem represents an item in the memory cache
type cacheItem struct {
	value      []byte
	expiration time.Time
}

func (i *cacheItem) expired(now time.Time) bool {
	return now.After(i.expiration)
}

func (i *cacheItem) size(key string) int64 {
	// key + value + estimated bookkeeping overhead
	return int64(len(key) + len(i.value) + 64)
}

// MemoryCache implements Cache with a map guarded by an RWMutex.
type MemoryCache struct {
	mu            sync.RWMutex
	items         map[string]*cacheItem
	ttl           time.Duration
	maxMemory     int64
	currentMemory int64
	closed        bool

	hits      int64
	misses    int64
	evictions int64

	stopCleanup chan struct{}
	closeOnce   sync.Once
}

// NewMemoryCache creates an in-memory cache and starts its expiry sweeper.
func NewMemoryCache(cfg *config.CacheConfig) *MemoryCache {
	if cfg == nil {
		cfg = DefaultCacheConfig()
	}

	c := &MemoryCache{
		items:       make(map[string]*cacheItem),
		ttl:         cfg.TTL,
		maxMemory:   cfg.MaxMemory,
		stopCleanup: make(chan struct{}),
	}

	if cfg.CleanupInterval > 0 {
		go c.sweep(cfg.CleanupInterval)
	}
	return c
}

// Get retrieves a value from cache
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	if c.closed {
		c.mu.RUnlock()
		return nil, ErrCacheDisabled
	}
	item, ok := c.items[key]
	c.mu.RUnlock()

	if !ok || item.expired(time.Now()) {
		atomic.AddInt64(&c.misses, 1)
		if ok {
			c.dropIfSame(key, item)
		}
		return nil, ErrKeyNotFound
	}

	atomic.AddInt64(&c.hits, 1)
	result := make([]byte, len(item.value))
	copy(result, item.value)
	return result, nil
}

// Set stores a copy of value.
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = c.ttl
	}

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)
	item := &cacheItem{value: valueCopy, expiration: time.Now().Add(ttl)}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrCacheDisabled
	}

	c.removeLocked(key)
	c.items[key] = item
	c.currentMemory += item.size(key)
	c.evictLocked(key)
	return nil
}

// Delete removes a value from cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(key)
	return nil
}

// DeletePattern removes every key matched by pattern.
func (c *MemoryCache) DeletePattern(ctx context.Context, pattern string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.items {
		if matched, _ := path.Match(pattern, key); matched {
			c.removeLocked(key)
		}
	}
	return nil
}

// Exists checks if a live key exists in cache
func (c *MemoryCache) Exists(ctx context.Context, key string) (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.items[key]
	return ok && !item.expired(time.Now()), nil
}

// Close stops the sweeper and drops every entry.
func (c *MemoryCache) Close() error {
	c.closeOnce.Do(func() {
		close(c.stopCleanup)

		c.mu.Lock()
		c.items = make(map[string]*cacheItem)
		c.currentMemory = 0
		c.closed = true
		c.mu.Unlock()
	})
	return nil
}

// Stats returns cache statistics
func (c *MemoryCache) Stats() CacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	now := time.Now()
	var active int64
	for _, item := range c.items {
		if !item.expired(now) {
			active++
		}
	}

	hits := atomic.LoadInt64(&c.hits)
	misses := atomic.LoadInt64(&c.misses)
	return CacheStats{
		Hits:        hits,
		Misses:      misses,
		HitRatio:    hitRatio(hits, misses),
		Keys:        active,
		MemoryUsage: c.currentMemory,
		Evictions:   atomic.LoadInt64(&c.evictions),
	}
}

func (c *MemoryCache) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.removeExpired()
		case <-c.stopCleanup:
			return
		}
	}
}

func (c *MemoryCache) removeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for key, item := range c.items {
		if item.expired(now) {
			c.removeLocked(key)
		}
	}
}

// dropIfSame removes key only when it still holds item, so a concurrent Set survives.
func (c *MemoryCache) dropIfSame(key string, item *cacheItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.items[key] == item {
		c.removeLocked(key)
	}
}

func (c *MemoryCache) removeLocked(key string) {
	if item, ok := c.items[key]; ok {
		delete(c.items, key)
		c.currentMemory -= item.size(key)
	}
}

// evictLocked drops expired entries, then arbitrary ones, until the cache
// fits in maxMemory again. The entry at keep survives.
func (c *MemoryCache) evictLocked(keep string) {
	if c.maxMemory <= 0 || c.currentMemory <= c.maxMemory {
		return
	}

	now := time.Now()
	for key, item := range c.items {
		if key != keep && item.expired(now) {
			c.removeLocked(key)
			atomic.AddInt64(&c.evictions, 1)
		}
	}

	for key := range c.items {
		if c.currentMemory <= c.maxMemory {
			return
		}
		if key == keep {
			continue
		}
		c.removeLocked(key)
		atomic.AddInt64(&c.evictions, 1)
	}
}
