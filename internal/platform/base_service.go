// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package platform

import (
	"context"
	"errors"
	"fmt"

	"github.com/omkarjainak/defisocial/internal/cache"
	"github.com/omkarjainak/defisocial/internal/database/postgres"
	"github.com/omkarjainak/defisocial/internal/pkg/log"
	platformconfig "github.com/omkarjainak/defisocial/internal/platform/config"
)

// BaseService holds the process-wide resources every service builds on:
// the postgres pool (nil when DB_TYPE=memory) and the cache backend (nil when disabled).
type BaseService struct {
	Config   *platformconfig.Config
	Postgres *postgres.Client
	Cache    cache.Cache
}

// NewBaseService creates a new base service instance from platform config
func NewBaseService(ctx context.Context, cfg *platformconfig.Config) (*BaseService, error) {
	if cfg == nil {
		return nil, fmt.Errorf("platform configuration is required")
	}

	base := &BaseService{Config: cfg}

	if cfg.Database.Type == platformconfig.DatabaseTypePostgres {
		client, err := postgres.NewClient(ctx, cfg.Database.Postgres, postgres.Options{ConnectTimeout: 10})
		if err != nil {
			return nil, fmt.Errorf("failed to create postgres client: %w", err)
		}
		base.Postgres = client
		log.Info("Connected to PostgreSQL at %s:%d/%s", cfg.Database.Postgres.Host, cfg.Database.Postgres.Port, cfg.Database.Postgres.Database)
	}

	if cfg.Cache.Enabled {
		c, err := cache.NewCache(&cfg.Cache)
		if err != nil {
			base.Close()
			return nil, fmt.Errorf("failed to create cache: %w", err)
		}
		base.Cache = c
		log.Info("Cache enabled with %s backend", cfg.Cache.Backend)
	}

	return base, nil
}

// UsesPostgres reports whether repositories should be backed by postgres.
func (s *BaseService) UsesPostgres() bool {
	return s.Postgres != nil
}

// Migrate applies schema statements when postgres is in use.
func (s *BaseService) Migrate(ctx context.Context, schema ...string) error {
	if !s.UsesPostgres() {
		return nil
	}
	return s.Postgres.Migrate(ctx, schema...)
}

// CacheService returns nil when caching is disabled; callers treat that as always-miss.
func (s *BaseService) CacheService() *cache.GenericCacheService {
	if s.Cache == nil {
		return nil
	}
	return cache.NewGenericCacheService(s.Cache, &s.Config.Cache)
}

func (s *BaseService) Close() error {
	var errs []error
	if s.Cache != nil {
		errs = append(errs, s.Cache.Close())
	}
	if s.Postgres != nil {
		errs = append(errs, s.Postgres.Close())
	}
	return errors.Join(errs...)
}
