// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"fmt"

	"github.com/omkarjainak/defisocial/graph/repository"
	"github.com/omkarjainak/defisocial/internal/platform"
)

// NewGraphRepositoryFromBase picks the store for DB_TYPE, migrating the schema first when postgres is used.
func NewGraphRepositoryFromBase(ctx context.Context, base *platform.BaseService) (repository.GraphRepository, error) {
	if !base.UsesPostgres() {
		return repository.NewMemoryGraphRepository(), nil
	}
	if err := base.Migrate(ctx, repository.Schema...); err != nil {
		return nil, fmt.Errorf("failed to migrate graph schema: %w", err)
	}
	return repository.NewPostgresGraphRepository(base.Postgres), nil
}
