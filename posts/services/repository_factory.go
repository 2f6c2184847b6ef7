// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"fmt"

	"github.com/omkarjainak/defisocial/internal/platform"
	"github.com/omkarjainak/defisocial/posts/repository"
)

// NewPostRepositoryFromBase picks the store for DB_TYPE, migrating the schema first when postgres is used.
func NewPostRepositoryFromBase(ctx context.Context, base *platform.BaseService) (repository.PostRepository, error) {
	if !base.UsesPostgres() {
		return repository.NewMemoryPostRepository(), nil
	}
	if err := base.Migrate(ctx, repository.Schema...); err != nil {
		return nil, fmt.Errorf("failed to migrate posts schema: %w", err)
	}
	return repository.NewPostgresPostRepository(base.Postgres), nil
}
