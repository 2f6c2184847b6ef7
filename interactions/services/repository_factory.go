// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"fmt"

	"github.com/omkarjainak/defisocial/interactions/repository"
	"github.com/omkarjainak/defisocial/internal/platform"
)

// NewRepositoriesFromBase picks the like and comment stores for DB_TYPE.
func NewRepositoriesFromBase(ctx context.Context, base *platform.BaseService) (repository.LikeRepository, repository.CommentRepository, error) {
	if !base.UsesPostgres() {
		return repository.NewMemoryLikeRepository(), repository.NewMemoryCommentRepository(), nil
	}
	if err := base.Migrate(ctx, repository.Schema...); err != nil {
		return nil, nil, fmt.Errorf("failed to migrate interactions schema: %w", err)
	}
	return repository.NewPostgresLikeRepository(base.Postgres), repository.NewPostgresCommentRepository(base.Postgres), nil
}
