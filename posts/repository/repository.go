// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	"github.com/omkarjainak/defisocial/posts/models"
)

// PostRepository owns the post store.
type PostRepository interface {
	// Insert stores post only if its id is free, otherwise ErrPostIDCollision.
	Insert(ctx context.Context, post *models.Post) error

	// FindByID returns (nil, nil) when id is unknown.
	FindByID(ctx context.Context, id string) (*models.Post, error)

	// List returns every stored post in store order.
	List(ctx context.Context) ([]*models.Post, error)
}
