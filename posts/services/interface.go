// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"

	"github.com/omkarjainak/defisocial/posts/models"
)

// PostService admits posts only for authors the users service knows.
type PostService interface {
	CreatePost(ctx context.Context, req *models.CreatePostRequest) (*models.Post, error)
	ListPosts(ctx context.Context) ([]*models.Post, error)

	// GetPost returns (nil, nil) when id is unknown.
	GetPost(ctx context.Context, id string) (*models.Post, error)
}
