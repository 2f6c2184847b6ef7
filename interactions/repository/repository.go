// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	"github.com/omkarjainak/defisocial/interactions/models"
)

// LikeRepository keeps one set of user ids per post.
type LikeRepository interface {
	Like(ctx context.Context, userID, postID string) error
	Unlike(ctx context.Context, userID, postID string) error

	// Likes returns sorted user ids, empty for unknown posts.
	Likes(ctx context.Context, postID string) ([]string, error)
}

// CommentRepository keeps one append-only list per post.
type CommentRepository interface {
	// Append fails with ErrCommentIDCollision when the id is already stored.
	Append(ctx context.Context, comment *models.Comment) error

	// Comments returns comments in creation order, empty for unknown posts.
	Comments(ctx context.Context, postID string) ([]*models.Comment, error)
}
