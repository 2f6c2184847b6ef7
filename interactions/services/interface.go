// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"

	"github.com/omkarjainak/defisocial/interactions/models"
)

// InteractionService records likes and comments. It never checks that the
// post exists.
type InteractionService interface {
	LikePost(ctx context.Context, userID, postID string) error
	UnlikePost(ctx context.Context, userID, postID string) error
	GetLikes(ctx context.Context, postID string) ([]string, error)
	AddComment(ctx context.Context, req *models.AddCommentRequest) (*models.Comment, error)
	GetComments(ctx context.Context, postID string) ([]*models.Comment, error)
}
