// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"

	interactionErrors "github.com/omkarjainak/defisocial/interactions/errors"
	"github.com/omkarjainak/defisocial/interactions/models"
	"github.com/omkarjainak/defisocial/interactions/repository"
	"github.com/omkarjainak/defisocial/interactions/validation"
	"github.com/omkarjainak/defisocial/internal/idgen"
	"github.com/omkarjainak/defisocial/internal/metrics"
	"github.com/omkarjainak/defisocial/internal/pkg/log"
)

type interactionService struct {
	likes    repository.LikeRepository
	comments repository.CommentRepository
	minter   *idgen.Minter
}

var _ InteractionService = (*interactionService)(nil)

// NewInteractionService wires both stores. A nil minter uses the system clock.
func NewInteractionService(likes repository.LikeRepository, comments repository.CommentRepository, minter *idgen.Minter) InteractionService {
	if minter == nil {
		minter = idgen.NewMinter(nil)
	}
	return &interactionService{likes: likes, comments: comments, minter: minter}
}

func (s *interactionService) LikePost(ctx context.Context, userID, postID string) error {
	if err := validation.ValidateLike(userID, postID); err != nil {
		return interactionErrors.WrapValidationError(err)
	}
	if err := s.likes.Like(ctx, userID, postID); err != nil {
		return err
	}
	metrics.Interactions.WithLabelValues("like").Inc()
	return nil
}

// UnlikePost is a no-op when userID never liked postID.
func (s *interactionService) UnlikePost(ctx context.Context, userID, postID string) error {
	if err := validation.ValidateLike(userID, postID); err != nil {
		return interactionErrors.WrapValidationError(err)
	}
	if err := s.likes.Unlike(ctx, userID, postID); err != nil {
		return err
	}
	metrics.Interactions.WithLabelValues("unlike").Inc()
	return nil
}

func (s *interactionService) GetLikes(ctx context.Context, postID string) ([]string, error) {
	if err := validation.ValidatePostID(postID); err != nil {
		return nil, interactionErrors.WrapValidationError(err)
	}
	return s.likes.Likes(ctx, postID)
}

func (s *interactionService) AddComment(ctx context.Context, req *models.AddCommentRequest) (*models.Comment, error) {
	if err := validation.ValidateAddCommentRequest(req); err != nil {
		return nil, interactionErrors.WrapValidationError(err)
	}

	id, ts := s.minter.Mint(req.UserID)
	comment := &models.Comment{
		ID:        id,
		PostID:    req.PostID,
		AuthorID:  req.UserID,
		Content:   req.Content,
		Timestamp: ts,
	}
	if err := s.comments.Append(ctx, comment); err != nil {
		log.ErrorWithContext(ctx, "addComment %s on %s failed: %v", id, req.PostID, err)
		return nil, err
	}

	metrics.Interactions.WithLabelValues("comment").Inc()
	log.InfoWithContext(ctx, "comment %s added to post %s", id, req.PostID)
	return comment, nil
}

func (s *interactionService) GetComments(ctx context.Context, postID string) ([]*models.Comment, error) {
	if err := validation.ValidatePostID(postID); err != nil {
		return nil, interactionErrors.WrapValidationError(err)
	}
	return s.comments.Comments(ctx, postID)
}
