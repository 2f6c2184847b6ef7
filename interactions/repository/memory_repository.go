// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/samber/lo"

	interactionErrors "github.com/omkarjainak/defisocial/interactions/errors"
	"github.com/omkarjainak/defisocial/interactions/models"
)

type memoryLikeRepository struct {
	mu    sync.RWMutex
	likes map[string]map[string]struct{}
}

func NewMemoryLikeRepository() LikeRepository {
	return &memoryLikeRepository{likes: make(map[string]map[string]struct{})}
}

func (r *memoryLikeRepository) Like(ctx context.Context, userID, postID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.likes[postID]
	if !ok {
		set = make(map[string]struct{})
		r.likes[postID] = set
	}
	set[userID] = struct{}{}
	return nil
}

func (r *memoryLikeRepository) Unlike(ctx context.Context, userID, postID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.likes[postID]
	if !ok {
		return nil
	}
	delete(set, userID)
	if len(set) == 0 {
		delete(r.likes, postID)
	}
	return nil
}

func (r *memoryLikeRepository) Likes(ctx context.Context, postID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := lo.Keys(r.likes[postID])
	sort.Strings(users)
	return users, nil
}

type memoryCommentRepository struct {
	mu       sync.RWMutex
	comments map[string][]*models.Comment
	ids      map[string]struct{}
}

func NewMemoryCommentRepository() CommentRepository {
	return &memoryCommentRepository{
		comments: make(map[string][]*models.Comment),
		ids:      make(map[string]struct{}),
	}
}

func (r *memoryCommentRepository) Append(ctx context.Context, comment *models.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.ids[comment.ID]; exists {
		return interactionErrors.ErrCommentIDCollision
	}
	r.ids[comment.ID] = struct{}{}
	r.comments[comment.PostID] = append(r.comments[comment.PostID], comment.Clone())
	return nil
}

func (r *memoryCommentRepository) Comments(ctx context.Context, postID string) ([]*models.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return lo.Map(r.comments[postID], func(c *models.Comment, _ int) *models.Comment {
		return c.Clone()
	}), nil
}
