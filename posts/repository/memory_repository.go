// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"
	"sync"

	postsErrors "github.com/omkarjainak/defisocial/posts/errors"
	"github.com/omkarjainak/defisocial/posts/models"
)

type memoryPostRepository struct {
	mu    sync.RWMutex
	posts map[string]*models.Post
	order []string
}

func NewMemoryPostRepository() PostRepository {
	return &memoryPostRepository{posts: make(map[string]*models.Post)}
}

func (r *memoryPostRepository) Insert(ctx context.Context, post *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.posts[post.ID]; exists {
		return postsErrors.ErrPostIDCollision
	}
	r.posts[post.ID] = post.Clone()
	r.order = append(r.order, post.ID)
	return nil
}

func (r *memoryPostRepository) FindByID(ctx context.Context, id string) (*models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.posts[id].Clone(), nil
}

func (r *memoryPostRepository) List(ctx context.Context) ([]*models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Post, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.posts[id].Clone())
	}
	return out, nil
}
