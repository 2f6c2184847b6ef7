// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"
	"sync"

	userErrors "github.com/omkarjainak/defisocial/users/errors"
	"github.com/omkarjainak/defisocial/users/models"
)

type memoryUserRepository struct {
	mu       sync.RWMutex
	profiles map[string]*models.UserProfile
}

// NewMemoryUserRepository returns a map-backed repository.
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{profiles: make(map[string]*models.UserProfile)}
}

func (r *memoryUserRepository) Register(ctx context.Context, profile *models.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Linear scan: uniqueness is only checked here, there is no username index.
	for _, existing := range r.profiles {
		if existing.Username == profile.Username {
			return userErrors.ErrUsernameTaken
		}
	}

	r.profiles[profile.ID] = profile.Clone()
	return nil
}

func (r *memoryUserRepository) Update(ctx context.Context, id string, fn func(*models.UserProfile)) (*models.UserProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.profiles[id]
	if !ok {
		return nil, userErrors.ErrUserNotFound
	}

	updated := stored.Clone()
	fn(updated)
	updated.ID = stored.ID
	updated.Username = stored.Username
	r.profiles[id] = updated

	return updated.Clone(), nil
}

func (r *memoryUserRepository) FindByID(ctx context.Context, id string) (*models.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.profiles[id].Clone(), nil
}
