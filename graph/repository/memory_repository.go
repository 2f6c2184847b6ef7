// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"
	"sync"
)

type memoryGraphRepository struct {
	mu        sync.RWMutex
	followers map[string]stringSet
	following map[string]stringSet
}

func NewMemoryGraphRepository() GraphRepository {
	return &memoryGraphRepository{
		followers: make(map[string]stringSet),
		following: make(map[string]stringSet),
	}
}

func (r *memoryGraphRepository) Follow(ctx context.Context, follower, followee string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	add(r.following, follower, followee)
	add(r.followers, followee, follower)
	return nil
}

func (r *memoryGraphRepository) Unfollow(ctx context.Context, follower, followee string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	remove(r.following, follower, followee)
	remove(r.followers, followee, follower)
	return nil
}

func (r *memoryGraphRepository) Followers(ctx context.Context, userID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return sorted(r.followers[userID]), nil
}

func (r *memoryGraphRepository) Following(ctx context.Context, userID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return sorted(r.following[userID]), nil
}
