// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import "context"

// GraphRepository keeps the follow relation in both directions. Every mutation
// updates followers and following together, so readers never see one side only.
type GraphRepository interface {
	Follow(ctx context.Context, follower, followee string) error
	Unfollow(ctx context.Context, follower, followee string) error

	// Followers and Following return sorted ids, empty for unknown users.
	Followers(ctx context.Context, userID string) ([]string, error)
	Following(ctx context.Context, userID string) ([]string, error)
}
