// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	"github.com/omkarjainak/defisocial/users/models"
)

// UserRepository owns the profile store. Implementations are safe for
// concurrent use and never hand out memory they still hold.
type UserRepository interface {
	// Register stores profile under profile.ID, overwriting any previous profile
	// with that id. It fails with ErrUsernameTaken when any stored profile,
	// including the one being overwritten, already uses profile.Username.
	Register(ctx context.Context, profile *models.UserProfile) error

	// Update applies fn to the stored profile and persists the result.
	// It fails with ErrUserNotFound when id is unknown.
	Update(ctx context.Context, id string, fn func(*models.UserProfile)) (*models.UserProfile, error)

	// FindByID returns (nil, nil) when id is unknown.
	FindByID(ctx context.Context, id string) (*models.UserProfile, error)
}
