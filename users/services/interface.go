// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"

	"github.com/omkarjainak/defisocial/users/models"
)

type UserService interface {
	RegisterUser(ctx context.Context, req *models.RegisterUserRequest) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, id string, req *models.UpdateProfileRequest) (*models.UserProfile, error)

	// GetUser returns (nil, nil) when id is unknown.
	GetUser(ctx context.Context, id string) (*models.UserProfile, error)
}
