// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"errors"

	"github.com/omkarjainak/defisocial/internal/pkg/log"
	userErrors "github.com/omkarjainak/defisocial/users/errors"
	"github.com/omkarjainak/defisocial/users/models"
	"github.com/omkarjainak/defisocial/users/repository"
	"github.com/omkarjainak/defisocial/users/validation"
)

type userService struct {
	repo repository.UserRepository
}

var _ UserService = (*userService)(nil)

// NewUserService creates the service over its one store.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) RegisterUser(ctx context.Context, req *models.RegisterUserRequest) (*models.UserProfile, error) {
	if err := validation.ValidateRegisterUserRequest(req); err != nil {
		return nil, userErrors.WrapValidationError(err)
	}

	profile := req.ToProfile()
	if err := s.repo.Register(ctx, profile); err != nil {
		if errors.Is(err, userErrors.ErrUsernameTaken) {
			log.WarnWithContext(ctx, "registration of %s rejected: username %q taken", req.ID, req.Username)
		}
		return nil, err
	}

	log.InfoWithContext(ctx, "registered user %s as %q", profile.ID, profile.Username)
	return profile, nil
}

func (s *userService) UpdateProfile(ctx context.Context, id string, req *models.UpdateProfileRequest) (*models.UserProfile, error) {
	if err := validation.ValidateUserID(id); err != nil {
		return nil, userErrors.WrapValidationError(err)
	}
	if err := validation.ValidateUpdateProfileRequest(req); err != nil {
		return nil, userErrors.WrapValidationError(err)
	}

	return s.repo.Update(ctx, id, req.Apply)
}

func (s *userService) GetUser(ctx context.Context, id string) (*models.UserProfile, error) {
	if err := validation.ValidateUserID(id); err != nil {
		return nil, userErrors.WrapValidationError(err)
	}
	return s.repo.FindByID(ctx, id)
}
