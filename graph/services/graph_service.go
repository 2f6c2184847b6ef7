// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"

	graphErrors "github.com/omkarjainak/defisocial/graph/errors"
	"github.com/omkarjainak/defisocial/graph/repository"
	"github.com/omkarjainak/defisocial/graph/validation"
	"github.com/omkarjainak/defisocial/internal/metrics"
	"github.com/omkarjainak/defisocial/internal/pkg/log"
)

type graphService struct {
	repo repository.GraphRepository
}

var _ GraphService = (*graphService)(nil)

func NewGraphService(repo repository.GraphRepository) GraphService {
	return &graphService{repo: repo}
}

// Follow is idempotent. Neither user has to exist.
func (s *graphService) Follow(ctx context.Context, follower, followee string) error {
	if err := validation.ValidateEdge(follower, followee); err != nil {
		return graphErrors.WrapValidationError(err)
	}
	if err := s.repo.Follow(ctx, follower, followee); err != nil {
		log.ErrorWithContext(ctx, "follow %s -> %s failed: %v", follower, followee, err)
		return err
	}

	metrics.GraphMutations.WithLabelValues("follow").Inc()
	log.DebugWithContext(ctx, "%s follows %s", follower, followee)
	return nil
}

// Unfollow is idempotent.
func (s *graphService) Unfollow(ctx context.Context, follower, followee string) error {
	if err := validation.ValidateEdge(follower, followee); err != nil {
		return graphErrors.WrapValidationError(err)
	}
	if err := s.repo.Unfollow(ctx, follower, followee); err != nil {
		log.ErrorWithContext(ctx, "unfollow %s -> %s failed: %v", follower, followee, err)
		return err
	}

	metrics.GraphMutations.WithLabelValues("unfollow").Inc()
	log.DebugWithContext(ctx, "%s unfollowed %s", follower, followee)
	return nil
}

func (s *graphService) GetFollowers(ctx context.Context, userID string) ([]string, error) {
	if err := validation.ValidateUserID(userID); err != nil {
		return nil, graphErrors.WrapValidationError(err)
	}
	return s.repo.Followers(ctx, userID)
}

func (s *graphService) GetFollowing(ctx context.Context, userID string) ([]string, error) {
	if err := validation.ValidateUserID(userID); err != nil {
		return nil, graphErrors.WrapValidationError(err)
	}
	return s.repo.Following(ctx, userID)
}
