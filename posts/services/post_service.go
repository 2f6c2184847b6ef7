// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"errors"
	"strconv"
	"sync/atomic"

	"github.com/omkarjainak/defisocial/internal/cache"
	"github.com/omkarjainak/defisocial/internal/idgen"
	"github.com/omkarjainak/defisocial/internal/metrics"
	"github.com/omkarjainak/defisocial/internal/pkg/log"
	postsErrors "github.com/omkarjainak/defisocial/posts/errors"
	"github.com/omkarjainak/defisocial/posts/models"
	"github.com/omkarjainak/defisocial/posts/repository"
	"github.com/omkarjainak/defisocial/posts/validation"
	sharedInterfaces "github.com/omkarjainak/defisocial/shared/interfaces"
)

const (
	cacheFamilyPost  = "post"
	cacheFamilyPosts = "posts"
)

// postService implements the PostService interface
type postService struct {
	repo         repository.PostRepository
	users        sharedInterfaces.UserLookup
	minter       *idgen.Minter
	cacheService *cache.GenericCacheService

	// listGen changes on every admitted post so a list read that raced a
	// create is cached under a key nobody reads any more.
	listGen atomic.Uint64
}

var _ PostService = (*postService)(nil)

// NewPostService creates a new instance of the post service.
// cacheService may be nil, which disables caching.
func NewPostService(repo repository.PostRepository, users sharedInterfaces.UserLookup, minter *idgen.Minter, cacheService *cache.GenericCacheService) PostService {
	if minter == nil {
		minter = idgen.NewMinter(nil)
	}
	return &postService{
		repo:         repo,
		users:        users,
		minter:       minter,
		cacheService: cacheService,
	}
}

// CreatePost checks the author with the users service, then mints and stores
// the post. The check and the insert are not atomic: a user removed in between
// would still get the post.
func (s *postService) CreatePost(ctx context.Context, req *models.CreatePostRequest) (*models.Post, error) {
	if err := validation.ValidateCreatePostRequest(req); err != nil {
		metrics.PostsCreated.WithLabelValues(metrics.OutcomeValidationFailed).Inc()
		return nil, postsErrors.WrapValidationError(err)
	}

	log.InfoWithContext(ctx, "createPost: checking that user %s exists", req.AuthorID)
	author, err := s.users.GetUser(ctx, req.AuthorID)
	if err != nil {
		log.ErrorWithContext(ctx, "createPost: user check for %s failed: %v", req.AuthorID, err)
		metrics.PostsCreated.WithLabelValues(metrics.OutcomeUpstreamError).Inc()
		return nil, postsErrors.WrapUpstreamError(err)
	}
	if author == nil {
		log.WarnWithContext(ctx, "createPost: user %s does not exist, rejecting post", req.AuthorID)
		metrics.PostsCreated.WithLabelValues(metrics.OutcomeAuthorNotFound).Inc()
		return nil, postsErrors.ErrAuthorNotFound
	}
	log.InfoWithContext(ctx, "createPost: user %s found (%s)", author.ID, author.Username)

	id, ts := s.minter.Mint(req.AuthorID)
	post := &models.Post{
		ID:        id,
		AuthorID:  req.AuthorID,
		Content:   req.Content,
		Timestamp: ts,
		Version:   models.CurrentVersion,
	}

	if err := s.repo.Insert(ctx, post); err != nil {
		if errors.Is(err, postsErrors.ErrPostIDCollision) {
			log.ErrorWithContext(ctx, "createPost: id %s already stored", id)
			metrics.PostsCreated.WithLabelValues(metrics.OutcomeIDCollision).Inc()
		}
		return nil, err
	}

	s.listGen.Add(1)
	s.invalidateList(ctx)

	metrics.PostsCreated.WithLabelValues(metrics.OutcomeAdmitted).Inc()
	log.InfoWithContext(ctx, "createPost: stored post %s", id)
	return post, nil
}

func (s *postService) ListPosts(ctx context.Context) ([]*models.Post, error) {
	key := strconv.FormatUint(s.listGen.Load(), 10)

	var cached []*models.Post
	if err := s.cacheService.GetCached(ctx, cacheFamilyPosts, key, &cached); err == nil && cached != nil {
		return cached, nil
	}

	posts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	_ = s.cacheService.CacheData(ctx, cacheFamilyPosts, key, posts, 0)
	return posts, nil
}

func (s *postService) GetPost(ctx context.Context, id string) (*models.Post, error) {
	if err := validation.ValidatePostID(id); err != nil {
		return nil, postsErrors.WrapValidationError(err)
	}

	var cached models.Post
	if err := s.cacheService.GetCached(ctx, cacheFamilyPost, id, &cached); err == nil {
		return &cached, nil
	}

	post, err := s.repo.FindByID(ctx, id)
	if err != nil || post == nil {
		return post, err
	}

	// Posts never change after insert, so the entry can only go stale by TTL.
	_ = s.cacheService.CacheData(ctx, cacheFamilyPost, id, post, 0)
	return post, nil
}

func (s *postService) invalidateList(ctx context.Context) {
	if err := s.cacheService.InvalidateFamily(ctx, cacheFamilyPosts); err != nil && !errors.Is(err, cache.ErrCacheDisabled) {
		log.WarnWithContext(ctx, "Failed to invalidate posts list cache: %v", err)
	}
}
