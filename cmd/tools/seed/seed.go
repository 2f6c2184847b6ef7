// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"resty.dev/v3"

	"github.com/omkarjainak/defisocial/internal/pkg/log"
	postModels "github.com/omkarjainak/defisocial/posts/models"
	userModels "github.com/omkarjainak/defisocial/users/models"
)

type demoUser struct {
	id, name, avatar, post string
}

var demoUsers = []demoUser{
	{"demo-user-1", "Ava Demo", "https://randomuser.me/api/portraits/women/65.jpg", "Hello, this is Ava's first post!"},
	{"demo-user-2", "Ben Demo", "https://randomuser.me/api/portraits/men/68.jpg", "Ben here, excited to join!"},
	{"demo-user-3", "Cleo Demo", "https://randomuser.me/api/portraits/women/69.jpg", "Cleo says hi to everyone!"},
}

// Seeder fills a running deployment with demo data through its public API,
// so every post passes the same author check as real traffic.
type Seeder struct {
	users *resty.Client
	posts *resty.Client
}

func NewSeeder(usersURL, postsURL string, timeout time.Duration) *Seeder {
	return &Seeder{
		users: resty.New().SetBaseURL(usersURL).SetTimeout(timeout),
		posts: resty.New().SetBaseURL(postsURL).SetTimeout(timeout),
	}
}

func (s *Seeder) Close() {
	s.users.Close()
	s.posts.Close()
}

// Run registers the demo users and one post each. Users that already exist are kept.
func (s *Seeder) Run(ctx context.Context) ([]*postModels.Post, error) {
	for _, u := range demoUsers {
		if err := s.registerUser(ctx, u); err != nil {
			return nil, err
		}
	}

	created := make([]*postModels.Post, 0, len(demoUsers))
	for _, u := range demoUsers {
		post, err := s.createPost(ctx, u)
		if err != nil {
			return created, err
		}
		created = append(created, post)
	}
	return created, nil
}

func (s *Seeder) registerUser(ctx context.Context, u demoUser) error {
	avatar := u.avatar
	res, err := s.users.R().
		WithContext(ctx).
		SetBody(&userModels.RegisterUserRequest{
			ID:        u.id,
			Username:  u.id,
			Name:      u.name,
			Bio:       fmt.Sprintf("Hi, I'm %s!", u.name),
			AvatarURL: &avatar,
		}).
		Post("/users")
	if err != nil {
		return fmt.Errorf("register %s: %w", u.id, err)
	}

	switch res.StatusCode() {
	case http.StatusCreated:
		log.Info("Registered %s", u.id)
	case http.StatusConflict:
		log.Warn("%s already registered, keeping it", u.id)
	default:
		return fmt.Errorf("register %s: unexpected status %d: %s", u.id, res.StatusCode(), res.String())
	}
	return nil
}

func (s *Seeder) createPost(ctx context.Context, u demoUser) (*postModels.Post, error) {
	res, err := s.posts.R().
		WithContext(ctx).
		SetBody(&postModels.CreatePostRequest{AuthorID: u.id, Content: u.post}).
		SetResult(&postModels.Post{}).
		Post("/posts")
	if err != nil {
		return nil, fmt.Errorf("post for %s: %w", u.id, err)
	}
	if res.StatusCode() != http.StatusCreated {
		return nil, fmt.Errorf("post for %s: unexpected status %d: %s", u.id, res.StatusCode(), res.String())
	}

	post := res.Result().(*postModels.Post)
	log.Info("Created post %s", post.ID)
	return post, nil
}
