// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userErrors "github.com/omkarjainak/defisocial/users/errors"
	"github.com/omkarjainak/defisocial/users/models"
)

func strPtr(s string) *string { return &s }

// runUserRepositoryContract exercises behaviour every UserRepository must share.
func runUserRepositoryContract(t *testing.T, newRepo func(t *testing.T) UserRepository) {
	ctx := context.Background()

	t.Run("RegisterAndFind", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Register(ctx, &models.UserProfile{
			ID: "alice", Username: "alice1", Name: "Alice", Bio: "hi", AvatarURL: strPtr("https://img/a.png"),
		}))

		got, err := repo.FindByID(ctx, "alice")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "alice1", got.Username)
		assert.Equal(t, "https://img/a.png", *got.AvatarURL)
		assert.Nil(t, got.CoverURL)
	})

	t.Run("FindMissingReturnsNil", func(t *testing.T) {
		repo := newRepo(t)
		got, err := repo.FindByID(ctx, "nobody")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("UsernameTakenRegardlessOfID", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Register(ctx, &models.UserProfile{ID: "alice", Username: "alice1"}))

		err := repo.Register(ctx, &models.UserProfile{ID: "mallory", Username: "alice1"})
		assert.ErrorIs(t, err, userErrors.ErrUsernameTaken)

		err = repo.Register(ctx, &models.UserProfile{ID: "alice", Username: "alice1"})
		assert.ErrorIs(t, err, userErrors.ErrUsernameTaken)

		got, _ := repo.FindByID(ctx, "mallory")
		assert.Nil(t, got)
	})

	t.Run("UsernameIsCaseSensitive", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Register(ctx, &models.UserProfile{ID: "alice", Username: "alice1"}))
		assert.NoError(t, repo.Register(ctx, &models.UserProfile{ID: "alice2", Username: "Alice1"}))
	})

	t.Run("ReRegisterSameIDWithFreeUsernameOverwrites", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Register(ctx, &models.UserProfile{ID: "alice", Username: "alice1", Name: "Alice"}))
		require.NoError(t, repo.Register(ctx, &models.UserProfile{ID: "alice", Username: "alice2", Name: "Alice Two"}))

		got, err := repo.FindByID(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, "alice2", got.Username)
		assert.Equal(t, "Alice Two", got.Name)

		// the old username is free again
		assert.NoError(t, repo.Register(ctx, &models.UserProfile{ID: "other", Username: "alice1"}))
	})

	t.Run("UpdateKeepsIdentity", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Register(ctx, &models.UserProfile{ID: "alice", Username: "alice1", CoverURL: strPtr("c")}))

		updated, err := repo.Update(ctx, "alice", func(p *models.UserProfile) {
			p.Name = "Alice B"
			p.Username = "hijack"
			p.CoverURL = nil
		})
		require.NoError(t, err)
		assert.Equal(t, "alice1", updated.Username)
		assert.Equal(t, "Alice B", updated.Name)
		assert.Nil(t, updated.CoverURL)

		got, _ := repo.FindByID(ctx, "alice")
		assert.Equal(t, "Alice B", got.Name)
		assert.Equal(t, "alice1", got.Username)
	})

	t.Run("UpdateMissing", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.Update(ctx, "ghost", func(p *models.UserProfile) {})
		assert.ErrorIs(t, err, userErrors.ErrUserNotFound)
	})

	t.Run("ConcurrentRegistrationOneWinner", func(t *testing.T) {
		repo := newRepo(t)

		const n = 16
		var wg sync.WaitGroup
		errs := make(chan error, n)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				errs <- repo.Register(ctx, &models.UserProfile{ID: fmt.Sprintf("u%d", i), Username: "popular"})
			}(i)
		}
		wg.Wait()
		close(errs)

		var ok, taken int
		for err := range errs {
			switch {
			case err == nil:
				ok++
			case assert.ErrorIs(t, err, userErrors.ErrUsernameTaken):
				taken++
			}
		}
		assert.Equal(t, 1, ok)
		assert.Equal(t, n-1, taken)
	})
}
