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
)

func runGraphRepositoryContract(t *testing.T, newRepo func(t *testing.T) GraphRepository) {
	ctx := context.Background()

	adjacency := func(t *testing.T, repo GraphRepository, user string) ([]string, []string) {
		t.Helper()
		followers, err := repo.Followers(ctx, user)
		require.NoError(t, err)
		following, err := repo.Following(ctx, user)
		require.NoError(t, err)
		return followers, following
	}

	t.Run("FollowIsMirrored", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Follow(ctx, "alice", "bob"))

		followers, following := adjacency(t, repo, "bob")
		assert.Equal(t, []string{"alice"}, followers)
		assert.Empty(t, following)

		followers, following = adjacency(t, repo, "alice")
		assert.Empty(t, followers)
		assert.Equal(t, []string{"bob"}, following)
	})

	t.Run("FollowIsIdempotent", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Follow(ctx, "alice", "bob"))
		require.NoError(t, repo.Follow(ctx, "alice", "bob"))

		followers, _ := adjacency(t, repo, "bob")
		assert.Equal(t, []string{"alice"}, followers)
	})

	t.Run("UnfollowRestoresPriorAdjacency", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Follow(ctx, "carol", "bob"))
		beforeFollowers, beforeFollowing := adjacency(t, repo, "bob")

		require.NoError(t, repo.Follow(ctx, "alice", "bob"))
		require.NoError(t, repo.Unfollow(ctx, "alice", "bob"))

		afterFollowers, afterFollowing := adjacency(t, repo, "bob")
		assert.Equal(t, beforeFollowers, afterFollowers)
		assert.Equal(t, beforeFollowing, afterFollowing)

		_, aliceFollowing := adjacency(t, repo, "alice")
		assert.Empty(t, aliceFollowing)
	})

	t.Run("UnfollowWithoutEdgeIsNoop", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Unfollow(ctx, "alice", "bob"))
		followers, following := adjacency(t, repo, "bob")
		assert.NotNil(t, followers)
		assert.NotNil(t, following)
		assert.Empty(t, followers)
	})

	t.Run("SelfFollow", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Follow(ctx, "alice", "alice"))
		followers, following := adjacency(t, repo, "alice")
		assert.Equal(t, []string{"alice"}, followers)
		assert.Equal(t, []string{"alice"}, following)
	})

	t.Run("ListsAreSorted", func(t *testing.T) {
		repo := newRepo(t)
		for _, f := range []string{"zoe", "adam", "mia"} {
			require.NoError(t, repo.Follow(ctx, f, "bob"))
		}
		followers, _ := adjacency(t, repo, "bob")
		assert.Equal(t, []string{"adam", "mia", "zoe"}, followers)
	})

	t.Run("ConcurrentFollowUnfollowStaysMirrored", func(t *testing.T) {
		repo := newRepo(t)
		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				follower := fmt.Sprintf("u%02d", i)
				assert.NoError(t, repo.Follow(ctx, follower, "hub"))
				if i%2 == 0 {
					assert.NoError(t, repo.Unfollow(ctx, follower, "hub"))
				}
			}(i)
		}
		wg.Wait()

		followers, _ := adjacency(t, repo, "hub")
		assert.Len(t, followers, 8)
		for _, f := range followers {
			_, following := adjacency(t, repo, f)
			assert.Equal(t, []string{"hub"}, following)
		}
	})
}
