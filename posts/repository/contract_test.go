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

	postsErrors "github.com/omkarjainak/defisocial/posts/errors"
	"github.com/omkarjainak/defisocial/posts/models"
)

func runPostRepositoryContract(t *testing.T, newRepo func(t *testing.T) PostRepository) {
	ctx := context.Background()

	t.Run("InsertFindList", func(t *testing.T) {
		repo := newRepo(t)
		post := &models.Post{ID: "alice-10", AuthorID: "alice", Content: "hi", Timestamp: 10, Version: models.CurrentVersion}
		require.NoError(t, repo.Insert(ctx, post))

		got, err := repo.FindByID(ctx, "alice-10")
		require.NoError(t, err)
		assert.Equal(t, post, got)

		missing, err := repo.FindByID(ctx, "alice-11")
		require.NoError(t, err)
		assert.Nil(t, missing)

		list, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "alice-10", list[0].ID)
	})

	t.Run("EmptyListIsNotNil", func(t *testing.T) {
		list, err := newRepo(t).List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})

	t.Run("DuplicateInsertIsCollision", func(t *testing.T) {
		repo := newRepo(t)
		first := &models.Post{ID: "alice-10", AuthorID: "alice", Content: "first", Timestamp: 10, Version: 1}
		require.NoError(t, repo.Insert(ctx, first))

		err := repo.Insert(ctx, &models.Post{ID: "alice-10", AuthorID: "alice", Content: "second", Timestamp: 10, Version: 1})
		assert.ErrorIs(t, err, postsErrors.ErrPostIDCollision)

		got, err := repo.FindByID(ctx, "alice-10")
		require.NoError(t, err)
		assert.Equal(t, "first", got.Content)
	})

	t.Run("ListKeepsInsertionOrder", func(t *testing.T) {
		repo := newRepo(t)
		for i, ts := range []uint64{30, 10, 20} {
			require.NoError(t, repo.Insert(ctx, &models.Post{
				ID: fmt.Sprintf("bob-%d", ts), AuthorID: "bob", Content: fmt.Sprint(i), Timestamp: ts, Version: 1,
			}))
		}
		list, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, []string{"bob-30", "bob-10", "bob-20"}, []string{list[0].ID, list[1].ID, list[2].ID})
	})

	t.Run("ReturnedPostsAreCopies", func(t *testing.T) {
		repo := newRepo(t)
		post := &models.Post{ID: "carol-1", AuthorID: "carol", Content: "original", Timestamp: 1, Version: 1}
		require.NoError(t, repo.Insert(ctx, post))
		post.Content = "mutated after insert"

		got, _ := repo.FindByID(ctx, "carol-1")
		got.Content = "mutated after read"

		again, _ := repo.FindByID(ctx, "carol-1")
		assert.Equal(t, "original", again.Content)
	})

	t.Run("ConcurrentInsertsOfOneIDAdmitExactlyOne", func(t *testing.T) {
		repo := newRepo(t)
		var wg sync.WaitGroup
		errs := make(chan error, 8)
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				errs <- repo.Insert(ctx, &models.Post{ID: "dave-5", AuthorID: "dave", Content: fmt.Sprint(i), Timestamp: 5, Version: 1})
			}(i)
		}
		wg.Wait()
		close(errs)

		admitted := 0
		for err := range errs {
			if err == nil {
				admitted++
				continue
			}
			assert.ErrorIs(t, err, postsErrors.ErrPostIDCollision)
		}
		assert.Equal(t, 1, admitted)
	})
}
