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

	interactionErrors "github.com/omkarjainak/defisocial/interactions/errors"
	"github.com/omkarjainak/defisocial/interactions/models"
)

func runLikeRepositoryContract(t *testing.T, newRepo func(t *testing.T) LikeRepository) {
	ctx := context.Background()

	t.Run("LikeIsIdempotent", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Like(ctx, "alice", "p1"))
		require.NoError(t, repo.Like(ctx, "alice", "p1"))
		require.NoError(t, repo.Like(ctx, "bob", "p1"))

		likes, err := repo.Likes(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, []string{"alice", "bob"}, likes)
	})

	t.Run("UnlikeWithoutLikeIsNoop", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Like(ctx, "alice", "p1"))
		require.NoError(t, repo.Unlike(ctx, "bob", "p1"))
		require.NoError(t, repo.Unlike(ctx, "bob", "p2"))

		likes, err := repo.Likes(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, []string{"alice"}, likes)
	})

	t.Run("UnlikeRemoves", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Like(ctx, "alice", "p1"))
		require.NoError(t, repo.Unlike(ctx, "alice", "p1"))

		likes, err := repo.Likes(ctx, "p1")
		require.NoError(t, err)
		assert.NotNil(t, likes)
		assert.Empty(t, likes)
	})

	t.Run("ConcurrentLikes", func(t *testing.T) {
		repo := newRepo(t)
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				assert.NoError(t, repo.Like(ctx, fmt.Sprintf("u%d", i%5), "p1"))
			}(i)
		}
		wg.Wait()

		likes, err := repo.Likes(ctx, "p1")
		require.NoError(t, err)
		assert.Len(t, likes, 5)
	})
}

func runCommentRepositoryContract(t *testing.T, newRepo func(t *testing.T) CommentRepository) {
	ctx := context.Background()

	t.Run("CreationOrder", func(t *testing.T) {
		repo := newRepo(t)
		for i, author := range []string{"zoe", "adam", "mia"} {
			require.NoError(t, repo.Append(ctx, &models.Comment{
				ID: fmt.Sprintf("%s-%d", author, i), PostID: "p1", AuthorID: author, Content: fmt.Sprint(i), Timestamp: uint64(i),
			}))
		}
		require.NoError(t, repo.Append(ctx, &models.Comment{ID: "adam-9", PostID: "p2", AuthorID: "adam", Content: "other", Timestamp: 9}))

		comments, err := repo.Comments(ctx, "p1")
		require.NoError(t, err)
		require.Len(t, comments, 3)
		assert.Equal(t, []string{"zoe", "adam", "mia"}, []string{comments[0].AuthorID, comments[1].AuthorID, comments[2].AuthorID})
		assert.Equal(t, "p1", comments[0].PostID)
	})

	t.Run("UnknownPostIsEmpty", func(t *testing.T) {
		comments, err := newRepo(t).Comments(ctx, "nope")
		require.NoError(t, err)
		assert.NotNil(t, comments)
		assert.Empty(t, comments)
	})

	t.Run("DuplicateIDIsCollision", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Append(ctx, &models.Comment{ID: "alice-1", PostID: "p1", AuthorID: "alice", Content: "a", Timestamp: 1}))
		err := repo.Append(ctx, &models.Comment{ID: "alice-1", PostID: "p1", AuthorID: "alice", Content: "b", Timestamp: 1})
		assert.ErrorIs(t, err, interactionErrors.ErrCommentIDCollision)

		comments, _ := repo.Comments(ctx, "p1")
		assert.Len(t, comments, 1)
	})
}
