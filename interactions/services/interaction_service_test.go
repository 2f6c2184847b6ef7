// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	interactionErrors "github.com/omkarjainak/defisocial/interactions/errors"
	"github.com/omkarjainak/defisocial/interactions/models"
	"github.com/omkarjainak/defisocial/interactions/repository"
	"github.com/omkarjainak/defisocial/internal/idgen"
)

func newService(clock idgen.Clock) InteractionService {
	return NewInteractionService(
		repository.NewMemoryLikeRepository(),
		repository.NewMemoryCommentRepository(),
		idgen.NewMinter(clock),
	)
}

func TestLikes(t *testing.T) {
	ctx := context.Background()
	svc := newService(nil)

	require.NoError(t, svc.LikePost(ctx, "bob", "alice-1"))
	require.NoError(t, svc.LikePost(ctx, "bob", "alice-1"))
	require.NoError(t, svc.LikePost(ctx, "alice", "alice-1"))

	likes, err := svc.GetLikes(ctx, "alice-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, likes)

	require.NoError(t, svc.UnlikePost(ctx, "carol", "alice-1"))
	require.NoError(t, svc.UnlikePost(ctx, "bob", "alice-1"))
	likes, err = svc.GetLikes(ctx, "alice-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, likes)
}

func TestComments_OrderAndIDs(t *testing.T) {
	ctx := context.Background()
	svc := newService(func() uint64 { return 100 })

	var added []*models.Comment
	for i := 0; i < 5; i++ {
		c, err := svc.AddComment(ctx, &models.AddCommentRequest{UserID: "bob", PostID: "alice-1", Content: fmt.Sprintf("c%d", i)})
		require.NoError(t, err)
		assert.Equal(t, idgen.FormatID("bob", c.Timestamp), c.ID)
		added = append(added, c)
	}

	comments, err := svc.GetComments(ctx, "alice-1")
	require.NoError(t, err)
	require.Len(t, comments, len(added))
	for i := range added {
		assert.Equal(t, added[i], comments[i])
	}
}

func TestValidation(t *testing.T) {
	ctx := context.Background()
	svc := newService(nil)

	assert.ErrorIs(t, svc.LikePost(ctx, "", "p"), interactionErrors.ErrValidationFailed)
	assert.ErrorIs(t, svc.UnlikePost(ctx, "u", ""), interactionErrors.ErrValidationFailed)
	_, err := svc.AddComment(ctx, &models.AddCommentRequest{UserID: "u", PostID: "p"})
	assert.ErrorIs(t, err, interactionErrors.ErrValidationFailed)
	_, err = svc.GetComments(ctx, "")
	assert.ErrorIs(t, err, interactionErrors.ErrValidationFailed)
}
