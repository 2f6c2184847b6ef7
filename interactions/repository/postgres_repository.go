// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	interactionErrors "github.com/omkarjainak/defisocial/interactions/errors"
	"github.com/omkarjainak/defisocial/interactions/models"
	"github.com/omkarjainak/defisocial/internal/database/postgres"
)

// Schema is applied by the interactions binary on startup and by repository tests.
var Schema = []string{
	`CREATE TABLE IF NOT EXISTS post_likes (
		post_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		PRIMARY KEY (post_id, user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS post_comments (
		seq BIGSERIAL,
		id TEXT PRIMARY KEY,
		post_id TEXT NOT NULL,
		author_id TEXT NOT NULL,
		content TEXT NOT NULL,
		timestamp_ns BIGINT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_post_comments_post_seq ON post_comments(post_id, seq)`,
}

type postgresLikeRepository struct {
	client *postgres.Client
}

func NewPostgresLikeRepository(client *postgres.Client) LikeRepository {
	return &postgresLikeRepository{client: client}
}

func (r *postgresLikeRepository) Like(ctx context.Context, userID, postID string) error {
	_, err := r.client.Executor(ctx).ExecContext(ctx,
		`INSERT INTO post_likes (post_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		postID, userID)
	if err != nil {
		return interactionErrors.WrapDatabaseError(err)
	}
	return nil
}

func (r *postgresLikeRepository) Unlike(ctx context.Context, userID, postID string) error {
	_, err := r.client.Executor(ctx).ExecContext(ctx,
		`DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2`,
		postID, userID)
	if err != nil {
		return interactionErrors.WrapDatabaseError(err)
	}
	return nil
}

func (r *postgresLikeRepository) Likes(ctx context.Context, postID string) ([]string, error) {
	users := []string{}
	if err := sqlx.SelectContext(ctx, r.client.Executor(ctx), &users,
		`SELECT user_id FROM post_likes WHERE post_id = $1 ORDER BY user_id`, postID); err != nil {
		return nil, interactionErrors.WrapDatabaseError(err)
	}
	return users, nil
}

type postgresCommentRepository struct {
	client *postgres.Client
}

func NewPostgresCommentRepository(client *postgres.Client) CommentRepository {
	return &postgresCommentRepository{client: client}
}

func (r *postgresCommentRepository) Append(ctx context.Context, comment *models.Comment) error {
	res, err := sqlx.NamedExecContext(ctx, r.client.Executor(ctx), `
		INSERT INTO post_comments (id, post_id, author_id, content, timestamp_ns)
		VALUES (:id, :post_id, :author_id, :content, :timestamp_ns)
		ON CONFLICT (id) DO NOTHING`, comment)
	if err != nil {
		return interactionErrors.WrapDatabaseError(err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return interactionErrors.WrapDatabaseError(err)
	} else if n == 0 {
		return interactionErrors.ErrCommentIDCollision
	}
	return nil
}

func (r *postgresCommentRepository) Comments(ctx context.Context, postID string) ([]*models.Comment, error) {
	comments := []*models.Comment{}
	if err := sqlx.SelectContext(ctx, r.client.Executor(ctx), &comments,
		`SELECT id, post_id, author_id, content, timestamp_ns FROM post_comments WHERE post_id = $1 ORDER BY seq`,
		postID); err != nil {
		return nil, interactionErrors.WrapDatabaseError(err)
	}
	return comments, nil
}
