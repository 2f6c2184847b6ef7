// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	graphErrors "github.com/omkarjainak/defisocial/graph/errors"
	"github.com/omkarjainak/defisocial/internal/database/postgres"
)

// Schema holds one row per edge; both directions read the same row, which
// keeps them mirrored without a second table.
var Schema = []string{
	`CREATE TABLE IF NOT EXISTS follows (
		follower_id TEXT NOT NULL,
		followee_id TEXT NOT NULL,
		PRIMARY KEY (follower_id, followee_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_follows_followee ON follows(followee_id)`,
}

type postgresGraphRepository struct {
	client *postgres.Client
}

func NewPostgresGraphRepository(client *postgres.Client) GraphRepository {
	return &postgresGraphRepository{client: client}
}

func (r *postgresGraphRepository) Follow(ctx context.Context, follower, followee string) error {
	_, err := r.client.Executor(ctx).ExecContext(ctx,
		`INSERT INTO follows (follower_id, followee_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		follower, followee)
	if err != nil {
		return graphErrors.WrapDatabaseError(err)
	}
	return nil
}

func (r *postgresGraphRepository) Unfollow(ctx context.Context, follower, followee string) error {
	_, err := r.client.Executor(ctx).ExecContext(ctx,
		`DELETE FROM follows WHERE follower_id = $1 AND followee_id = $2`,
		follower, followee)
	if err != nil {
		return graphErrors.WrapDatabaseError(err)
	}
	return nil
}

func (r *postgresGraphRepository) Followers(ctx context.Context, userID string) ([]string, error) {
	return r.selectIDs(ctx, `SELECT follower_id FROM follows WHERE followee_id = $1 ORDER BY follower_id`, userID)
}

func (r *postgresGraphRepository) Following(ctx context.Context, userID string) ([]string, error) {
	return r.selectIDs(ctx, `SELECT followee_id FROM follows WHERE follower_id = $1 ORDER BY followee_id`, userID)
}

func (r *postgresGraphRepository) selectIDs(ctx context.Context, query, userID string) ([]string, error) {
	ids := []string{}
	if err := sqlx.SelectContext(ctx, r.client.Executor(ctx), &ids, query, userID); err != nil {
		return nil, graphErrors.WrapDatabaseError(err)
	}
	return ids, nil
}
