// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/omkarjainak/defisocial/internal/database/postgres"
	postsErrors "github.com/omkarjainak/defisocial/posts/errors"
	"github.com/omkarjainak/defisocial/posts/models"
)

// Schema is applied by the posts binary on startup and by repository tests.
// seq keeps List in insertion order across processes sharing the table.
var Schema = []string{
	`CREATE TABLE IF NOT EXISTS posts (
		seq BIGSERIAL,
		id TEXT PRIMARY KEY,
		author_id TEXT NOT NULL,
		content TEXT NOT NULL,
		timestamp_ns BIGINT NOT NULL,
		version SMALLINT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_posts_seq ON posts(seq)`,
}

const postColumns = `id, author_id, content, timestamp_ns, version`

// postgresPostRepository implements PostRepository using raw SQL queries
type postgresPostRepository struct {
	client *postgres.Client
}

// NewPostgresPostRepository creates a new PostgreSQL repository for posts
func NewPostgresPostRepository(client *postgres.Client) PostRepository {
	return &postgresPostRepository{client: client}
}

func (r *postgresPostRepository) Insert(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts (id, author_id, content, timestamp_ns, version)
		VALUES (:id, :author_id, :content, :timestamp_ns, :version)
		ON CONFLICT (id) DO NOTHING`

	res, err := sqlx.NamedExecContext(ctx, r.client.Executor(ctx), query, post)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return postsErrors.ErrPostIDCollision
		}
		return postsErrors.WrapDatabaseError(err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return postsErrors.WrapDatabaseError(fmt.Errorf("rows affected: %w", err))
	}
	if n == 0 {
		return postsErrors.ErrPostIDCollision
	}
	return nil
}

func (r *postgresPostRepository) FindByID(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	err := sqlx.GetContext(ctx, r.client.Executor(ctx), &post,
		`SELECT `+postColumns+` FROM posts WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, postsErrors.WrapDatabaseError(err)
	}
	return &post, nil
}

func (r *postgresPostRepository) List(ctx context.Context) ([]*models.Post, error) {
	posts := []*models.Post{}
	if err := sqlx.SelectContext(ctx, r.client.Executor(ctx), &posts,
		`SELECT `+postColumns+` FROM posts ORDER BY seq`); err != nil {
		return nil, postsErrors.WrapDatabaseError(err)
	}
	return posts, nil
}
