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
	userErrors "github.com/omkarjainak/defisocial/users/errors"
	"github.com/omkarjainak/defisocial/users/models"
)

// Schema is applied by the users binary on startup and by repository tests.
var Schema = []string{
	`CREATE TABLE IF NOT EXISTS user_profiles (
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL,
		name TEXT NOT NULL DEFAULT '',
		bio TEXT NOT NULL DEFAULT '',
		avatar_url TEXT,
		cover_url TEXT
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_user_profiles_username ON user_profiles(username)`,
}

// postgresUserRepository implements UserRepository using raw SQL queries
type postgresUserRepository struct {
	client *postgres.Client
}

// NewPostgresUserRepository creates a new PostgreSQL repository for profiles
func NewPostgresUserRepository(client *postgres.Client) UserRepository {
	return &postgresUserRepository{client: client}
}

func (r *postgresUserRepository) Register(ctx context.Context, profile *models.UserProfile) error {
	err := r.client.WithTx(ctx, func(ctx context.Context) error {
		exec := r.client.Executor(ctx)

		var taken bool
		if err := sqlx.GetContext(ctx, exec, &taken,
			`SELECT EXISTS(SELECT 1 FROM user_profiles WHERE username = $1)`, profile.Username); err != nil {
			return fmt.Errorf("failed to check username: %w", err)
		}
		if taken {
			return userErrors.ErrUsernameTaken
		}

		query := `
			INSERT INTO user_profiles (id, username, name, bio, avatar_url, cover_url)
			VALUES (:id, :username, :name, :bio, :avatar_url, :cover_url)
			ON CONFLICT (id) DO UPDATE SET
				username = EXCLUDED.username,
				name = EXCLUDED.name,
				bio = EXCLUDED.bio,
				avatar_url = EXCLUDED.avatar_url,
				cover_url = EXCLUDED.cover_url`
		if _, err := sqlx.NamedExecContext(ctx, exec, query, profile); err != nil {
			return err
		}
		return nil
	})

	switch {
	case err == nil:
		return nil
	case errors.Is(err, userErrors.ErrUsernameTaken), postgres.IsUniqueViolation(err):
		// The unique index catches registrations racing past the EXISTS check.
		return userErrors.ErrUsernameTaken
	default:
		return userErrors.WrapDatabaseError(err)
	}
}

func (r *postgresUserRepository) Update(ctx context.Context, id string, fn func(*models.UserProfile)) (*models.UserProfile, error) {
	var updated *models.UserProfile

	err := r.client.WithTx(ctx, func(ctx context.Context) error {
		exec := r.client.Executor(ctx)

		var stored models.UserProfile
		err := sqlx.GetContext(ctx, exec, &stored,
			`SELECT id, username, name, bio, avatar_url, cover_url FROM user_profiles WHERE id = $1 FOR UPDATE`, id)
		if errors.Is(err, sql.ErrNoRows) {
			return userErrors.ErrUserNotFound
		}
		if err != nil {
			return err
		}

		next := stored.Clone()
		fn(next)
		next.ID = stored.ID
		next.Username = stored.Username

		if _, err := sqlx.NamedExecContext(ctx, exec,
			`UPDATE user_profiles SET name = :name, bio = :bio, avatar_url = :avatar_url, cover_url = :cover_url WHERE id = :id`,
			next); err != nil {
			return err
		}
		updated = next
		return nil
	})

	if errors.Is(err, userErrors.ErrUserNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, userErrors.WrapDatabaseError(err)
	}
	return updated, nil
}

func (r *postgresUserRepository) FindByID(ctx context.Context, id string) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := sqlx.GetContext(ctx, r.client.Executor(ctx), &profile,
		`SELECT id, username, name, bio, avatar_url, cover_url FROM user_profiles WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, userErrors.WrapDatabaseError(err)
	}
	return &profile, nil
}
