// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package testutil holds helpers shared by repository tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/gofrs/uuid"

	"github.com/omkarjainak/defisocial/internal/database/postgres"
	"github.com/omkarjainak/defisocial/internal/platform/config"
)

var nonIdent = regexp.MustCompile(`[^a-z0-9_]+`)

// SanitizeTestName turns a test name into something usable inside a schema name.
func SanitizeTestName(name string) string {
	s := nonIdent.ReplaceAllString(strings.ToLower(name), "_")
	if len(s) > 30 {
		s = s[:30]
	}
	return strings.Trim(s, "_")
}

// NewIsolatedPostgres returns a client pinned to a fresh schema that is dropped
// when the test ends. It skips unless RUN_DB_TESTS=1.
func NewIsolatedPostgres(t *testing.T) *postgres.Client {
	t.Helper()

	if os.Getenv("RUN_DB_TESTS") != "1" {
		t.Skip("set RUN_DB_TESTS=1 to run database tests")
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	ctx := context.Background()
	suffix := strings.ReplaceAll(uuid.Must(uuid.NewV4()).String(), "-", "")[:16]
	schema := fmt.Sprintf("test_%s_%s", SanitizeTestName(t.Name()), suffix)

	admin, err := postgres.NewClient(ctx, cfg.Database.Postgres, postgres.Options{ConnectTimeout: 10})
	if err != nil {
		t.Fatalf("failed to connect to postgres: %v", err)
	}
	if _, err := admin.DB().ExecContext(ctx, fmt.Sprintf(`CREATE SCHEMA %s`, schema)); err != nil {
		admin.Close()
		t.Fatalf("failed to create schema %s: %v", schema, err)
	}

	client, err := postgres.NewClient(ctx, cfg.Database.Postgres, postgres.Options{SearchPath: schema, ConnectTimeout: 10})
	if err != nil {
		admin.Close()
		t.Fatalf("failed to connect to schema %s: %v", schema, err)
	}

	t.Cleanup(func() {
		client.Close()
		admin.DB().ExecContext(context.Background(), fmt.Sprintf(`DROP SCHEMA IF EXISTS %s CASCADE`, schema))
		admin.Close()
	})

	return client
}
