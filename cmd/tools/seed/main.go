// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Command seed loads demo users and posts into a running deployment.
package main

import (
	"context"
	"flag"
	stdlog "log"
	"time"

	"github.com/omkarjainak/defisocial/internal/pkg/log"
	platformconfig "github.com/omkarjainak/defisocial/internal/platform/config"
)

func main() {
	cfg, err := platformconfig.LoadFromEnv()
	if err != nil {
		stdlog.Fatalf("Failed to load platform config: %v", err)
	}

	usersURL := flag.String("users", cfg.Deployment.UsersServiceHTTPAddr, "base URL of the users HTTP API")
	postsURL := flag.String("posts", "http://localhost:8082", "base URL of the posts HTTP API")
	timeout := flag.Duration("timeout", 10*time.Second, "per-request timeout")
	flag.Parse()

	seeder := NewSeeder(*usersURL, *postsURL, *timeout)
	defer seeder.Close()

	posts, err := seeder.Run(context.Background())
	if err != nil {
		stdlog.Fatalf("Seeding failed: %v", err)
	}
	log.Info("Seeded %d posts", len(posts))
}
