// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"github.com/omkarjainak/defisocial/internal/idgen"
	"github.com/omkarjainak/defisocial/internal/pkg/log"
	"github.com/omkarjainak/defisocial/internal/platform"
	platformconfig "github.com/omkarjainak/defisocial/internal/platform/config"
	"github.com/omkarjainak/defisocial/internal/server"
	"github.com/omkarjainak/defisocial/posts"
	"github.com/omkarjainak/defisocial/posts/handlers"
	"github.com/omkarjainak/defisocial/posts/services"
	"github.com/omkarjainak/defisocial/users"
)

func main() {
	cfg, err := platformconfig.LoadFromEnv()
	if err != nil {
		stdlog.Fatalf("Failed to load platform config: %v", err)
	}
	log.SetDebug(cfg.Server.Debug)

	// A standalone posts service has no users service in-process.
	if cfg.Deployment.Mode != platformconfig.DeploymentModeMicroservices {
		log.Warn("DEPLOYMENT_MODE=%s ignored: the posts binary always reaches users over the network", cfg.Deployment.Mode)
		cfg.Deployment.Mode = platformconfig.DeploymentModeMicroservices
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	baseService, err := platform.NewBaseService(ctx, cfg)
	if err != nil {
		stdlog.Fatalf("Failed to create base service: %v", err)
	}
	defer baseService.Close()

	repo, err := services.NewPostRepositoryFromBase(ctx, baseService)
	if err != nil {
		stdlog.Fatalf("Failed to create posts repository: %v", err)
	}

	userLookup, closeLookup, err := users.NewUserLookup(cfg.Deployment, nil)
	if err != nil {
		stdlog.Fatalf("Failed to wire users lookup: %v", err)
	}
	defer closeLookup()

	postService := services.NewPostService(repo, userLookup, idgen.NewMinter(nil), baseService.CacheService())

	app := server.New("posts")
	posts.RegisterRoutes(app, &posts.PostsHandlers{
		PostHandler: handlers.NewPostHandler(postService),
	})

	if err := server.Run(ctx, app, cfg.Server, nil); err != nil {
		log.Error("Posts service exited: %v", err)
		os.Exit(1)
	}
}
