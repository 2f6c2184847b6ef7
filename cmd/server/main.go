// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Command server runs all four services in one process.
package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"

	"github.com/omkarjainak/defisocial/graph"
	graphHandlers "github.com/omkarjainak/defisocial/graph/handlers"
	graphServices "github.com/omkarjainak/defisocial/graph/services"
	"github.com/omkarjainak/defisocial/interactions"
	interactionHandlers "github.com/omkarjainak/defisocial/interactions/handlers"
	interactionServices "github.com/omkarjainak/defisocial/interactions/services"
	"github.com/omkarjainak/defisocial/internal/idgen"
	"github.com/omkarjainak/defisocial/internal/pkg/log"
	"github.com/omkarjainak/defisocial/internal/platform"
	platformconfig "github.com/omkarjainak/defisocial/internal/platform/config"
	"github.com/omkarjainak/defisocial/internal/server"
	"github.com/omkarjainak/defisocial/posts"
	postHandlers "github.com/omkarjainak/defisocial/posts/handlers"
	postServices "github.com/omkarjainak/defisocial/posts/services"
	"github.com/omkarjainak/defisocial/users"
	userHandlers "github.com/omkarjainak/defisocial/users/handlers"
	userServices "github.com/omkarjainak/defisocial/users/services"
)

func main() {
	cfg, err := platformconfig.LoadFromEnv()
	if err != nil {
		stdlog.Fatalf("Failed to load platform config: %v", err)
	}
	log.SetDebug(cfg.Server.Debug)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	baseService, err := platform.NewBaseService(ctx, cfg)
	if err != nil {
		stdlog.Fatalf("Failed to create base service: %v", err)
	}
	defer baseService.Close()

	userRepo, err := userServices.NewUserRepositoryFromBase(ctx, baseService)
	if err != nil {
		stdlog.Fatalf("Failed to create users repository: %v", err)
	}
	postRepo, err := postServices.NewPostRepositoryFromBase(ctx, baseService)
	if err != nil {
		stdlog.Fatalf("Failed to create posts repository: %v", err)
	}
	graphRepo, err := graphServices.NewGraphRepositoryFromBase(ctx, baseService)
	if err != nil {
		stdlog.Fatalf("Failed to create graph repository: %v", err)
	}
	likeRepo, commentRepo, err := interactionServices.NewRepositoriesFromBase(ctx, baseService)
	if err != nil {
		stdlog.Fatalf("Failed to create interactions repositories: %v", err)
	}

	userService := userServices.NewUserService(userRepo)

	// In microservices mode posts still reaches users over the network, even
	// though both live here; this process then also serves the users gRPC API.
	userLookup, closeLookup, err := users.NewUserLookup(cfg.Deployment, userService)
	if err != nil {
		stdlog.Fatalf("Failed to wire users lookup: %v", err)
	}
	defer closeLookup()

	var grpcServer *grpc.Server
	if cfg.Deployment.Mode == platformconfig.DeploymentModeMicroservices {
		grpcServer = server.NewGrpcServer()
		users.RegisterGrpcServer(grpcServer, userService)
	}

	postService := postServices.NewPostService(postRepo, userLookup, idgen.NewMinter(nil), baseService.CacheService())
	graphService := graphServices.NewGraphService(graphRepo)
	interactionService := interactionServices.NewInteractionService(likeRepo, commentRepo, idgen.NewMinter(nil))

	app := server.New("defisocial")

	users.RegisterRoutes(app, &users.UsersHandlers{
		UserHandler: userHandlers.NewUserHandler(userService),
	})
	posts.RegisterRoutes(app, &posts.PostsHandlers{
		PostHandler: postHandlers.NewPostHandler(postService),
	})
	graph.RegisterRoutes(app, &graph.GraphHandlers{
		GraphHandler: graphHandlers.NewGraphHandler(graphService),
	})
	interactions.RegisterRoutes(app, &interactions.InteractionsHandlers{
		InteractionHandler: interactionHandlers.NewInteractionHandler(interactionService),
	})

	log.Info("Starting monolith in %s mode (storage: %s)", cfg.Deployment.Mode, cfg.Database.Type)
	if err := server.Run(ctx, app, cfg.Server, grpcServer); err != nil {
		log.Error("Server exited: %v", err)
		os.Exit(1)
	}
}
