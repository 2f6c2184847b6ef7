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

	"github.com/omkarjainak/defisocial/interactions"
	"github.com/omkarjainak/defisocial/interactions/handlers"
	"github.com/omkarjainak/defisocial/interactions/services"
	"github.com/omkarjainak/defisocial/internal/idgen"
	"github.com/omkarjainak/defisocial/internal/pkg/log"
	"github.com/omkarjainak/defisocial/internal/platform"
	platformconfig "github.com/omkarjainak/defisocial/internal/platform/config"
	"github.com/omkarjainak/defisocial/internal/server"
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

	likeRepo, commentRepo, err := services.NewRepositoriesFromBase(ctx, baseService)
	if err != nil {
		stdlog.Fatalf("Failed to create interactions repositories: %v", err)
	}
	interactionService := services.NewInteractionService(likeRepo, commentRepo, idgen.NewMinter(nil))

	app := server.New("interactions")
	interactions.RegisterRoutes(app, &interactions.InteractionsHandlers{
		InteractionHandler: handlers.NewInteractionHandler(interactionService),
	})

	if err := server.Run(ctx, app, cfg.Server, nil); err != nil {
		log.Error("Interactions service exited: %v", err)
		os.Exit(1)
	}
}
