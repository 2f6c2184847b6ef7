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

	"github.com/omkarjainak/defisocial/graph"
	"github.com/omkarjainak/defisocial/graph/handlers"
	"github.com/omkarjainak/defisocial/graph/services"
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

	repo, err := services.NewGraphRepositoryFromBase(ctx, baseService)
	if err != nil {
		stdlog.Fatalf("Failed to create graph repository: %v", err)
	}

	app := server.New("graph")
	graph.RegisterRoutes(app, &graph.GraphHandlers{
		GraphHandler: handlers.NewGraphHandler(services.NewGraphService(repo)),
	})

	if err := server.Run(ctx, app, cfg.Server, nil); err != nil {
		log.Error("Graph service exited: %v", err)
		os.Exit(1)
	}
}
