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

	"github.com/omkarjainak/defisocial/internal/pkg/log"
	"github.com/omkarjainak/defisocial/internal/platform"
	platformconfig "github.com/omkarjainak/defisocial/internal/platform/config"
	"github.com/omkarjainak/defisocial/internal/server"
	"github.com/omkarjainak/defisocial/users"
	"github.com/omkarjainak/defisocial/users/handlers"
	"github.com/omkarjainak/defisocial/users/services"
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

	repo, err := services.NewUserRepositoryFromBase(ctx, baseService)
	if err != nil {
		stdlog.Fatalf("Failed to create users repository: %v", err)
	}
	userService := services.NewUserService(repo)

	app := server.New("users")
	users.RegisterRoutes(app, &users.UsersHandlers{
		UserHandler: handlers.NewUserHandler(userService),
	})

	grpcServer := server.NewGrpcServer()
	users.RegisterGrpcServer(grpcServer, userService)

	if err := server.Run(ctx, app, cfg.Server, grpcServer); err != nil {
		log.Error("Users service exited: %v", err)
		os.Exit(1)
	}
}
