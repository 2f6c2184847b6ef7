// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/omkarjainak/defisocial/internal/middleware/requestid"
	"github.com/omkarjainak/defisocial/internal/pkg/log"
	"github.com/omkarjainak/defisocial/internal/platform/config"
)

// New builds the fiber app every binary serves: shared error handler,
// panic recovery, request ids, /health and /metrics.
//
// The app is immutable: values from c.Params and c.Get outlive the request,
// because the memory stores keep them as map keys.
func New(serviceName string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               serviceName,
		ErrorHandler:          ErrorHandler,
		Immutable:             true,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(requestid.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": serviceName})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	return app
}

// ErrorHandler renders errors that escaped a handler.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	log.ErrorWithContext(c.UserContext(), "[ErrorHandler] Path: %s, Error: %v, Code: %d", c.Path(), err, code)

	// If response already set by handler, don't override it
	if len(c.Response().Body()) > 0 {
		return nil
	}

	return c.Status(code).JSON(fiber.Map{
		"code":    "INTERNAL_ERROR",
		"message": err.Error(),
	})
}

const shutdownTimeout = 10 * time.Second

// NewGrpcServer returns a gRPC server that carries the caller's request id into handlers.
func NewGrpcServer(opts ...grpc.ServerOption) *grpc.Server {
	opts = append([]grpc.ServerOption{grpc.ChainUnaryInterceptor(UnaryRequestIDInterceptor)}, opts...)
	return grpc.NewServer(opts...)
}

// UnaryRequestIDInterceptor copies the x-request-id metadata into the log context.
func UnaryRequestIDInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if ids := md.Get(strings.ToLower(requestid.HeaderRequestID)); len(ids) > 0 && ids[0] != "" {
			ctx = log.WithRequestID(ctx, ids[0])
		}
	}
	return handler(ctx, req)
}

// Run serves app, and grpcServer on cfg.GRPCPort when it is non-nil, until ctx
// is cancelled or either server fails. Both are shut down before Run returns.
func Run(ctx context.Context, app *fiber.App, cfg config.ServerConfig, grpcServer *grpc.Server) error {
	errCh := make(chan error, 2)

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	go func() {
		log.Info("HTTP server listening on %s", addr)
		if err := app.Listen(addr); err != nil {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	if grpcServer != nil {
		grpcAddr := fmt.Sprintf("%s:%d", cfg.Host, cfg.GRPCPort)
		lis, err := net.Listen("tcp", grpcAddr)
		if err != nil {
			_ = app.Shutdown()
			return fmt.Errorf("failed to listen on gRPC address %s: %w", grpcAddr, err)
		}
		go func() {
			log.Info("gRPC server listening on %s", grpcAddr)
			if err := grpcServer.Serve(lis); err != nil {
				errCh <- fmt.Errorf("grpc server: %w", err)
			}
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		log.Info("Shutting down")
	case runErr = <-errCh:
		log.Error("Server stopped: %v", runErr)
	}

	if grpcServer != nil {
		grpcServer.GracefulStop()
	}
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}
