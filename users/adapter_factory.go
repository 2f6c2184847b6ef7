// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package users

import (
	"fmt"

	"github.com/omkarjainak/defisocial/internal/pkg/log"
	"github.com/omkarjainak/defisocial/internal/platform/config"
	"github.com/omkarjainak/defisocial/shared/interfaces"
	"github.com/omkarjainak/defisocial/users/internal/adapters"
	"github.com/omkarjainak/defisocial/users/services"
)

// NewDirectCallLookup creates a direct call adapter for serverless deployment mode
func NewDirectCallLookup(svc services.UserService) interfaces.UserLookup {
	return adapters.NewDirectCallLookup(svc)
}

// NewGrpcLookup creates a gRPC client adapter for microservices deployment mode
func NewGrpcLookup(target string, cfg config.DeploymentConfig) (*adapters.GrpcLookup, error) {
	return adapters.NewGrpcLookup(target, cfg.UsersServiceTimeout)
}

// NewHTTPLookup creates a resty adapter against the users HTTP API
func NewHTTPLookup(baseURL string, cfg config.DeploymentConfig) *adapters.HTTPLookup {
	return adapters.NewHTTPLookup(baseURL, cfg.UsersServiceTimeout)
}

// NewUserLookup picks the adapter for the deployment mode. local may be nil
// when the users service does not run in this process; serverless mode then fails.
// The returned close func releases any network client.
func NewUserLookup(cfg config.DeploymentConfig, local services.UserService) (interfaces.UserLookup, func() error, error) {
	noop := func() error { return nil }

	if cfg.Mode != config.DeploymentModeMicroservices {
		if local == nil {
			return nil, noop, fmt.Errorf("deployment mode %q needs an in-process users service", cfg.Mode)
		}
		log.Info("Wiring users lookup using Direct Call Adapter")
		return NewDirectCallLookup(local), noop, nil
	}

	switch cfg.UsersServiceTransport {
	case config.TransportHTTP:
		log.Info("Wiring users lookup using HTTP Adapter against %s", cfg.UsersServiceHTTPAddr)
		a := NewHTTPLookup(cfg.UsersServiceHTTPAddr, cfg)
		return a, a.Close, nil
	default:
		log.Info("Wiring users lookup using gRPC Adapter against %s", cfg.UsersServiceGRPCAddr)
		a, err := NewGrpcLookup(cfg.UsersServiceGRPCAddr, cfg)
		if err != nil {
			return nil, noop, err
		}
		return a, a.Close, nil
	}
}
