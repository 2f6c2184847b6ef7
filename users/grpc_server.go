// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package users

import (
	"context"
	"errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/omkarjainak/defisocial/internal/pkg/log"
	userErrors "github.com/omkarjainak/defisocial/users/errors"
	"github.com/omkarjainak/defisocial/users/internal/rpc"
	"github.com/omkarjainak/defisocial/users/services"
)

type grpcServer struct {
	service services.UserService
}

// NewGrpcServer exposes svc over gRPC.
func NewGrpcServer(svc services.UserService) rpc.UserServiceServer {
	return &grpcServer{service: svc}
}

// RegisterGrpcServer registers the users service on s.
func RegisterGrpcServer(s *grpc.Server, svc services.UserService) {
	rpc.RegisterUserServiceServer(s, NewGrpcServer(svc))
}

func (s *grpcServer) GetUser(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Value, error) {
	profile, err := s.service.GetUser(ctx, req.GetValue())
	if err != nil {
		if errors.Is(err, userErrors.ErrValidationFailed) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		log.ErrorWithContext(ctx, "grpc GetUser %s failed: %v", req.GetValue(), err)
		return nil, status.Error(codes.Internal, err.Error())
	}

	return rpc.EncodeUser(profile.Snapshot())
}
