// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package adapters

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"github.com/omkarjainak/defisocial/internal/pkg/log"
	"github.com/omkarjainak/defisocial/shared/interfaces"
	"github.com/omkarjainak/defisocial/users/internal/rpc"
)

var _ interfaces.UserLookup = (*GrpcLookup)(nil)

// GrpcLookup asks a remote users service over gRPC.
type GrpcLookup struct {
	conn    *grpc.ClientConn
	timeout time.Duration
}

// NewGrpcLookup creates the client connection lazily; the first call dials.
// Extra dial options are appended after the insecure transport credentials.
func NewGrpcLookup(target string, timeout time.Duration, opts ...grpc.DialOption) (*GrpcLookup, error) {
	dialOpts := append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(target, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("users grpc client for %s: %w", target, err)
	}

	return &GrpcLookup{conn: conn, timeout: timeout}, nil
}

func (a *GrpcLookup) Close() error {
	return a.conn.Close()
}

func (a *GrpcLookup) GetUser(ctx context.Context, userID string) (*interfaces.UserSnapshot, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}
	if id := log.RequestID(ctx); id != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, "x-request-id", id)
	}

	start := time.Now()
	resp, err := rpc.GetUser(ctx, a.conn, userID)
	if err != nil {
		observe(TransportGRPC, start, false, err)
		return nil, fmt.Errorf("users grpc GetUser %s: %w", userID, err)
	}

	user, err := rpc.DecodeUser(resp)
	observe(TransportGRPC, start, user != nil, err)
	return user, err
}
