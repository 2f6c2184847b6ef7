// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package rpc holds the wire contract of the users gRPC service. Messages are
// protobuf well-known types: the request is a StringValue carrying the user id,
// the response is a Value that is null for an unknown user and a Struct otherwise.
package rpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/omkarjainak/defisocial/shared/interfaces"
)

const (
	ServiceName       = "socialnet.users.v1.UserService"
	FullMethodGetUser = "/" + ServiceName + "/GetUser"
)

// UserServiceServer is the server API for the users gRPC service.
type UserServiceServer interface {
	GetUser(ctx context.Context, in *wrapperspb.StringValue) (*structpb.Value, error)
}

func getUserHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UserServiceServer).GetUser(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FullMethodGetUser,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UserServiceServer).GetUser(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

// ServiceDesc is the grpc.ServiceDesc for the users service.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*UserServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetUser",
			Handler:    getUserHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "socialnet/users/v1/users.proto",
}

// RegisterUserServiceServer registers srv on s.
func RegisterUserServiceServer(s grpc.ServiceRegistrar, srv UserServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// GetUser invokes the unary call on conn.
func GetUser(ctx context.Context, conn grpc.ClientConnInterface, userID string, opts ...grpc.CallOption) (*structpb.Value, error) {
	out := new(structpb.Value)
	if err := conn.Invoke(ctx, FullMethodGetUser, wrapperspb.String(userID), out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// EncodeUser renders a snapshot, or null for nil.
func EncodeUser(u *interfaces.UserSnapshot) (*structpb.Value, error) {
	if u == nil {
		return structpb.NewNullValue(), nil
	}
	s, err := structpb.NewStruct(map[string]interface{}{
		"id":        u.ID,
		"username":  u.Username,
		"name":      u.Name,
		"bio":       u.Bio,
		"avatarUrl": optional(u.AvatarURL),
		"coverUrl":  optional(u.CoverURL),
	})
	if err != nil {
		return nil, fmt.Errorf("encode user %s: %w", u.ID, err)
	}
	return structpb.NewStructValue(s), nil
}

// DecodeUser is the inverse of EncodeUser.
func DecodeUser(v *structpb.Value) (*interfaces.UserSnapshot, error) {
	switch kind := v.GetKind().(type) {
	case *structpb.Value_NullValue:
		return nil, nil
	case *structpb.Value_StructValue:
		fields := kind.StructValue.GetFields()
		id := fields["id"].GetStringValue()
		if id == "" {
			return nil, fmt.Errorf("decode user: missing id")
		}
		return &interfaces.UserSnapshot{
			ID:        id,
			Username:  fields["username"].GetStringValue(),
			Name:      fields["name"].GetStringValue(),
			Bio:       fields["bio"].GetStringValue(),
			AvatarURL: stringField(fields, "avatarUrl"),
			CoverURL:  stringField(fields, "coverUrl"),
		}, nil
	default:
		return nil, fmt.Errorf("decode user: unexpected value kind %T", kind)
	}
}

// optional keeps a nil *string from turning into a typed nil inside interface{},
// which structpb rejects.
func optional(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

func stringField(fields map[string]*structpb.Value, name string) *string {
	sv, ok := fields[name].GetKind().(*structpb.Value_StringValue)
	if !ok {
		return nil
	}
	v := sv.StringValue
	return &v
}
