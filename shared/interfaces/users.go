// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package interfaces

import "context"

// UserSnapshot is the part of a user profile other services may see.
type UserSnapshot struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	Name      string  `json:"name"`
	Bio       string  `json:"bio"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
	CoverURL  *string `json:"coverUrl,omitempty"`
}

// UserLookup is the public interface for checking that a user exists.
// Posts depend on this interface, never on the users service directly.
// Adapters implement it per deployment mode:
//   - DirectCall: in-process calls for the monolith
//   - gRPC or HTTP: network calls when users runs as its own service
//
// GetUser returns (nil, nil) when the user is absent. A non-nil error always
// means the lookup itself failed, never that the user is missing.
type UserLookup interface {
	GetUser(ctx context.Context, userID string) (*UserSnapshot, error)
}
