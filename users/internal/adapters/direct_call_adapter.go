// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package adapters

import (
	"context"
	"time"

	"github.com/omkarjainak/defisocial/shared/interfaces"
	"github.com/omkarjainak/defisocial/users/services"
)

var _ interfaces.UserLookup = (*DirectCallLookup)(nil)

// DirectCallLookup calls the users service in-process.
type DirectCallLookup struct {
	service services.UserService
}

func NewDirectCallLookup(svc services.UserService) *DirectCallLookup {
	return &DirectCallLookup{service: svc}
}

func (a *DirectCallLookup) GetUser(ctx context.Context, userID string) (*interfaces.UserSnapshot, error) {
	start := time.Now()
	profile, err := a.service.GetUser(ctx, userID)
	observe(TransportDirect, start, profile != nil, err)
	if err != nil {
		return nil, err
	}
	return profile.Snapshot(), nil
}
