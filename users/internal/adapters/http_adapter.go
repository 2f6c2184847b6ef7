// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package adapters

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"resty.dev/v3"

	"github.com/omkarjainak/defisocial/internal/middleware/requestid"
	"github.com/omkarjainak/defisocial/internal/pkg/log"
	"github.com/omkarjainak/defisocial/shared/interfaces"
	userErrors "github.com/omkarjainak/defisocial/users/errors"
)

var _ interfaces.UserLookup = (*HTTPLookup)(nil)

// HTTPLookup asks a remote users service through GET /users/:userId.
// 200 carries the profile and a 404 with code USER_NOT_FOUND means absent.
// Any other answer, including a route-miss 404, is a failure.
type HTTPLookup struct {
	client *resty.Client
}

func NewHTTPLookup(baseURL string, timeout time.Duration) *HTTPLookup {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &HTTPLookup{client: client}
}

func (a *HTTPLookup) Close() error {
	return a.client.Close()
}

func (a *HTTPLookup) GetUser(ctx context.Context, userID string) (*interfaces.UserSnapshot, error) {
	start := time.Now()

	req := a.client.R().
		WithContext(ctx).
		SetPathParam("userId", userID).
		SetResult(&interfaces.UserSnapshot{}).
		SetError(&userErrors.ErrorResponse{})
	if id := log.RequestID(ctx); id != "" {
		req.SetHeader(requestid.HeaderRequestID, id)
	}

	res, err := req.Get("/users/{userId}")
	if err != nil {
		observe(TransportHTTP, start, false, err)
		return nil, fmt.Errorf("users http GetUser %s: %w", userID, err)
	}

	switch res.StatusCode() {
	case http.StatusOK:
		user, ok := res.Result().(*interfaces.UserSnapshot)
		if !ok || user.ID == "" {
			err := fmt.Errorf("users http GetUser %s: undecodable body", userID)
			observe(TransportHTTP, start, false, err)
			return nil, err
		}
		observe(TransportHTTP, start, true, nil)
		return user, nil
	case http.StatusNotFound:
		if body, ok := res.Error().(*userErrors.ErrorResponse); ok && body.Code == userErrors.CodeUserNotFound {
			observe(TransportHTTP, start, false, nil)
			return nil, nil
		}
		err := fmt.Errorf("users http GetUser %s: 404 from something other than the users service: %s", userID, res.String())
		observe(TransportHTTP, start, false, err)
		return nil, err
	default:
		err := fmt.Errorf("users http GetUser %s: unexpected status %d", userID, res.StatusCode())
		observe(TransportHTTP, start, false, err)
		return nil, err
	}
}
