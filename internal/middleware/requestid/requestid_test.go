// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package requestid

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omkarjainak/defisocial/internal/pkg/log"
)

func newApp() *fiber.App {
	app := fiber.New()
	app.Use(New())
	app.Get("/echo", func(c *fiber.Ctx) error {
		return c.SendString(GetRequestID(c) + "|" + log.RequestID(c.UserContext()))
	})
	return app
}

func TestNew_GeneratesRequestID(t *testing.T) {
	app := newApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/echo", nil))
	require.NoError(t, err)

	header := resp.Header.Get(HeaderRequestID)
	assert.NotEmpty(t, header)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, header+"|"+header, string(body))
}

func TestNew_ReusesIncomingHeader(t *testing.T) {
	app := newApp()

	req := httptest.NewRequest("GET", "/echo", nil)
	req.Header.Set(HeaderRequestID, "trace-me")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, "trace-me", resp.Header.Get(HeaderRequestID))
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "trace-me|trace-me", string(body))
}
