// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package interactions

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	interactionErrors "github.com/omkarjainak/defisocial/interactions/errors"
	"github.com/omkarjainak/defisocial/interactions/handlers"
	"github.com/omkarjainak/defisocial/interactions/models"
	"github.com/omkarjainak/defisocial/interactions/repository"
	"github.com/omkarjainak/defisocial/interactions/services"
	"github.com/omkarjainak/defisocial/internal/server"
)

func newTestApp() *fiber.App {
	svc := services.NewInteractionService(repository.NewMemoryLikeRepository(), repository.NewMemoryCommentRepository(), nil)
	app := server.New("interactions")
	RegisterRoutes(app, &InteractionsHandlers{InteractionHandler: handlers.NewInteractionHandler(svc)})
	return app
}

func do(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestLikeRoutes(t *testing.T) {
	app := newTestApp()

	assert.Equal(t, http.StatusNoContent, do(t, app, http.MethodPut, "/interactions/posts/alice-1/likes/bob", nil).StatusCode)
	assert.Equal(t, http.StatusNoContent, do(t, app, http.MethodPut, "/interactions/posts/alice-1/likes/bob", nil).StatusCode)
	assert.Equal(t, http.StatusNoContent, do(t, app, http.MethodDelete, "/interactions/posts/alice-1/likes/carol", nil).StatusCode)

	resp := do(t, app, http.MethodGet, "/interactions/posts/alice-1/likes", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var likes []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&likes))
	assert.Equal(t, []string{"bob"}, likes)
}

func TestCommentRoutes(t *testing.T) {
	app := newTestApp()

	for _, content := range []string{"first", "second"} {
		resp := do(t, app, http.MethodPost, "/interactions/posts/alice-1/comments", map[string]string{"userId": "bob", "content": content})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := do(t, app, http.MethodGet, "/interactions/posts/alice-1/comments", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var comments []models.Comment
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&comments))
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Content)
	assert.Equal(t, "second", comments[1].Content)
	assert.Equal(t, "alice-1", comments[1].PostID)

	resp = do(t, app, http.MethodPost, "/interactions/posts/alice-1/comments", map[string]string{"userId": "bob"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body interactionErrors.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, interactionErrors.CodeValidationFailed, body.Code)

	req := httptest.NewRequest(http.MethodPost, "/interactions/posts/alice-1/comments", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body = interactionErrors.ErrorResponse{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, interactionErrors.CodeInvalidRequest, body.Code)
}

func TestInteractionRoutes_KeysSurviveLaterRequests(t *testing.T) {
	app := newTestApp()

	require.Equal(t, http.StatusNoContent, do(t, app, http.MethodPut, "/interactions/posts/postA/likes/aaaa", nil).StatusCode)
	require.Equal(t, http.StatusCreated,
		do(t, app, http.MethodPost, "/interactions/posts/postA/comments", map[string]string{"userId": "aaaa", "content": "hi"}).StatusCode)
	for i := 0; i < 20; i++ {
		require.Equal(t, http.StatusNoContent, do(t, app, http.MethodPut, "/interactions/posts/postZ/likes/zzzz", nil).StatusCode)
		require.Equal(t, http.StatusCreated,
			do(t, app, http.MethodPost, "/interactions/posts/postZ/comments", map[string]string{"userId": "zzzz", "content": "yo"}).StatusCode)
	}

	resp := do(t, app, http.MethodGet, "/interactions/posts/postA/likes", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var likes []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&likes))
	assert.Equal(t, []string{"aaaa"}, likes)

	resp = do(t, app, http.MethodGet, "/interactions/posts/postA/comments", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var comments []models.Comment
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&comments))
	require.Len(t, comments, 1)
	assert.Equal(t, "postA", comments[0].PostID)
	assert.Equal(t, "aaaa", comments[0].AuthorID)
}
