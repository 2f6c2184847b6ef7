// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package posts

import (
	"github.com/gofiber/fiber/v2"

	"github.com/omkarjainak/defisocial/posts/handlers"
)

// PostsHandlers holds all the handlers this router needs.
type PostsHandlers struct {
	PostHandler *handlers.PostHandler
}

// RegisterRoutes is the single entry point for setting up posts routes.
func RegisterRoutes(app fiber.Router, h *PostsHandlers) {
	group := app.Group("/posts")

	group.Post("/", h.PostHandler.CreatePost)
	group.Get("/", h.PostHandler.ListPosts)
	group.Get("/:postId", h.PostHandler.GetPost)
}
