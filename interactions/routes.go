// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package interactions

import (
	"github.com/gofiber/fiber/v2"

	"github.com/omkarjainak/defisocial/interactions/handlers"
)

// InteractionsHandlers holds all the handlers this router needs.
type InteractionsHandlers struct {
	InteractionHandler *handlers.InteractionHandler
}

// RegisterRoutes is the single entry point for setting up interaction routes.
func RegisterRoutes(app fiber.Router, h *InteractionsHandlers) {
	group := app.Group("/interactions/posts/:postId")

	group.Put("/likes/:userId", h.InteractionHandler.LikePost)
	group.Delete("/likes/:userId", h.InteractionHandler.UnlikePost)
	group.Get("/likes", h.InteractionHandler.GetLikes)
	group.Post("/comments", h.InteractionHandler.AddComment)
	group.Get("/comments", h.InteractionHandler.GetComments)
}
