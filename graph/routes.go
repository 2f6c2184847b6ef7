// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package graph

import (
	"github.com/gofiber/fiber/v2"

	"github.com/omkarjainak/defisocial/graph/handlers"
)

// GraphHandlers holds all the handlers this router needs.
type GraphHandlers struct {
	GraphHandler *handlers.GraphHandler
}

// RegisterRoutes is the single entry point for setting up graph routes.
func RegisterRoutes(app fiber.Router, h *GraphHandlers) {
	group := app.Group("/graph")

	group.Put("/:followerId/following/:followeeId", h.GraphHandler.Follow)
	group.Delete("/:followerId/following/:followeeId", h.GraphHandler.Unfollow)
	group.Get("/:userId/followers", h.GraphHandler.GetFollowers)
	group.Get("/:userId/following", h.GraphHandler.GetFollowing)
}
