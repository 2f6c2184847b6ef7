// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package users

import (
	"github.com/gofiber/fiber/v2"

	"github.com/omkarjainak/defisocial/users/handlers"
)

// UsersHandlers holds all the handlers this router needs.
type UsersHandlers struct {
	UserHandler *handlers.UserHandler
}

// RegisterRoutes is the single entry point for setting up users routes.
func RegisterRoutes(app fiber.Router, h *UsersHandlers) {
	group := app.Group("/users")

	group.Post("/", h.UserHandler.RegisterUser)
	group.Put("/:userId", h.UserHandler.UpdateProfile)
	group.Get("/:userId", h.UserHandler.GetUser)
}
