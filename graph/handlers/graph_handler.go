// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/omkarjainak/defisocial/graph/errors"
	"github.com/omkarjainak/defisocial/graph/services"
)

// GraphHandler handles follow relation HTTP requests
type GraphHandler struct {
	graphService services.GraphService
}

func NewGraphHandler(graphService services.GraphService) *GraphHandler {
	return &GraphHandler{graphService: graphService}
}

// Follow handles PUT /graph/:followerId/following/:followeeId
func (h *GraphHandler) Follow(c *fiber.Ctx) error {
	if err := h.graphService.Follow(c.UserContext(), c.Params("followerId"), c.Params("followeeId")); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Unfollow handles DELETE /graph/:followerId/following/:followeeId
func (h *GraphHandler) Unfollow(c *fiber.Ctx) error {
	if err := h.graphService.Unfollow(c.UserContext(), c.Params("followerId"), c.Params("followeeId")); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetFollowers handles GET /graph/:userId/followers
func (h *GraphHandler) GetFollowers(c *fiber.Ctx) error {
	ids, err := h.graphService.GetFollowers(c.UserContext(), c.Params("userId"))
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(ids)
}

// GetFollowing handles GET /graph/:userId/following
func (h *GraphHandler) GetFollowing(c *fiber.Ctx) error {
	ids, err := h.graphService.GetFollowing(c.UserContext(), c.Params("userId"))
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(ids)
}
