// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/omkarjainak/defisocial/interactions/errors"
	"github.com/omkarjainak/defisocial/interactions/models"
	"github.com/omkarjainak/defisocial/interactions/services"
)

// InteractionHandler handles like and comment HTTP requests
type InteractionHandler struct {
	interactionService services.InteractionService
}

func NewInteractionHandler(interactionService services.InteractionService) *InteractionHandler {
	return &InteractionHandler{interactionService: interactionService}
}

// LikePost handles PUT /interactions/posts/:postId/likes/:userId
func (h *InteractionHandler) LikePost(c *fiber.Ctx) error {
	if err := h.interactionService.LikePost(c.UserContext(), c.Params("userId"), c.Params("postId")); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// UnlikePost handles DELETE /interactions/posts/:postId/likes/:userId
func (h *InteractionHandler) UnlikePost(c *fiber.Ctx) error {
	if err := h.interactionService.UnlikePost(c.UserContext(), c.Params("userId"), c.Params("postId")); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// GetLikes handles GET /interactions/posts/:postId/likes
func (h *InteractionHandler) GetLikes(c *fiber.Ctx) error {
	users, err := h.interactionService.GetLikes(c.UserContext(), c.Params("postId"))
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(users)
}

// AddComment handles POST /interactions/posts/:postId/comments
func (h *InteractionHandler) AddComment(c *fiber.Ctx) error {
	var req models.AddCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleInvalidRequestError(c, "Invalid request body")
	}
	req.PostID = c.Params("postId")

	comment, err := h.interactionService.AddComment(c.UserContext(), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(comment)
}

// GetComments handles GET /interactions/posts/:postId/comments
func (h *InteractionHandler) GetComments(c *fiber.Ctx) error {
	comments, err := h.interactionService.GetComments(c.UserContext(), c.Params("postId"))
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(comments)
}
