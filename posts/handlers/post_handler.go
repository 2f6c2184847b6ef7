// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/omkarjainak/defisocial/posts/errors"
	"github.com/omkarjainak/defisocial/posts/models"
	"github.com/omkarjainak/defisocial/posts/services"
)

// PostHandler handles all post-related HTTP requests
type PostHandler struct {
	postService services.PostService
}

// NewPostHandler creates a new PostHandler with injected dependencies
func NewPostHandler(postService services.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// CreatePost handles POST /posts
func (h *PostHandler) CreatePost(c *fiber.Ctx) error {
	var req models.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleInvalidRequestError(c, "Invalid request body")
	}

	post, err := h.postService.CreatePost(c.UserContext(), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(post)
}

// ListPosts handles GET /posts
func (h *PostHandler) ListPosts(c *fiber.Ctx) error {
	posts, err := h.postService.ListPosts(c.UserContext())
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(posts)
}

// GetPost handles GET /posts/:postId
func (h *PostHandler) GetPost(c *fiber.Ctx) error {
	post, err := h.postService.GetPost(c.UserContext(), c.Params("postId"))
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	if post == nil {
		return errors.HandleServiceError(c, errors.ErrPostNotFound)
	}

	return c.JSON(post)
}
