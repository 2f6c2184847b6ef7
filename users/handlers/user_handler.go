// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/omkarjainak/defisocial/users/errors"
	"github.com/omkarjainak/defisocial/users/models"
	"github.com/omkarjainak/defisocial/users/services"
)

// UserHandler handles all user-related HTTP requests
type UserHandler struct {
	userService services.UserService
}

// NewUserHandler creates a new UserHandler with injected dependencies
func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterUser handles POST /users
func (h *UserHandler) RegisterUser(c *fiber.Ctx) error {
	var req models.RegisterUserRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleInvalidRequestError(c, "Invalid request body")
	}

	profile, err := h.userService.RegisterUser(c.UserContext(), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(profile)
}

// UpdateProfile handles PUT /users/:userId
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var req models.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleInvalidRequestError(c, "Invalid request body")
	}

	profile, err := h.userService.UpdateProfile(c.UserContext(), c.Params("userId"), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(profile)
}

// GetUser handles GET /users/:userId. An unknown id is a 404 here even though
// the service reports it as (nil, nil).
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	profile, err := h.userService.GetUser(c.UserContext(), c.Params("userId"))
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	if profile == nil {
		return errors.HandleServiceError(c, errors.ErrUserNotFound)
	}

	return c.JSON(profile)
}
