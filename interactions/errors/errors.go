// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Interaction service specific errors
var (
	ErrValidationFailed   = errors.New("validation failed")
	ErrInvalidRequest     = errors.New("invalid request")
	ErrCommentIDCollision = errors.New("comment id already exists")
	ErrDatabaseOperation  = errors.New("database operation failed")
)

// Error codes
const (
	CodeValidationFailed   = "VALIDATION_FAILED"
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeCommentIDCollision = "COMMENT_ID_COLLISION"
	CodeDatabaseOperation  = "DATABASE_OPERATION_FAILED"
	CodeInternalError      = "INTERNAL_ERROR"
)

// InteractionError represents a interaction service error with additional context
type InteractionError struct {
	Code    string
	Message string
	Details string
	Cause   error
}

func (e *InteractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *InteractionError) Unwrap() error {
	return e.Cause
}

// ErrorResponse represents the standardized error response format
type ErrorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// HandleServiceError handles service errors and returns appropriate HTTP responses
func HandleServiceError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrValidationFailed):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Code:    CodeValidationFailed,
			Message: "Validation failed",
			Details: err.Error(),
		})
	case errors.Is(err, ErrCommentIDCollision):
		return c.Status(http.StatusConflict).JSON(ErrorResponse{
			Code:    CodeCommentIDCollision,
			Message: "Comment id already exists",
			Details: err.Error(),
		})
	case errors.Is(err, ErrDatabaseOperation):
		return c.Status(http.StatusServiceUnavailable).JSON(ErrorResponse{
			Code:    CodeDatabaseOperation,
			Message: "Database operation failed",
			Details: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Code:    CodeInternalError,
			Message: "An unexpected error occurred",
			Details: err.Error(),
		})
	}
}

// HandleInvalidRequestError handles malformed bodies with 400 Bad Request
func HandleInvalidRequestError(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Code:    CodeInvalidRequest,
		Message: message,
		Details: message,
	})
}

func WrapValidationError(err error) *InteractionError {
	return &InteractionError{
		Code:    CodeValidationFailed,
		Message: "Validation failed",
		Details: err.Error(),
		Cause:   fmt.Errorf("%w: %v", ErrValidationFailed, err),
	}
}

func WrapDatabaseError(err error) *InteractionError {
	return &InteractionError{
		Code:    CodeDatabaseOperation,
		Message: "Database operation failed",
		Cause:   fmt.Errorf("%w: %v", ErrDatabaseOperation, err),
	}
}
