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

// Post service specific errors
var (
	ErrAuthorNotFound      = errors.New("user does not exist, register first")
	ErrUpstreamUnavailable = errors.New("user service unavailable")
	ErrPostIDCollision     = errors.New("post id already exists")
	ErrPostNotFound        = errors.New("post not found")
	ErrValidationFailed    = errors.New("validation failed")
	ErrInvalidRequest      = errors.New("invalid request")
	ErrDatabaseOperation   = errors.New("database operation failed")
)

// PostError represents a post service error with additional context
type PostError struct {
	Code    string
	Message string
	Details string
	Cause   error
}

func (e *PostError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *PostError) Unwrap() error {
	return e.Cause
}

// NewPostError creates a new PostError
func NewPostError(code, message string, cause error) *PostError {
	return &PostError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Error codes
const (
	CodeAuthorNotFound      = "AUTHOR_NOT_FOUND"
	CodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
	CodePostIDCollision     = "POST_ID_COLLISION"
	CodePostNotFound        = "POST_NOT_FOUND"
	CodeValidationFailed    = "VALIDATION_FAILED"
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeDatabaseOperation   = "DATABASE_OPERATION_FAILED"
	CodeInternalError       = "INTERNAL_ERROR"
)

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
	case errors.Is(err, ErrAuthorNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Code:    CodeAuthorNotFound,
			Message: "User does not exist, register first",
			Details: err.Error(),
		})
	case errors.Is(err, ErrUpstreamUnavailable):
		return c.Status(http.StatusServiceUnavailable).JSON(ErrorResponse{
			Code:    CodeUpstreamUnavailable,
			Message: "User service unavailable",
			Details: err.Error(),
		})
	case errors.Is(err, ErrPostIDCollision):
		return c.Status(http.StatusConflict).JSON(ErrorResponse{
			Code:    CodePostIDCollision,
			Message: "Post id already exists",
			Details: err.Error(),
		})
	case errors.Is(err, ErrPostNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Code:    CodePostNotFound,
			Message: "Post not found",
			Details: err.Error(),
		})
	case errors.Is(err, ErrValidationFailed):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Code:    CodeValidationFailed,
			Message: "Validation failed",
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

// WrapValidationError wraps validation errors
func WrapValidationError(err error) *PostError {
	return &PostError{
		Code:    CodeValidationFailed,
		Message: "Validation failed",
		Details: err.Error(),
		Cause:   fmt.Errorf("%w: %v", ErrValidationFailed, err),
	}
}

// WrapUpstreamError keeps the transport failure reachable through errors.Is and errors.As.
func WrapUpstreamError(err error) *PostError {
	return NewPostError(CodeUpstreamUnavailable, "User service unavailable", fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err))
}

// WrapDatabaseError wraps database errors
func WrapDatabaseError(err error) *PostError {
	return NewPostError(CodeDatabaseOperation, "Database operation failed", fmt.Errorf("%w: %v", ErrDatabaseOperation, err))
}
