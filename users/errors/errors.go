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

// User service specific errors
var (
	ErrUsernameTaken     = errors.New("username already taken")
	ErrUserNotFound      = errors.New("user not found")
	ErrValidationFailed  = errors.New("validation failed")
	ErrInvalidRequest    = errors.New("invalid request")
	ErrDatabaseOperation = errors.New("database operation failed")
)

// UserError represents a user service error with additional context
type UserError struct {
	Code    string
	Message string
	Details string
	Cause   error
}

func (e *UserError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *UserError) Unwrap() error {
	return e.Cause
}

// NewUserError creates a new UserError
func NewUserError(code, message string, cause error) *UserError {
	return &UserError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Error codes
const (
	CodeUsernameTaken     = "USERNAME_TAKEN"
	CodeUserNotFound      = "USER_NOT_FOUND"
	CodeValidationFailed  = "VALIDATION_FAILED"
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeDatabaseOperation = "DATABASE_OPERATION_FAILED"
	CodeInternalError     = "INTERNAL_ERROR"
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
	case errors.Is(err, ErrUsernameTaken):
		return c.Status(http.StatusConflict).JSON(ErrorResponse{
			Code:    CodeUsernameTaken,
			Message: "Username already taken",
			Details: err.Error(),
		})
	case errors.Is(err, ErrUserNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Code:    CodeUserNotFound,
			Message: "User not found",
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
func WrapValidationError(err error) *UserError {
	return &UserError{
		Code:    CodeValidationFailed,
		Message: "Validation failed",
		Details: err.Error(),
		Cause:   fmt.Errorf("%w: %v", ErrValidationFailed, err),
	}
}

// WrapDatabaseError wraps database errors
func WrapDatabaseError(err error) *UserError {
	return NewUserError(CodeDatabaseOperation, "Database operation failed", fmt.Errorf("%w: %v", ErrDatabaseOperation, err))
}
