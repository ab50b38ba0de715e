// Package response writes the JSON bodies of the marketplace API.
package response

import (
	"net/http"

	deliverycontext "marketplace/internal/delivery/context"
	domainerrors "marketplace/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error     string `json:"error"`               // Message naming the offending identifier
	Code      string `json:"code"`                // Machine-readable error code, e.g. "NFT_NOT_FOUND"
	RequestID string `json:"requestId,omitempty"` // Request tracking ID
}

// MessageResponse is the body of operations that return no entity.
type MessageResponse struct {
	Message string `json:"message"`
}

// LikesResponse is the body of the like counter lookup.
type LikesResponse struct {
	Likes int `json:"likes"`
}

// Success writes data as the plain response body.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Message writes a {message} body.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageResponse{Message: message})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string) error {
	return c.JSON(statusCode, ErrorResponse{
		Error:     message,
		Code:      errorCode,
		RequestID: deliverycontext.RequestID(c),
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message)
}

// HandleAppError handles application errors, converting domain errors to appropriate HTTP responses.
// Server errors keep their message out of the body; anything else is left to the central error handler.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return errors.WithStack(err)
	}

	if appErr.Kind() == domainerrors.KindServerError {
		return errors.WithStack(err)
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message())
}
