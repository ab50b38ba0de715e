package handler

import (
	"log/slog"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/delivery/api/validator"
	deliverycontext "marketplace/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// bindRequest decodes and validates the body into req. When the body is rejected it writes
// the 400 response and reports handled, and the caller returns err as is.
func bindRequest(c echo.Context, logger *slog.Logger, req any, invalidMessage string) (handled bool, err error) {
	if bindErr := c.Bind(req); bindErr != nil {
		logRejected(c, logger, "INVALID_INPUT", bindErr)

		return true, response.BadRequest(c, "INVALID_INPUT", invalidMessage)
	}

	if validateErr := c.Validate(req); validateErr != nil {
		logRejected(c, logger, "VALIDATION_ERROR", validateErr)

		return true, response.BadRequest(c, "VALIDATION_ERROR", validator.Describe(validateErr))
	}

	return false, nil
}

func logRejected(c echo.Context, logger *slog.Logger, code string, err error) {
	if logger == nil {
		logger = slog.Default()
	}

	deliverycontext.LoggerFrom(c.Request().Context(), logger).Warn("Request body rejected",
		slog.String("code", code),
		slog.String("route", c.Path()),
		slog.Any("error", err),
	)
}
