package middleware

import (
	"log/slog"
	"net/http"

	"homeat/internal/delivery/web/response"
	domainerrors "homeat/internal/domain/errors"
	"homeat/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware renders errors that escaped the handlers.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, code, message := m.classify(err, c)
	if response.WantsJSON(c) {
		_ = response.Error(c, status, code, message)

		return
	}

	if renderErr := response.ErrorPage(c, status, message); renderErr != nil {
		m.logger.Error("Failed to render error page", slog.Any("error", renderErr))
		_ = c.String(status, "Error: "+message)
	}
}

func (m *ErrorMiddleware) classify(err error, c echo.Context) (int, string, string) {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		message := appErr.Message()
		if appErr.HTTPCode() < http.StatusInternalServerError && appErr.Details() != "" {
			message = appErr.Error()
		}

		return appErr.HTTPCode(), appErr.ErrorCode(), message
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		return httpErr.Code, "HTTP_ERROR", message
	}

	m.logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	return http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error, please try again later"
}
