// Package handler contains the echo handlers of the web client.
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "homeat/internal/delivery/context"
	"homeat/internal/delivery/web/response"
	domainerrors "homeat/internal/domain/errors"
	"homeat/internal/errors"
	"homeat/internal/infra/backend"

	"github.com/labstack/echo/v4"
)

func logger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, fallback)
}

// parseID reads a positive numeric path parameter.
func parseID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}

	return id, nil
}

// loadErrorMessage is what a page shows when loading from the backend fails:
// "HTTP <status>" for a backend response, the transport message otherwise.
func loadErrorMessage(err error) string {
	if code, ok := backend.StatusCode(err); ok {
		return fmt.Sprintf("HTTP %d", code)
	}

	return errors.Cause(err).Error()
}

// saveFailure maps a failed write to what the user sees. Domain errors keep
// their own message; anything coming from the backend is "save failed".
func saveFailure(err error) (int, string) {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() < http.StatusInternalServerError {
			return appErr.HTTPCode(), appErr.Error()
		}

		return appErr.HTTPCode(), appErr.Message()
	}

	return domainerrors.ErrSaveFailed.HTTPCode(), domainerrors.ErrSaveFailed.Message()
}

// asAppError passes domain errors through and replaces everything else with
// fallback, logging the original.
func asAppError(c echo.Context, log *slog.Logger, err error, fallback *domainerrors.BaseError) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	logger(c.Request().Context(), log).Warn("Backend request failed",
		slog.String("path", c.Path()),
		slog.Any("error", err))

	return fallback
}

// loadFailure renders the error page for a failed backend read.
func loadFailure(c echo.Context, log *slog.Logger, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	logger(c.Request().Context(), log).Warn("Failed to load recipes", slog.Any("error", err))

	return response.ErrorPage(c, http.StatusBadGateway, loadErrorMessage(err))
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
