package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "homeat/internal/delivery/context"
	"homeat/internal/delivery/web/response"
	domainerrors "homeat/internal/domain/errors"
	"homeat/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ImageHandlerParams holds dependencies for ImageHandler, injected by Fx.
type ImageHandlerParams struct {
	fx.In

	RecipeUC usecase.RecipeUsecase
	Logger   *slog.Logger
}

// ImageHandler uploads and deletes recipe images.
type ImageHandler struct {
	recipeUC usecase.RecipeUsecase
	logger   *slog.Logger
}

// NewImageHandler is the constructor for ImageHandler
func NewImageHandler(params ImageHandlerParams) *ImageHandler {
	return &ImageHandler{
		recipeUC: params.RecipeUC,
		logger:   params.Logger,
	}
}

// Upload streams the posted "file" part to the backend.
func (h *ImageHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("file is required")
	}

	var recipeID *int64
	if raw := c.FormValue("recipeId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return domainerrors.ErrValidationFailed.WithDetails("recipeId must be a positive number")
		}
		recipeID = &id
	}

	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable upload")
	}
	defer file.Close()

	ctx := c.Request().Context()
	image, err := h.recipeUC.UploadImage(ctx, deliverycontext.GetIdentity(c), fileHeader.Filename, file, recipeID)
	if err != nil {
		return asAppError(c, h.logger, err, domainerrors.ErrSaveFailed)
	}

	attrs := []any{
		slog.String("filename", fileHeader.Filename),
		slog.Int64("size", fileHeader.Size),
	}
	// An empty 201 from the backend carries no image record.
	if image != nil {
		attrs = append(attrs, slog.Int64("image_id", image.ID))
	}
	logger(ctx, h.logger).Info("Image uploaded", attrs...)

	if response.WantsJSON(c) {
		if image == nil {
			return c.NoContent(http.StatusCreated)
		}

		return response.Success(c, http.StatusCreated, image)
	}

	return response.SeeOther(c, "/recipes")
}

// Delete removes a stored image.
func (h *ImageHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.recipeUC.DeleteImage(c.Request().Context(), deliverycontext.GetIdentity(c), id); err != nil {
		return asAppError(c, h.logger, err, domainerrors.ErrSaveFailed)
	}

	if response.WantsJSON(c) {
		return c.NoContent(http.StatusNoContent)
	}

	return response.SeeOther(c, "/recipes")
}
