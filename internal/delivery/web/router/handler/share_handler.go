package handler

import (
	"fmt"
	"net/http"

	"homeat/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ShareHandlerParams holds dependencies for ShareHandler, injected by Fx.
type ShareHandlerParams struct {
	fx.In

	QRCodeService service.QRCodeService
}

// ShareHandler renders QR codes that link to a recipe.
type ShareHandler struct {
	qrCodeService service.QRCodeService
}

// NewShareHandler is the constructor for ShareHandler
func NewShareHandler(params ShareHandlerParams) *ShareHandler {
	return &ShareHandler{qrCodeService: params.QRCodeService}
}

// RecipeQR returns a PNG QR code for the recipe link.
func (h *ShareHandler) RecipeQR(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.qrCodeService.GenerateRecipeQR(id)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("inline; filename=recipe-%d-qr.png", id))

	return c.Blob(http.StatusOK, "image/png", png)
}
