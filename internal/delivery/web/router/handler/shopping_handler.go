package handler

import (
	"bytes"
	"log/slog"
	"net/http"

	deliverycontext "homeat/internal/delivery/context"
	"homeat/internal/delivery/web/response"
	"homeat/internal/delivery/web/view"
	"homeat/internal/domain/entity"
	domainerrors "homeat/internal/domain/errors"
	"homeat/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const shoppingListFilename = "einkaufsliste.xlsx"

// ShoppingHandlerParams holds dependencies for ShoppingHandler, injected by Fx.
type ShoppingHandlerParams struct {
	fx.In

	ShoppingUC usecase.ShoppingUsecase
	Logger     *slog.Logger
}

// ShoppingHandler serves the shopping list and its spreadsheet export.
type ShoppingHandler struct {
	shoppingUC usecase.ShoppingUsecase
	logger     *slog.Logger
}

// NewShoppingHandler is the constructor for ShoppingHandler
func NewShoppingHandler(params ShoppingHandlerParams) *ShoppingHandler {
	return &ShoppingHandler{
		shoppingUC: params.ShoppingUC,
		logger:     params.Logger,
	}
}

// Show renders the shopping list of the user's favorite recipes.
func (h *ShoppingHandler) Show(c echo.Context) error {
	ctx := c.Request().Context()
	page := view.ShoppingPage{
		Page: response.NewPage(c, "Shopping list"),
		List: &entity.ShoppingList{},
	}

	list, err := h.shoppingUC.ForUser(ctx, deliverycontext.GetIdentity(c))
	if err != nil {
		logger(ctx, h.logger).Warn("Failed to build shopping list", slog.Any("error", err))
		page.LoadError = loadErrorMessage(err)

		return response.Render(c, http.StatusBadGateway, view.TemplateShopping, page)
	}
	page.List = list

	return response.Render(c, http.StatusOK, view.TemplateShopping, page)
}

// Export downloads the shopping list as a spreadsheet.
func (h *ShoppingHandler) Export(c echo.Context) error {
	var buf bytes.Buffer
	if err := h.shoppingUC.Export(c.Request().Context(), deliverycontext.GetIdentity(c), &buf); err != nil {
		return asAppError(c, h.logger, err, domainerrors.ErrLoadFailed)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+shoppingListFilename+`"`)

	return c.Blob(http.StatusOK, h.shoppingUC.ContentType(), buf.Bytes())
}
