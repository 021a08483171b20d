package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "homeat/internal/delivery/context"
	"homeat/internal/delivery/web/response"
	domainerrors "homeat/internal/domain/errors"
	"homeat/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FavoriteHandlerParams holds dependencies for FavoriteHandler, injected by Fx.
type FavoriteHandlerParams struct {
	fx.In

	RecipeUC    usecase.RecipeUsecase
	FavoritesUC usecase.FavoritesUsecase
	Logger      *slog.Logger
}

// FavoriteHandler toggles favorites.
type FavoriteHandler struct {
	recipeUC    usecase.RecipeUsecase
	favoritesUC usecase.FavoritesUsecase
	logger      *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler
func NewFavoriteHandler(params FavoriteHandlerParams) *FavoriteHandler {
	return &FavoriteHandler{
		recipeUC:    params.RecipeUC,
		favoritesUC: params.FavoritesUC,
		logger:      params.Logger,
	}
}

// FavoriteResponse is the JSON body of a toggle.
type FavoriteResponse struct {
	RecipeID  int64 `json:"recipeId"`
	Favorite  bool  `json:"favorite"`
	Likes     *int  `json:"likes,omitempty"`
	Confirmed bool  `json:"confirmed"`
}

// Toggle flips the favorite state of one of the user's recipes.
func (h *FavoriteHandler) Toggle(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	recipe, err := h.recipeUC.Get(ctx, deliverycontext.GetIdentity(c), id)
	if err != nil {
		return loadFailure(c, h.logger, err)
	}

	result, err := h.favoritesUC.ToggleFavorite(ctx, recipe)
	if err != nil {
		return asAppError(c, h.logger, err, domainerrors.ErrInternalError)
	}

	if response.WantsJSON(c) {
		body := FavoriteResponse{RecipeID: id}
		if result != nil {
			body.Favorite = result.Favorite
			body.Likes = result.Likes
			body.Confirmed = result.Confirmed
		}

		return response.Success(c, http.StatusOK, body)
	}

	return response.SeeOther(c, recipeAnchor(id))
}
