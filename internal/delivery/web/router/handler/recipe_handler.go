package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	deliverycontext "homeat/internal/delivery/context"
	"homeat/internal/delivery/web/response"
	"homeat/internal/delivery/web/view"
	"homeat/internal/domain/entity"
	domainerrors "homeat/internal/domain/errors"
	"homeat/internal/errors"
	"homeat/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	actionSave      = "save"
	actionAddRow    = "add-row"
	actionRemoveRow = "remove-row:"
)

// RecipeHandlerParams holds dependencies for RecipeHandler, injected by Fx.
type RecipeHandlerParams struct {
	fx.In

	RecipeUC    usecase.RecipeUsecase
	FavoritesUC usecase.FavoritesUsecase
	Logger      *slog.Logger
}

// RecipeHandler serves the recipe pages and form posts.
type RecipeHandler struct {
	recipeUC    usecase.RecipeUsecase
	favoritesUC usecase.FavoritesUsecase
	logger      *slog.Logger
}

// NewRecipeHandler is the constructor for RecipeHandler
func NewRecipeHandler(params RecipeHandlerParams) *RecipeHandler {
	return &RecipeHandler{
		recipeUC:    params.RecipeUC,
		favoritesUC: params.FavoritesUC,
		logger:      params.Logger,
	}
}

// RecipeFormRequest is the posted recipe form. Ingredient rows arrive as
// parallel name/quantity lists.
type RecipeFormRequest struct {
	Title                string   `form:"title"`
	Description          string   `form:"description"`
	ImageURL             string   `form:"imageUrl"`
	IngredientNames      []string `form:"ingredientName"`
	IngredientQuantities []string `form:"ingredientQuantity"`
	Action               string   `form:"action"`
}

func (r *RecipeFormRequest) form() *view.RecipeForm {
	form := &view.RecipeForm{
		Title:       r.Title,
		Description: r.Description,
		ImageURL:    r.ImageURL,
	}

	rows := max(len(r.IngredientNames), len(r.IngredientQuantities))
	for i := range rows {
		var row view.IngredientRow
		if i < len(r.IngredientNames) {
			row.Name = r.IngredientNames[i]
		}
		if i < len(r.IngredientQuantities) {
			row.Quantity = r.IngredientQuantities[i]
		}
		form.Rows = append(form.Rows, row)
	}
	if len(form.Rows) == 0 {
		form.AddRow()
	}

	return form
}

// applyRowAction handles the add/remove row buttons. It reports whether the
// action was a row edit rather than a save.
func (r *RecipeFormRequest) applyRowAction(form *view.RecipeForm) bool {
	switch {
	case r.Action == actionAddRow:
		form.AddRow()

		return true
	case strings.HasPrefix(r.Action, actionRemoveRow):
		if i, err := strconv.Atoi(strings.TrimPrefix(r.Action, actionRemoveRow)); err == nil {
			form.RemoveRow(i)
		}

		return true
	default:
		return false
	}
}

// List renders the recipe page with an empty form.
func (h *RecipeHandler) List(c echo.Context) error {
	return h.renderRecipes(c, http.StatusOK, view.NewRecipeForm(), "")
}

// Submit handles the new-recipe form: row edits re-render, a save creates the
// recipe and resets the form on success.
func (h *RecipeHandler) Submit(c echo.Context) error {
	var req RecipeFormRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid recipe form")
	}

	form := req.form()
	if req.applyRowAction(form) {
		return h.renderRecipes(c, http.StatusOK, form, "")
	}

	ctx := c.Request().Context()
	identity := deliverycontext.GetIdentity(c)
	created, err := h.recipeUC.Create(ctx, identity, form.Input())
	if err != nil {
		logger(ctx, h.logger).Warn("Failed to save recipe", slog.Any("error", err))
		status, message := saveFailure(err)

		return h.renderRecipes(c, status, form, message)
	}

	if created != nil && created.Persisted() {
		logger(ctx, h.logger).Debug("Recipe saved", slog.Int64("recipe_id", created.IDValue()))
	}
	form.Reset()

	return h.renderRecipes(c, http.StatusOK, form, "")
}

// Edit renders the edit form of one of the user's recipes.
func (h *RecipeHandler) Edit(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	recipe, err := h.recipeUC.Get(c.Request().Context(), deliverycontext.GetIdentity(c), id)
	if err != nil {
		return loadFailure(c, h.logger, err)
	}

	return h.renderEdit(c, http.StatusOK, id, view.FormFromRecipe(recipe), "")
}

// Update handles the edit form.
func (h *RecipeHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req RecipeFormRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid recipe form")
	}

	form := req.form()
	if req.applyRowAction(form) {
		return h.renderEdit(c, http.StatusOK, id, form, "")
	}

	ctx := c.Request().Context()
	if _, err := h.recipeUC.Update(ctx, deliverycontext.GetIdentity(c), id, form.Input()); err != nil {
		if errors.Is(err, domainerrors.ErrRecipeNotFound) || errors.Is(err, domainerrors.ErrForbidden) {
			return err
		}
		logger(ctx, h.logger).Warn("Failed to update recipe", slog.Int64("recipe_id", id), slog.Any("error", err))
		status, message := saveFailure(err)

		return h.renderEdit(c, status, id, form, message)
	}

	return response.SeeOther(c, recipeAnchor(id))
}

// Delete removes one of the user's recipes.
func (h *RecipeHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.recipeUC.Delete(c.Request().Context(), deliverycontext.GetIdentity(c), id); err != nil {
		return asAppError(c, h.logger, err, domainerrors.ErrSaveFailed)
	}

	return response.SeeOther(c, "/recipes")
}

// ReviewRequest is the posted review form.
type ReviewRequest struct {
	Text   string `form:"text" json:"text"`
	Rating int    `form:"rating" json:"rating"`
}

// AddReview posts a review for a recipe.
func (h *RecipeHandler) AddReview(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req ReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid review")
	}

	recipe, err := h.recipeUC.AddReview(c.Request().Context(), deliverycontext.GetIdentity(c), id, &usecase.ReviewInput{
		Text:   req.Text,
		Rating: req.Rating,
	})
	if err != nil {
		return asAppError(c, h.logger, err, domainerrors.ErrSaveFailed)
	}

	if response.WantsJSON(c) {
		return response.Success(c, http.StatusCreated, recipe)
	}

	return response.SeeOther(c, recipeAnchor(id))
}

func (h *RecipeHandler) renderRecipes(c echo.Context, status int, form *view.RecipeForm, saveError string) error {
	ctx := c.Request().Context()
	identity := deliverycontext.GetIdentity(c)

	page := view.RecipesPage{
		Page:          response.NewPage(c, "Recipes"),
		SaveError:     saveError,
		ShowFavorites: identity.Authenticated,
		FormView: view.FormView{
			Action: "/recipes",
			Submit: "Save recipe",
			Form:   form,
		},
	}

	recipes, err := h.recipeUC.ListForUser(ctx, identity)
	if err != nil {
		logger(ctx, h.logger).Warn("Failed to load recipes", slog.Any("error", err))
		page.LoadError = loadErrorMessage(err)
		if status == http.StatusOK {
			status = http.StatusBadGateway
		}

		return response.Render(c, status, view.TemplateRecipes, page)
	}

	favorites, err := h.favoritesUC.Favorites(ctx, recipes)
	if err != nil {
		return err
	}
	favoriteIDs := make(map[int64]struct{}, len(favorites))
	for _, recipe := range favorites {
		favoriteIDs[recipe.IDValue()] = struct{}{}
	}

	page.Recipes = make([]view.RecipeCard, 0, len(recipes))
	for _, recipe := range recipes {
		_, favorite := favoriteIDs[recipe.IDValue()]
		page.Recipes = append(page.Recipes, h.card(recipe, favorite, identity))
	}
	if page.ShowFavorites {
		page.Favorites = make([]view.RecipeCard, 0, len(favorites))
		for _, recipe := range favorites {
			page.Favorites = append(page.Favorites, h.card(recipe, true, identity))
		}
	}

	return response.Render(c, status, view.TemplateRecipes, page)
}

func (h *RecipeHandler) renderEdit(c echo.Context, status int, id int64, form *view.RecipeForm, saveError string) error {
	return response.Render(c, status, view.TemplateEdit, view.EditPage{
		Page:      response.NewPage(c, "Edit recipe"),
		RecipeID:  id,
		SaveError: saveError,
		FormView: view.FormView{
			Action: fmt.Sprintf("/recipes/%d", id),
			Submit: "Update recipe",
			Form:   form,
		},
	})
}

func (h *RecipeHandler) card(recipe *entity.Recipe, favorite bool, identity entity.Identity) view.RecipeCard {
	images := make([]view.ImageView, 0, len(recipe.Images))
	for _, image := range recipe.Images {
		images = append(images, view.ImageView{
			ID:       image.ID,
			URL:      h.recipeUC.ImageURL(image.ID),
			Filename: image.Filename,
			Size:     image.Size,
		})
	}

	return view.RecipeCard{
		ID:          recipe.IDValue(),
		Recipe:      recipe,
		Images:      images,
		Favorite:    favorite,
		CanFavorite: identity.Authenticated && recipe.Persisted(),
	}
}

func recipeAnchor(id int64) string {
	return fmt.Sprintf("/recipes#recipe-%d", id)
}
