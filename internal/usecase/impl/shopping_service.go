package impl

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"sort"
	"strings"

	deliverycontext "homeat/internal/delivery/context"
	"homeat/internal/domain/entity"
	"homeat/internal/domain/service"
	"homeat/internal/errors"
	"homeat/internal/usecase"

	"go.uber.org/fx"
)

type shoppingService struct {
	recipes   usecase.RecipeUsecase
	favorites usecase.FavoritesUsecase
	exporter  service.ShoppingListExporter
	logger    *slog.Logger
}

// ShoppingServiceParams holds dependencies for the shopping service, injected by Fx.
type ShoppingServiceParams struct {
	fx.In

	Recipes   usecase.RecipeUsecase
	Favorites usecase.FavoritesUsecase
	Exporter  service.ShoppingListExporter
	Logger    *slog.Logger
}

// NewShoppingService creates the shopping list use case.
func NewShoppingService(params ShoppingServiceParams) usecase.ShoppingUsecase {
	return &shoppingService{
		recipes:   params.Recipes,
		favorites: params.Favorites,
		exporter:  params.Exporter,
		logger:    params.Logger,
	}
}

// Build aggregates ingredients by case-insensitive name. Quantities are free
// text and never summed.
func (srv *shoppingService) Build(recipes []*entity.Recipe) *entity.ShoppingList {
	index := make(map[string]int)
	items := make([]entity.ShoppingItem, 0)

	for _, recipe := range recipes {
		if recipe == nil {
			continue
		}
		for _, ingredient := range recipe.Ingredients {
			name := strings.TrimSpace(ingredient.Name)
			if name == "" {
				continue
			}
			key := strings.ToLower(name)

			pos, ok := index[key]
			if !ok {
				pos = len(items)
				index[key] = pos
				items = append(items, entity.ShoppingItem{Name: name})
			}

			item := &items[pos]
			if qty := strings.TrimSpace(ingredient.Quantity); qty != "" {
				item.Quantities = append(item.Quantities, qty)
			}
			if recipe.Title != "" && !slices.Contains(item.Recipes, recipe.Title) {
				item.Recipes = append(item.Recipes, recipe.Title)
			}
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})

	return &entity.ShoppingList{Items: items}
}

// ForUser builds the list from the identity's own recipes that are favorites.
func (srv *shoppingService) ForUser(ctx context.Context, identity entity.Identity) (*entity.ShoppingList, error) {
	visible, err := srv.recipes.ListForUser(ctx, identity)
	if err != nil {
		return nil, err
	}

	favorites, err := srv.favorites.Favorites(ctx, visible)
	if err != nil {
		return nil, err
	}

	return srv.Build(favorites), nil
}

// Export writes the identity's shopping list with the configured exporter.
func (srv *shoppingService) Export(ctx context.Context, identity entity.Identity, w io.Writer) error {
	list, err := srv.ForUser(ctx, identity)
	if err != nil {
		return err
	}

	if err := srv.exporter.Export(w, list); err != nil {
		return errors.Wrap(err, "export shopping list")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Shopping list exported",
		slog.Int("items", len(list.Items)))

	return nil
}

// ContentType is the media type of the exported file.
func (srv *shoppingService) ContentType() string {
	return srv.exporter.ContentType()
}
