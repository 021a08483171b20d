package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"homeat/internal/domain/entity"
	mockRepo "homeat/internal/mocks/repository"
	"homeat/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingExporter struct {
	list *entity.ShoppingList
}

func (e *recordingExporter) Export(w io.Writer, list *entity.ShoppingList) error {
	e.list = list
	_, err := io.WriteString(w, "sheet")

	return err
}

func (e *recordingExporter) ContentType() string { return "application/test" }

// shoppingServiceFixtures holds all test dependencies for shopping service tests.
type shoppingServiceFixtures struct {
	service    usecase.ShoppingUsecase
	recipeRepo *mockRepo.MockRecipeRepository
	favorites  *mockRepo.MockFavoriteRepository
	exporter   *recordingExporter
}

func createTestShoppingService(t *testing.T) shoppingServiceFixtures {
	recipeRepo := mockRepo.NewMockRecipeRepository(t)
	favorites := mockRepo.NewMockFavoriteRepository(t)
	exporter := &recordingExporter{}
	logger := slog.Default()

	recipes := NewRecipeService(RecipeServiceParams{
		RecipeRepo: recipeRepo,
		ImageRepo:  mockRepo.NewMockImageRepository(t),
		Logger:     logger,
	})
	favoritesUC := NewFavoritesService(FavoritesServiceParams{
		Favorites: favorites,
		Likes:     mockRepo.NewMockLikeRepository(t),
		Logger:    logger,
	})

	return shoppingServiceFixtures{
		service: NewShoppingService(ShoppingServiceParams{
			Recipes:   recipes,
			Favorites: favoritesUC,
			Exporter:  exporter,
			Logger:    logger,
		}),
		recipeRepo: recipeRepo,
		favorites:  favorites,
		exporter:   exporter,
	}
}

func TestShoppingService_Build(t *testing.T) {
	fx := createTestShoppingService(t)

	list := fx.service.Build([]*entity.Recipe{
		{Title: "Pfannkuchen", Ingredients: []entity.Ingredient{
			{Name: "Mehl", Quantity: "200 g"},
			{Name: "Milch", Quantity: "300 ml"},
			{Name: "Eier", Quantity: "2"},
		}},
		{Title: "Brot", Ingredients: []entity.Ingredient{
			{Name: " mehl ", Quantity: "500 g"},
			{Name: "Salz"},
			{Name: "   ", Quantity: "1"},
		}},
		nil,
	})

	require.Len(t, list.Items, 4)
	assert.Equal(t, entity.ShoppingItem{Name: "Eier", Quantities: []string{"2"}, Recipes: []string{"Pfannkuchen"}}, list.Items[0])
	assert.Equal(t, "Mehl", list.Items[1].Name)
	assert.Equal(t, []string{"200 g", "500 g"}, list.Items[1].Quantities)
	assert.Equal(t, []string{"Pfannkuchen", "Brot"}, list.Items[1].Recipes)
	assert.Equal(t, "Milch", list.Items[2].Name)
	assert.Equal(t, "Salz", list.Items[3].Name)
	assert.Empty(t, list.Items[3].Quantities)
}

func TestShoppingService_Build_Empty(t *testing.T) {
	fx := createTestShoppingService(t)

	list := fx.service.Build(nil)
	assert.True(t, list.Empty())
}

func TestShoppingService_ForUserAndExport(t *testing.T) {
	fx := createTestShoppingService(t)
	ctx := context.Background()
	user := entity.Identity{Subject: "user-1", Authenticated: true}

	fx.recipeRepo.EXPECT().ListRecipes(ctx).Return([]*entity.Recipe{
		{ID: entity.Int64Ptr(1), Title: "Suppe", OwnerID: "user-1", Ingredients: []entity.Ingredient{{Name: "Karotten", Quantity: "3"}}},
		{ID: entity.Int64Ptr(2), Title: "Fremd", OwnerID: "other", Ingredients: []entity.Ingredient{{Name: "Reis"}}},
		{ID: entity.Int64Ptr(3), Title: "Salat", OwnerID: "user-1", Ingredients: []entity.Ingredient{{Name: "Gurke"}}},
	}, nil)
	fx.favorites.EXPECT().IDs(ctx).Return([]int64{1, 2}, nil)

	var buf bytes.Buffer
	require.NoError(t, fx.service.Export(ctx, user, &buf))
	assert.Equal(t, "sheet", buf.String())
	assert.Equal(t, "application/test", fx.service.ContentType())

	require.NotNil(t, fx.exporter.list)
	require.Len(t, fx.exporter.list.Items, 1)
	assert.Equal(t, "Karotten", fx.exporter.list.Items[0].Name)
}
