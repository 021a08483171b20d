package usecase

import (
	"context"
	"io"

	"homeat/internal/domain/entity"
)

// RecipeInput is the submitted recipe form.
type RecipeInput struct {
	Title       string              `json:"title" validate:"required,max=200"`
	Description string              `json:"description" validate:"max=5000"`
	Ingredients []entity.Ingredient `json:"ingredients" validate:"dive"`
	ImageURL    string              `json:"imageUrl" validate:"omitempty,max=2048"`
}

// ReviewInput is a review submitted for a recipe.
type ReviewInput struct {
	Text   string `json:"text"`
	Rating int    `json:"rating" validate:"min=1,max=5"`
}

// RecipeUsecase defines the recipe management use cases of a signed-in user.
type RecipeUsecase interface {
	// ListForUser loads all recipes and keeps the ones owned by the identity.
	ListForUser(ctx context.Context, identity entity.Identity) ([]*entity.Recipe, error)

	// Get returns one of the identity's own recipes.
	Get(ctx context.Context, identity entity.Identity, id int64) (*entity.Recipe, error)

	Create(ctx context.Context, identity entity.Identity, input *RecipeInput) (*entity.Recipe, error)
	Update(ctx context.Context, identity entity.Identity, id int64, input *RecipeInput) (*entity.Recipe, error)
	Delete(ctx context.Context, identity entity.Identity, id int64) error

	// AddReview posts a review authored by the identity. Blank text is rejected
	// before any backend call.
	AddReview(ctx context.Context, identity entity.Identity, id int64, input *ReviewInput) (*entity.Recipe, error)

	// Image management
	UploadImage(ctx context.Context, identity entity.Identity, filename string, content io.Reader, recipeID *int64) (*entity.ImageResponse, error)
	DeleteImage(ctx context.Context, identity entity.Identity, imageID int64) error
	ImageURL(imageID int64) string
}

// VisibleRecipes returns the recipes owned by the identity, order preserved.
// An anonymous identity sees nothing.
func VisibleRecipes(recipes []*entity.Recipe, identity entity.Identity) []*entity.Recipe {
	visible := make([]*entity.Recipe, 0, len(recipes))
	if !identity.Authenticated || identity.Subject == "" {
		return visible
	}

	for _, recipe := range recipes {
		if recipe.OwnedBy(identity.Subject) {
			visible = append(visible, recipe)
		}
	}

	return visible
}
