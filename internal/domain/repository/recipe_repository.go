// Package repository defines the interfaces for the persistence layer.
// Recipes, images and like counters live in the remote backend; the
// favorite set lives on the local device.
package repository

import (
	"context"
	"io"

	"homeat/internal/domain/entity"
)

// RecipeRepository defines the remote recipe operations.
type RecipeRepository interface {
	// ListRecipes returns every recipe the backend knows, in server order.
	ListRecipes(ctx context.Context) ([]*entity.Recipe, error)

	// CreateRecipe persists a new recipe. The result is nil when the backend
	// answers without a JSON body.
	CreateRecipe(ctx context.Context, dto *entity.CreateRecipeDTO) (*entity.Recipe, error)

	// UpdateRecipe replaces an existing recipe.
	UpdateRecipe(ctx context.Context, id int64, dto *entity.CreateRecipeDTO) (*entity.Recipe, error)

	// DeleteRecipe removes a recipe.
	DeleteRecipe(ctx context.Context, id int64) error

	// AddReview appends a review and returns the updated recipe when the backend sends one.
	AddReview(ctx context.Context, id int64, review *entity.Review) (*entity.Recipe, error)
}

// ImageRepository defines the remote image operations.
type ImageRepository interface {
	// UploadImage sends content as a multipart file, optionally linked to a recipe.
	UploadImage(ctx context.Context, filename string, content io.Reader, recipeID *int64) (*entity.ImageResponse, error)

	// DeleteImage removes an image.
	DeleteImage(ctx context.Context, id int64) error

	// ImageURL is the direct link to the image bytes.
	ImageURL(id int64) string
}

// LikeRepository adjusts the server-side like counter of a recipe.
type LikeRepository interface {
	// AdjustLikes increments or decrements the counter and returns the recipe
	// carrying the new count.
	AdjustLikes(ctx context.Context, recipeID int64, increase bool) (*entity.Recipe, error)
}
