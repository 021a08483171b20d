package usecase

import (
	"context"

	"homeat/internal/domain/entity"
)

// ToggleResult reports the local outcome of a favorite toggle.
// Confirmed is false when the like counter could not be adjusted on the server;
// the local favorite state is kept either way.
type ToggleResult struct {
	Favorite  bool
	Likes     *int
	Confirmed bool
}

// FavoritesUsecase defines the favorite toggle flow and its read side.
type FavoritesUsecase interface {
	// ToggleFavorite flips the recipe's favorite state, persists it locally and
	// adjusts the server-side like counter. A recipe without an ID is ignored
	// and yields a nil result.
	ToggleFavorite(ctx context.Context, recipe *entity.Recipe) (*ToggleResult, error)

	// IsFavorite reports whether the recipe ID is in the local favorite set.
	IsFavorite(ctx context.Context, id int64) (bool, error)

	// FavoriteIDs returns the favorite set in insertion order.
	FavoriteIDs(ctx context.Context) ([]int64, error)

	// Favorites returns the favorited subset of recipes, in source order.
	Favorites(ctx context.Context, recipes []*entity.Recipe) ([]*entity.Recipe, error)
}
