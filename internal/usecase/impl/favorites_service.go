package impl

import (
	"context"
	"log/slog"

	deliverycontext "homeat/internal/delivery/context"
	"homeat/internal/domain/entity"
	"homeat/internal/domain/repository"
	"homeat/internal/errors"
	"homeat/internal/usecase"

	"go.uber.org/fx"
)

type favoritesService struct {
	favorites repository.FavoriteRepository
	likes     repository.LikeRepository
	logger    *slog.Logger
}

// FavoritesServiceParams holds dependencies for the favorites service, injected by Fx.
type FavoritesServiceParams struct {
	fx.In

	Favorites repository.FavoriteRepository
	Likes     repository.LikeRepository
	Logger    *slog.Logger
}

// NewFavoritesService creates the favorites use case.
func NewFavoritesService(params FavoritesServiceParams) usecase.FavoritesUsecase {
	return &favoritesService{
		favorites: params.Favorites,
		likes:     params.Likes,
		logger:    params.Logger,
	}
}

func (srv *favoritesService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ToggleFavorite flips the local favorite state first and then tells the
// backend to adjust the like counter. A failed notification is logged and
// the local state is kept.
func (srv *favoritesService) ToggleFavorite(ctx context.Context, recipe *entity.Recipe) (*usecase.ToggleResult, error) {
	if !recipe.Persisted() {
		return nil, nil
	}
	id := recipe.IDValue()

	wasFavorite, err := srv.favorites.Toggle(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "toggle favorite %d", id)
	}
	increase := !wasFavorite

	result := &usecase.ToggleResult{
		Favorite: increase,
		Likes:    recipe.Likes,
	}

	// The local toggle is already committed; finish the notification even if
	// the caller goes away.
	updated, err := srv.likes.AdjustLikes(context.WithoutCancel(ctx), id, increase)
	if err != nil {
		srv.log(ctx).Warn("Failed to adjust likes",
			slog.Int64("recipe_id", id),
			slog.Bool("increase", increase),
			slog.Any("error", err))

		return result, nil
	}

	result.Confirmed = true
	if updated != nil && updated.Likes != nil {
		recipe.Likes = updated.Likes
		result.Likes = updated.Likes
	}

	return result, nil
}

// IsFavorite reports whether the recipe is a local favorite.
func (srv *favoritesService) IsFavorite(ctx context.Context, id int64) (bool, error) {
	ok, err := srv.favorites.Contains(ctx, id)
	if err != nil {
		return false, errors.Wrap(err, "read favorites")
	}

	return ok, nil
}

// FavoriteIDs returns the favorite set in insertion order.
func (srv *favoritesService) FavoriteIDs(ctx context.Context) ([]int64, error) {
	ids, err := srv.favorites.IDs(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "read favorites")
	}

	return ids, nil
}

// Favorites keeps the favorited recipes, in the order they were given.
func (srv *favoritesService) Favorites(ctx context.Context, recipes []*entity.Recipe) ([]*entity.Recipe, error) {
	ids, err := srv.FavoriteIDs(ctx)
	if err != nil {
		return nil, err
	}

	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	out := make([]*entity.Recipe, 0, len(ids))
	for _, recipe := range recipes {
		if !recipe.Persisted() {
			continue
		}
		if _, ok := set[recipe.IDValue()]; ok {
			out = append(out, recipe)
		}
	}

	return out, nil
}
