package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"

	deliverycontext "homeat/internal/delivery/context"
	"homeat/internal/domain/entity"
	domainerrors "homeat/internal/domain/errors"
	"homeat/internal/domain/repository"
	"homeat/internal/errors"
	"homeat/internal/usecase"

	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
)

type recipeService struct {
	recipeRepo repository.RecipeRepository
	imageRepo  repository.ImageRepository
	validate   *validator.Validate
	logger     *slog.Logger
}

// RecipeServiceParams holds dependencies for the recipe service, injected by Fx.
type RecipeServiceParams struct {
	fx.In

	RecipeRepo repository.RecipeRepository
	ImageRepo  repository.ImageRepository
	Logger     *slog.Logger
}

// NewRecipeService creates the recipe use case.
func NewRecipeService(params RecipeServiceParams) usecase.RecipeUsecase {
	return &recipeService{
		recipeRepo: params.RecipeRepo,
		imageRepo:  params.ImageRepo,
		validate:   newValidator(),
		logger:     params.Logger,
	}
}

func (srv *recipeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListForUser loads every recipe and filters by owner.
func (srv *recipeService) ListForUser(ctx context.Context, identity entity.Identity) ([]*entity.Recipe, error) {
	recipes, err := srv.recipeRepo.ListRecipes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list recipes")
	}

	return usecase.VisibleRecipes(recipes, identity), nil
}

// Get finds one of the identity's recipes. The backend has no single-recipe
// endpoint, so this goes through the list.
func (srv *recipeService) Get(ctx context.Context, identity entity.Identity, id int64) (*entity.Recipe, error) {
	if !identity.Authenticated {
		return nil, domainerrors.ErrUnauthenticated
	}

	recipes, err := srv.recipeRepo.ListRecipes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list recipes")
	}

	for _, recipe := range recipes {
		if recipe.IDValue() != id {
			continue
		}
		if !recipe.OwnedBy(identity.Subject) {
			return nil, domainerrors.ErrForbidden
		}

		return recipe, nil
	}

	return nil, domainerrors.ErrRecipeNotFound
}

// Create validates the form and saves it as a recipe owned by the identity.
func (srv *recipeService) Create(ctx context.Context, identity entity.Identity, input *usecase.RecipeInput) (*entity.Recipe, error) {
	if !identity.Authenticated {
		return nil, domainerrors.ErrUnauthenticated
	}

	dto, err := srv.toDTO(identity, input)
	if err != nil {
		return nil, err
	}

	created, err := srv.recipeRepo.CreateRecipe(ctx, dto)
	if err != nil {
		return nil, errors.Wrap(err, "create recipe")
	}

	srv.log(ctx).Info("Recipe created",
		slog.String("owner", identity.Subject),
		slog.String("title", dto.Title))

	return created, nil
}

// Update replaces one of the identity's recipes.
func (srv *recipeService) Update(ctx context.Context, identity entity.Identity, id int64, input *usecase.RecipeInput) (*entity.Recipe, error) {
	if _, err := srv.Get(ctx, identity, id); err != nil {
		return nil, err
	}

	dto, err := srv.toDTO(identity, input)
	if err != nil {
		return nil, err
	}

	updated, err := srv.recipeRepo.UpdateRecipe(ctx, id, dto)
	if err != nil {
		return nil, errors.Wrapf(err, "update recipe %d", id)
	}

	return updated, nil
}

// Delete removes one of the identity's recipes.
func (srv *recipeService) Delete(ctx context.Context, identity entity.Identity, id int64) error {
	if _, err := srv.Get(ctx, identity, id); err != nil {
		return err
	}

	if err := srv.recipeRepo.DeleteRecipe(ctx, id); err != nil {
		return errors.Wrapf(err, "delete recipe %d", id)
	}

	srv.log(ctx).Info("Recipe deleted", slog.Int64("recipe_id", id))

	return nil
}

// AddReview posts a review signed with the identity's display name.
func (srv *recipeService) AddReview(ctx context.Context, identity entity.Identity, id int64, input *usecase.ReviewInput) (*entity.Recipe, error) {
	if !identity.Authenticated {
		return nil, domainerrors.ErrUnauthenticated
	}

	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, domainerrors.ErrEmptyReview
	}
	if err := validateInput(srv.validate, input); err != nil {
		return nil, err
	}

	review := &entity.Review{
		Text:       text,
		Rating:     input.Rating,
		AuthorName: identity.DisplayName(),
	}

	recipe, err := srv.recipeRepo.AddReview(ctx, id, review)
	if err != nil {
		return nil, errors.Wrapf(err, "add review to recipe %d", id)
	}

	return recipe, nil
}

// UploadImage stores an image, optionally attached to a recipe.
func (srv *recipeService) UploadImage(ctx context.Context, identity entity.Identity, filename string, content io.Reader, recipeID *int64) (*entity.ImageResponse, error) {
	if !identity.Authenticated {
		return nil, domainerrors.ErrUnauthenticated
	}
	if strings.TrimSpace(filename) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("file is required")
	}
	if recipeID != nil {
		if _, err := srv.Get(ctx, identity, *recipeID); err != nil {
			return nil, err
		}
	}

	image, err := srv.imageRepo.UploadImage(ctx, filename, content, recipeID)
	if err != nil {
		return nil, errors.Wrapf(err, "upload image %s", filename)
	}

	return image, nil
}

// DeleteImage removes a stored image. Images attached to another user's
// recipe are refused; unattached images may be removed by any signed-in user.
func (srv *recipeService) DeleteImage(ctx context.Context, identity entity.Identity, imageID int64) error {
	if !identity.Authenticated {
		return domainerrors.ErrUnauthenticated
	}

	recipes, err := srv.recipeRepo.ListRecipes(ctx)
	if err != nil {
		return errors.Wrap(err, "list recipes")
	}
	if owner := imageOwner(recipes, imageID); owner != nil && !owner.OwnedBy(identity.Subject) {
		return domainerrors.ErrForbidden
	}

	if err := srv.imageRepo.DeleteImage(ctx, imageID); err != nil {
		return errors.Wrapf(err, "delete image %d", imageID)
	}

	return nil
}

func imageOwner(recipes []*entity.Recipe, imageID int64) *entity.Recipe {
	for _, recipe := range recipes {
		if recipe == nil {
			continue
		}
		for _, image := range recipe.Images {
			if image.ID == imageID {
				return recipe
			}
		}
	}

	return nil
}

// ImageURL is the public URL of a stored image.
func (srv *recipeService) ImageURL(imageID int64) string {
	return srv.imageRepo.ImageURL(imageID)
}

func (srv *recipeService) toDTO(identity entity.Identity, input *usecase.RecipeInput) (*entity.CreateRecipeDTO, error) {
	cleaned := usecase.RecipeInput{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Ingredients: entity.CleanIngredients(input.Ingredients),
		ImageURL:    strings.TrimSpace(input.ImageURL),
	}
	if err := validateInput(srv.validate, &cleaned); err != nil {
		return nil, err
	}

	return &entity.CreateRecipeDTO{
		Title:       cleaned.Title,
		Description: cleaned.Description,
		Ingredients: cleaned.Ingredients,
		ImageURL:    cleaned.ImageURL,
		OwnerID:     identity.Subject,
	}, nil
}
