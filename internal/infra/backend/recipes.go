package backend

import (
	"context"
	"net/http"

	"homeat/internal/domain/entity"
	"homeat/internal/domain/repository"
)

var _ repository.RecipeRepository = (*Client)(nil)

// ListRecipes fetches GET /api/recipes.
func (c *Client) ListRecipes(ctx context.Context) ([]*entity.Recipe, error) {
	var recipes []*entity.Recipe
	if _, err := c.doJSON(ctx, http.MethodGet, c.apiURL("/recipes"), nil, &recipes); err != nil {
		return nil, err
	}

	return recipes, nil
}

// CreateRecipe posts the DTO to /api/recipes.
func (c *Client) CreateRecipe(ctx context.Context, dto *entity.CreateRecipeDTO) (*entity.Recipe, error) {
	return c.sendRecipe(ctx, http.MethodPost, c.apiURL("/recipes"), dto)
}

// UpdateRecipe replaces /api/recipes/{id}.
func (c *Client) UpdateRecipe(ctx context.Context, id int64, dto *entity.CreateRecipeDTO) (*entity.Recipe, error) {
	return c.sendRecipe(ctx, http.MethodPut, c.apiURL("/recipes/%d", id), dto)
}

// DeleteRecipe removes /api/recipes/{id}.
func (c *Client) DeleteRecipe(ctx context.Context, id int64) error {
	_, err := c.doJSON(ctx, http.MethodDelete, c.apiURL("/recipes/%d", id), nil, nil)

	return err
}

// AddReview posts to /api/recipes/{id}/reviews.
func (c *Client) AddReview(ctx context.Context, id int64, review *entity.Review) (*entity.Recipe, error) {
	return c.sendRecipe(ctx, http.MethodPost, c.apiURL("/recipes/%d/reviews", id), review)
}

func (c *Client) sendRecipe(ctx context.Context, method, url string, body any) (*entity.Recipe, error) {
	var recipe entity.Recipe
	decoded, err := c.doJSON(ctx, method, url, body, &recipe)
	if err != nil {
		return nil, err
	}
	if !decoded {
		return nil, nil
	}

	return &recipe, nil
}
