package backend

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"homeat/internal/domain/entity"
	"homeat/internal/domain/repository"
)

var _ repository.LikeRepository = (*Client)(nil)

// AdjustLikes posts to /{resource}/{id}/like?increase={bool}.
func (c *Client) AdjustLikes(ctx context.Context, recipeID int64, increase bool) (*entity.Recipe, error) {
	url := fmt.Sprintf("%s/%s/%d/like?increase=%s", c.baseURL, c.likeResource, recipeID, strconv.FormatBool(increase))

	var recipe entity.Recipe
	decoded, err := c.do(ctx, http.MethodPost, url, nil, "", &recipe)
	if err != nil {
		return nil, err
	}
	if !decoded {
		return nil, nil
	}

	return &recipe, nil
}
