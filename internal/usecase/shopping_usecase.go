package usecase

import (
	"context"
	"io"

	"homeat/internal/domain/entity"
)

// ShoppingUsecase builds shopping lists from recipe ingredients.
type ShoppingUsecase interface {
	// Build groups ingredients by name across recipes. Quantities are kept as
	// written, in first-seen order.
	Build(recipes []*entity.Recipe) *entity.ShoppingList

	// ForUser builds the list from the identity's favorited recipes.
	ForUser(ctx context.Context, identity entity.Identity) (*entity.ShoppingList, error)

	// Export writes the identity's list as a spreadsheet.
	Export(ctx context.Context, identity entity.Identity, w io.Writer) error

	// ContentType is the media type written by Export.
	ContentType() string
}
