package service

import (
	"io"

	"homeat/internal/domain/entity"
)

// ShoppingListExporter writes a shopping list in a downloadable format.
type ShoppingListExporter interface {
	Export(w io.Writer, list *entity.ShoppingList) error

	// ContentType is the MIME type of what Export writes.
	ContentType() string
}
