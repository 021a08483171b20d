package view

import (
	"testing"

	"homeat/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestNewRecipeForm_OneBlankRow(t *testing.T) {
	form := NewRecipeForm()
	assert.Equal(t, []IngredientRow{{}}, form.Rows)
	assert.Empty(t, form.Title)
}

func TestRecipeForm_RowEditing(t *testing.T) {
	form := NewRecipeForm()
	form.Rows[0] = IngredientRow{Name: "Mehl", Quantity: "200 g"}

	form.AddRow()
	form.AddRow()
	assert.Len(t, form.Rows, 3)

	form.Rows[1] = IngredientRow{Name: "Milch"}
	form.RemoveRow(0)
	assert.Equal(t, "Milch", form.Rows[0].Name)
	assert.Len(t, form.Rows, 2)

	form.RemoveRow(7)
	form.RemoveRow(-1)
	assert.Len(t, form.Rows, 2)

	form.RemoveRow(1)
	form.RemoveRow(0)
	assert.Len(t, form.Rows, 1, "the last row stays")
}

func TestRecipeForm_Reset(t *testing.T) {
	form := &RecipeForm{
		Title:       "Suppe",
		Description: "heiß",
		ImageURL:    "http://img",
		Rows:        []IngredientRow{{Name: "Wasser"}, {Name: "Salz"}},
	}

	form.Reset()
	assert.Equal(t, NewRecipeForm(), form)
}

func TestFormFromRecipe(t *testing.T) {
	form := FormFromRecipe(&entity.Recipe{
		Title:       "Brot",
		Ingredients: []entity.Ingredient{{Name: "Mehl", Quantity: "500 g"}},
	})
	assert.Equal(t, "Brot", form.Title)
	assert.Equal(t, []IngredientRow{{Name: "Mehl", Quantity: "500 g"}}, form.Rows)

	empty := FormFromRecipe(&entity.Recipe{Title: "Leer"})
	assert.Len(t, empty.Rows, 1)
}

func TestRecipeForm_Input(t *testing.T) {
	form := &RecipeForm{Title: "Tee", Rows: []IngredientRow{{Name: "Minze", Quantity: "1 Zweig"}, {}}}

	input := form.Input()
	assert.Equal(t, "Tee", input.Title)
	assert.Equal(t, []entity.Ingredient{{Name: "Minze", Quantity: "1 Zweig"}, {}}, input.Ingredients)
}
