package view

import (
	"homeat/internal/domain/entity"
	"homeat/internal/usecase"
)

// IngredientRow is one editable ingredient line of the recipe form.
type IngredientRow struct {
	Name     string
	Quantity string
}

// RecipeForm is the state of the create/edit form between requests.
// It always holds at least one ingredient row.
type RecipeForm struct {
	Title       string
	Description string
	ImageURL    string
	Rows        []IngredientRow
}

// NewRecipeForm returns an empty form with one blank ingredient row.
func NewRecipeForm() *RecipeForm {
	return &RecipeForm{Rows: []IngredientRow{{}}}
}

// FormFromRecipe prefills the form for editing.
func FormFromRecipe(recipe *entity.Recipe) *RecipeForm {
	form := &RecipeForm{
		Title:       recipe.Title,
		Description: recipe.Description,
		ImageURL:    recipe.ImageURL,
	}
	for _, ingredient := range recipe.Ingredients {
		form.Rows = append(form.Rows, IngredientRow{Name: ingredient.Name, Quantity: ingredient.Quantity})
	}
	if len(form.Rows) == 0 {
		form.Rows = []IngredientRow{{}}
	}

	return form
}

// AddRow appends a blank ingredient row.
func (f *RecipeForm) AddRow() {
	f.Rows = append(f.Rows, IngredientRow{})
}

// RemoveRow drops row i. The last remaining row is never removed and
// out-of-range indexes are ignored.
func (f *RecipeForm) RemoveRow(i int) {
	if len(f.Rows) <= 1 || i < 0 || i >= len(f.Rows) {
		return
	}
	f.Rows = append(f.Rows[:i], f.Rows[i+1:]...)
}

// Reset clears the form after a successful save.
func (f *RecipeForm) Reset() {
	*f = *NewRecipeForm()
}

// Input converts the form into use-case input. Blank rows are dropped later.
func (f *RecipeForm) Input() *usecase.RecipeInput {
	ingredients := make([]entity.Ingredient, 0, len(f.Rows))
	for _, row := range f.Rows {
		ingredients = append(ingredients, entity.Ingredient{Name: row.Name, Quantity: row.Quantity})
	}

	return &usecase.RecipeInput{
		Title:       f.Title,
		Description: f.Description,
		ImageURL:    f.ImageURL,
		Ingredients: ingredients,
	}
}
