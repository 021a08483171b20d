package view

import (
	"homeat/internal/domain/entity"
)

// Page carries what every page needs for the layout.
type Page struct {
	Title     string
	Identity  entity.Identity
	RequestID string
}

// SignedIn reports whether the layout should show the signed-in header.
func (p Page) SignedIn() bool {
	return p.Identity.Authenticated
}

// FormView binds a recipe form to where it is submitted.
type FormView struct {
	Action string
	Submit string
	Form   *RecipeForm
}

// ImageView is a stored image as shown on a recipe card.
type ImageView struct {
	ID       int64
	URL      string
	Filename string
	Size     int64
}

// RecipeCard is one recipe in the list.
type RecipeCard struct {
	ID          int64
	Recipe      *entity.Recipe
	Images      []ImageView
	Favorite    bool
	CanFavorite bool
}

// RecipesPage is the home page: the recipe form, the user's recipes and
// their favorites.
type RecipesPage struct {
	Page
	LoadError     string
	SaveError     string
	Recipes       []RecipeCard
	ShowFavorites bool
	Favorites     []RecipeCard
	FormView      FormView
}

// EditPage is the edit form of a single recipe.
type EditPage struct {
	Page
	RecipeID  int64
	SaveError string
	FormView  FormView
}

// ShoppingPage lists the aggregated ingredients of the favorite recipes.
type ShoppingPage struct {
	Page
	LoadError string
	List      *entity.ShoppingList
}

// ErrorPage is rendered by the HTTP error handler.
type ErrorPage struct {
	Page
	Status  int
	Message string
}
