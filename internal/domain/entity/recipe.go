package entity

import "strings"

// Ingredient is one row of a recipe's ingredient list. Quantity is free text ("1 TL").
type Ingredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}

// RecipeImage is the image metadata the backend attaches to a recipe.
type RecipeImage struct {
	ID          int64  `json:"id"`
	Filename    string `json:"filename,omitempty"`
	ContentType string `json:"contentType,omitempty"`
	Size        int64  `json:"size,omitempty"`
}

// Review is a rated comment left on a recipe.
type Review struct {
	Text       string `json:"text"`
	Rating     int    `json:"rating"`
	AuthorName string `json:"authorName"`
}

// Recipe mirrors the backend's recipe resource. A nil ID means the recipe
// has never been persisted.
type Recipe struct {
	ID          *int64        `json:"id,omitempty"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Ingredients []Ingredient  `json:"ingredients,omitempty"`
	Images      []RecipeImage `json:"images,omitempty"`
	ImageURL    string        `json:"imageUrl,omitempty"`
	OwnerID     string        `json:"ownerId,omitempty"`
	Likes       *int          `json:"likes,omitempty"`
	Reviews     []Review      `json:"reviews,omitempty"`
}

// Persisted reports whether the backend has assigned an identifier.
func (r *Recipe) Persisted() bool {
	return r != nil && r.ID != nil
}

// IDValue returns the identifier, or 0 for an unsaved recipe.
func (r *Recipe) IDValue() int64 {
	if !r.Persisted() {
		return 0
	}

	return *r.ID
}

// LikeCount returns the like counter, treating an unknown count as 0.
func (r *Recipe) LikeCount() int {
	if r == nil || r.Likes == nil {
		return 0
	}

	return *r.Likes
}

// OwnedBy reports whether the recipe belongs to the given identity subject.
func (r *Recipe) OwnedBy(subject string) bool {
	return r != nil && subject != "" && r.OwnerID == subject
}

// CreateRecipeDTO is the body sent to create or replace a recipe.
type CreateRecipeDTO struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Ingredients []Ingredient `json:"ingredients"`
	ImageURL    string       `json:"imageUrl,omitempty"`
	OwnerID     string       `json:"ownerId,omitempty"`
}

// ImageResponse is what the backend returns after an image upload.
type ImageResponse struct {
	ID          int64  `json:"id"`
	URL         string `json:"url"`
	Filename    string `json:"filename"`
	Size        int64  `json:"size"`
	ContentType string `json:"contentType"`
	RecipeID    *int64 `json:"recipeId,omitempty"`
}

// CleanIngredients trims every row and drops rows without a name.
func CleanIngredients(rows []Ingredient) []Ingredient {
	out := make([]Ingredient, 0, len(rows))
	for _, row := range rows {
		name := strings.TrimSpace(row.Name)
		if name == "" {
			continue
		}
		out = append(out, Ingredient{Name: name, Quantity: strings.TrimSpace(row.Quantity)})
	}

	return out
}

// Int64Ptr is a small helper for building recipes with literal IDs.
func Int64Ptr(v int64) *int64 {
	return &v
}

// IntPtr is a small helper for building recipes with literal like counts.
func IntPtr(v int) *int {
	return &v
}
