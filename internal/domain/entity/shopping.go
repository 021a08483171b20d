package entity

// ShoppingItem is one line of a shopping list: an ingredient and every
// quantity requested for it by the selected recipes.
type ShoppingItem struct {
	Name       string
	Quantities []string
	Recipes    []string
}

// ShoppingList is the aggregated ingredient list for a set of recipes.
type ShoppingList struct {
	Items []ShoppingItem
}

// Empty reports whether the list has no items.
func (l *ShoppingList) Empty() bool {
	return l == nil || len(l.Items) == 0
}
