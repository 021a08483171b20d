package repository

import (
	"context"
)

// FavoriteRepository is the device-local set of favorited recipe IDs.
// Every mutation is persisted before the call returns.
type FavoriteRepository interface {
	// Contains reports whether id is in the set.
	Contains(ctx context.Context, id int64) (bool, error)

	// IDs returns the set in insertion order.
	IDs(ctx context.Context) ([]int64, error)

	// Toggle flips membership of id, persists the new set and reports
	// whether id was a favorite before the call.
	Toggle(ctx context.Context, id int64) (wasFavorite bool, err error)
}
