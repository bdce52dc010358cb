package domain

import (
	"context"
	"time"
)

// Favorite marks a recipe as a favorite of a user. A user can favorite a
// given recipe at most once.
type Favorite struct {
	ID        int64
	UserID    int64
	RecipeID  int64
	CreatedAt time.Time
}

// FavoriteRepository defines persistence operations for favorites.
type FavoriteRepository interface {
	Create(ctx context.Context, favorite *Favorite) error
	Delete(ctx context.Context, userID, recipeID int64) error
	// ListRecipesByUser returns the user's favorite recipes, most recently
	// favorited first.
	ListRecipesByUser(ctx context.Context, userID int64) ([]Recipe, error)
}
