package domain

import (
	"context"
	"time"
)

// Recipe is a recipe with its metadata, ingredient lines, and categories.
type Recipe struct {
	ID              int64
	AuthorID        *int64
	Title           string
	Description     *string
	Instructions    *string
	ImageURL        *string
	PrepTimeMinutes *int
	CookTimeMinutes *int
	Servings        *int
	IsPublic        bool
	Ingredients     []Ingredient
	Categories      []Category
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Ingredient is a single ingredient line belonging to a recipe.
type Ingredient struct {
	ID       int64
	RecipeID int64
	Name     string
	Quantity *string
}

// RecipeRepository defines persistence operations for recipes.
type RecipeRepository interface {
	// Create inserts the recipe, its ingredient lines, and its category
	// links in a single transaction.
	Create(ctx context.Context, recipe *Recipe) error
	// GetByID loads a recipe with its ingredients and categories.
	GetByID(ctx context.Context, id int64) (*Recipe, error)
	// ListPublic returns public recipes, newest first.
	ListPublic(ctx context.Context, limit, offset int) ([]Recipe, error)
	// SearchByIngredients returns public recipes containing every one of
	// the given (already normalized) ingredient names.
	SearchByIngredients(ctx context.Context, names []string, limit, offset int) ([]Recipe, error)
}
