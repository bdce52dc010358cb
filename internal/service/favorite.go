package service

import (
	"context"
	"fmt"

	"github.com/msomdec/recipe-hub/internal/domain"
)

// FavoriteService manages a user's favorite recipes.
type FavoriteService struct {
	favorites domain.FavoriteRepository
	recipes   *RecipeService
}

// NewFavoriteService creates a new FavoriteService.
func NewFavoriteService(favorites domain.FavoriteRepository, recipes *RecipeService) *FavoriteService {
	return &FavoriteService{favorites: favorites, recipes: recipes}
}

// ListRecipes returns the user's favorite recipes, most recently favorited
// first.
func (s *FavoriteService) ListRecipes(ctx context.Context, userID int64) ([]domain.Recipe, error) {
	return s.favorites.ListRecipesByUser(ctx, userID)
}

// Add marks a recipe as a favorite of the user. Unknown recipes yield
// ErrNotFound; favoriting the same recipe twice yields ErrDuplicateFavorite
// regardless of request ordering, since the uniqueness lives in the
// database.
func (s *FavoriteService) Add(ctx context.Context, userID, recipeID int64) (*domain.Favorite, error) {
	exists, err := s.recipes.Exists(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("check recipe: %w", err)
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	favorite := &domain.Favorite{UserID: userID, RecipeID: recipeID}
	if err := s.favorites.Create(ctx, favorite); err != nil {
		return nil, err
	}
	return favorite, nil
}

// Remove unmarks a recipe as a favorite of the user.
func (s *FavoriteService) Remove(ctx context.Context, userID, recipeID int64) error {
	return s.favorites.Delete(ctx, userID, recipeID)
}
