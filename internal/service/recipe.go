package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/msomdec/recipe-hub/internal/domain"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// RecipeService provides recipe browsing, ingredient search, and authoring.
type RecipeService struct {
	recipes domain.RecipeRepository
}

// NewRecipeService creates a new RecipeService.
func NewRecipeService(recipes domain.RecipeRepository) *RecipeService {
	return &RecipeService{recipes: recipes}
}

// ListPublic returns public recipes, newest first. Limits outside 1..200
// fall back to the default page size; negative offsets are treated as zero.
func (s *RecipeService) ListPublic(ctx context.Context, limit, offset int) ([]domain.Recipe, error) {
	limit, offset = clampPage(limit, offset)
	return s.recipes.ListPublic(ctx, limit, offset)
}

// GetPublic returns the recipe with its ingredients and categories, or
// ErrNotFound when the recipe is absent or not public. Private recipes are
// indistinguishable from missing ones.
func (s *RecipeService) GetPublic(ctx context.Context, id int64) (*domain.Recipe, error) {
	recipe, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !recipe.IsPublic {
		return nil, domain.ErrNotFound
	}
	return recipe, nil
}

// Get returns the recipe regardless of visibility. Used after authoring,
// where the author may read back a private recipe.
func (s *RecipeService) Get(ctx context.Context, id int64) (*domain.Recipe, error) {
	return s.recipes.GetByID(ctx, id)
}

// Exists reports whether a recipe with the given ID exists, public or not.
func (s *RecipeService) Exists(ctx context.Context, id int64) (bool, error) {
	_, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// SearchByIngredients returns public recipes that contain all of the named
// ingredients (AND semantics). Names are compared lowercased and trimmed.
// An empty ingredient list yields an empty result.
func (s *RecipeService) SearchByIngredients(ctx context.Context, ingredients string, limit, offset int) ([]domain.Recipe, error) {
	seen := make(map[string]bool)
	var terms []string
	for _, raw := range strings.Split(ingredients, ",") {
		term := normalizeIngredient(raw)
		if term == "" || seen[term] {
			continue
		}
		seen[term] = true
		terms = append(terms, term)
	}
	if len(terms) == 0 {
		return nil, nil
	}

	limit, offset = clampPage(limit, offset)
	return s.recipes.SearchByIngredients(ctx, terms, limit, offset)
}

// Create validates and persists a recipe authored by the given user.
func (s *RecipeService) Create(ctx context.Context, authorID int64, recipe *domain.Recipe) (*domain.Recipe, error) {
	recipe.Title = strings.TrimSpace(recipe.Title)
	if recipe.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	for i := range recipe.Ingredients {
		recipe.Ingredients[i].Name = strings.TrimSpace(recipe.Ingredients[i].Name)
		if recipe.Ingredients[i].Name == "" {
			return nil, fmt.Errorf("%w: ingredient names must be non-empty", domain.ErrInvalidInput)
		}
	}

	recipe.AuthorID = &authorID
	if err := s.recipes.Create(ctx, recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

// normalizeIngredient lowercases and trims an ingredient name for
// comparison.
func normalizeIngredient(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func clampPage(limit, offset int) (int, int) {
	if limit < 1 || limit > maxPageSize {
		limit = defaultPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
