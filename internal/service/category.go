package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/msomdec/recipe-hub/internal/domain"
)

// predefinedCategories are seeded at startup so browsing works out of the
// box on a fresh database.
var predefinedCategories = []struct {
	name        string
	description string
}{
	{"Breakfast", "Morning meals and brunch dishes"},
	{"Lunch", "Midday meals, salads, and sandwiches"},
	{"Dinner", "Main courses and evening meals"},
	{"Dessert", "Sweets, cakes, and baked treats"},
	{"Vegan", "Recipes without any animal products"},
	{"Vegetarian", "Meat-free recipes"},
	{"Soup", "Soups, stews, and broths"},
	{"Snack", "Small bites and appetizers"},
}

// CategoryService manages the recipe category taxonomy.
type CategoryService struct {
	categories domain.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categories domain.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

// List returns all categories ordered by name.
func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

// SeedPredefined inserts the predefined categories, skipping any that
// already exist. Safe to run on every startup.
func (s *CategoryService) SeedPredefined(ctx context.Context) error {
	for _, c := range predefinedCategories {
		_, err := s.categories.GetByName(ctx, c.name)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("check category %q: %w", c.name, err)
		}

		desc := c.description
		category := &domain.Category{Name: c.name, Description: &desc}
		if err := s.categories.Create(ctx, category); err != nil {
			return fmt.Errorf("seed category %q: %w", c.name, err)
		}
	}
	return nil
}
