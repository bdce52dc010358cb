package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/msomdec/recipe-hub/internal/domain"
	"github.com/msomdec/recipe-hub/internal/repository/sqlite"
	"github.com/msomdec/recipe-hub/internal/service"
)

func createTestUser(t *testing.T, db *sqlite.DB, email string) *domain.User {
	t.Helper()
	user := &domain.User{
		Email:        email,
		PasswordHash: "irrelevant",
		IsActive:     true,
	}
	if err := db.Users().Create(context.Background(), user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func createTestRecipe(t *testing.T, recipes *service.RecipeService, authorID int64, title string, public bool, ingredients ...string) *domain.Recipe {
	t.Helper()
	recipe := &domain.Recipe{
		Title:    title,
		IsPublic: public,
	}
	for _, name := range ingredients {
		recipe.Ingredients = append(recipe.Ingredients, domain.Ingredient{Name: name})
	}
	created, err := recipes.Create(context.Background(), authorID, recipe)
	if err != nil {
		t.Fatalf("create recipe %q: %v", title, err)
	}
	return created
}

func TestRecipeService_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	recipes := service.NewRecipeService(db.Recipes())
	author := createTestUser(t, db, "author@example.com")

	created := createTestRecipe(t, recipes, author.ID, "Pancakes", true, "flour", "milk", "eggs")
	if created.ID == 0 {
		t.Fatal("expected recipe ID to be set")
	}
	if created.AuthorID == nil || *created.AuthorID != author.ID {
		t.Fatal("expected author to be set")
	}

	got, err := recipes.GetPublic(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetPublic: %v", err)
	}
	if got.Title != "Pancakes" {
		t.Fatalf("expected title Pancakes, got %s", got.Title)
	}
	if len(got.Ingredients) != 3 {
		t.Fatalf("expected 3 ingredients, got %d", len(got.Ingredients))
	}
}

func TestRecipeService_Create_RequiresTitle(t *testing.T) {
	db := newTestDB(t)
	recipes := service.NewRecipeService(db.Recipes())
	author := createTestUser(t, db, "author@example.com")

	_, err := recipes.Create(context.Background(), author.ID, &domain.Recipe{Title: "   "})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRecipeService_PrivateRecipeIsHidden(t *testing.T) {
	db := newTestDB(t)
	recipes := service.NewRecipeService(db.Recipes())
	author := createTestUser(t, db, "author@example.com")
	ctx := context.Background()

	private := createTestRecipe(t, recipes, author.ID, "Secret Sauce", false)
	createTestRecipe(t, recipes, author.ID, "Public Pie", true)

	_, err := recipes.GetPublic(ctx, private.ID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for private recipe, got %v", err)
	}

	// Get without the visibility filter still finds it.
	if _, err := recipes.Get(ctx, private.ID); err != nil {
		t.Fatalf("Get: %v", err)
	}

	listed, err := recipes.ListPublic(ctx, 0, 0)
	if err != nil {
		t.Fatalf("ListPublic: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected 1 public recipe, got %d", len(listed))
	}
	if listed[0].Title != "Public Pie" {
		t.Fatalf("expected Public Pie, got %s", listed[0].Title)
	}
}

func TestRecipeService_SearchByIngredients(t *testing.T) {
	db := newTestDB(t)
	recipes := service.NewRecipeService(db.Recipes())
	author := createTestUser(t, db, "author@example.com")
	ctx := context.Background()

	createTestRecipe(t, recipes, author.ID, "Pancakes", true, "Flour", "Milk", "Eggs")
	createTestRecipe(t, recipes, author.ID, "Omelette", true, "eggs", "butter")
	createTestRecipe(t, recipes, author.ID, "Hidden Cake", false, "flour", "eggs")

	// Single term, matched case-insensitively.
	found, err := recipes.SearchByIngredients(ctx, "EGGS", 0, 0)
	if err != nil {
		t.Fatalf("SearchByIngredients: %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("expected 2 recipes with eggs, got %d", len(found))
	}

	// Multiple terms require all of them.
	found, err = recipes.SearchByIngredients(ctx, "flour, eggs", 0, 0)
	if err != nil {
		t.Fatalf("SearchByIngredients: %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("expected 1 recipe with flour and eggs, got %d", len(found))
	}
	if found[0].Title != "Pancakes" {
		t.Fatalf("expected Pancakes, got %s", found[0].Title)
	}

	// No usable terms means no results.
	found, err = recipes.SearchByIngredients(ctx, " , ,", 0, 0)
	if err != nil {
		t.Fatalf("SearchByIngredients: %v", err)
	}
	if len(found) != 0 {
		t.Fatalf("expected no results for empty query, got %d", len(found))
	}
}

func TestCategoryService_SeedPredefined(t *testing.T) {
	db := newTestDB(t)
	categories := service.NewCategoryService(db.Categories())
	ctx := context.Background()

	if err := categories.SeedPredefined(ctx); err != nil {
		t.Fatalf("SeedPredefined: %v", err)
	}
	first, err := categories.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(first) == 0 {
		t.Fatal("expected predefined categories to be seeded")
	}

	// Seeding again must not duplicate.
	if err := categories.SeedPredefined(ctx); err != nil {
		t.Fatalf("second SeedPredefined: %v", err)
	}
	second, err := categories.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(second) != len(first) {
		t.Fatalf("expected %d categories after reseed, got %d", len(first), len(second))
	}
}
