package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/msomdec/recipe-hub/internal/domain"
)

const recipeColumns = `id, author_id, title, description, instructions, image_url,
	prep_time_minutes, cook_time_minutes, servings, is_public, created_at, updated_at`

// RecipeRepository implements domain.RecipeRepository using SQLite.
type RecipeRepository struct {
	db *sql.DB
}

func (r *RecipeRepository) Create(ctx context.Context, recipe *domain.Recipe) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	result, err := tx.ExecContext(ctx,
		`INSERT INTO recipes (author_id, title, description, instructions, image_url,
		 prep_time_minutes, cook_time_minutes, servings, is_public, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		recipe.AuthorID, recipe.Title, recipe.Description, recipe.Instructions, recipe.ImageURL,
		recipe.PrepTimeMinutes, recipe.CookTimeMinutes, recipe.Servings, recipe.IsPublic, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert recipe: %w", err)
	}

	recipeID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get recipe id: %w", err)
	}

	for i := range recipe.Ingredients {
		ing := &recipe.Ingredients[i]
		res, err := tx.ExecContext(ctx,
			`INSERT INTO recipe_ingredients (recipe_id, name, quantity) VALUES (?, ?, ?)`,
			recipeID, ing.Name, ing.Quantity,
		)
		if err != nil {
			return fmt.Errorf("insert ingredient: %w", err)
		}
		ingID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("get ingredient id: %w", err)
		}
		ing.ID = ingID
		ing.RecipeID = recipeID
	}

	for _, c := range recipe.Categories {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO recipe_categories (recipe_id, category_id) VALUES (?, ?)`,
			recipeID, c.ID,
		); err != nil {
			return fmt.Errorf("link category: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	recipe.ID = recipeID
	recipe.CreatedAt = now
	recipe.UpdatedAt = now
	return nil
}

func (r *RecipeRepository) GetByID(ctx context.Context, id int64) (*domain.Recipe, error) {
	recipe := &domain.Recipe{}
	err := r.db.QueryRowContext(ctx,
		`SELECT `+recipeColumns+` FROM recipes WHERE id = ?`, id,
	).Scan(&recipe.ID, &recipe.AuthorID, &recipe.Title, &recipe.Description,
		&recipe.Instructions, &recipe.ImageURL, &recipe.PrepTimeMinutes,
		&recipe.CookTimeMinutes, &recipe.Servings, &recipe.IsPublic,
		&recipe.CreatedAt, &recipe.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get recipe: %w", err)
	}

	if recipe.Ingredients, err = r.loadIngredients(ctx, id); err != nil {
		return nil, err
	}
	if recipe.Categories, err = r.loadCategories(ctx, id); err != nil {
		return nil, err
	}
	return recipe, nil
}

func (r *RecipeRepository) ListPublic(ctx context.Context, limit, offset int) ([]domain.Recipe, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+recipeColumns+` FROM recipes
		 WHERE is_public = 1 ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()

	return scanRecipes(rows)
}

func (r *RecipeRepository) SearchByIngredients(ctx context.Context, names []string, limit, offset int) ([]domain.Recipe, error) {
	if len(names) == 0 {
		return nil, nil
	}

	placeholders := strings.Repeat("?, ", len(names)-1) + "?"
	args := make([]any, 0, len(names)+3)
	for _, n := range names {
		args = append(args, n)
	}
	args = append(args, len(names), limit, offset)

	// A recipe matches when the count of its distinct matching ingredient
	// names equals the number of requested terms (AND semantics).
	query := `SELECT ` + prefixColumns("r", recipeColumns) + `
		 FROM recipes r
		 JOIN (
		   SELECT recipe_id
		   FROM recipe_ingredients
		   WHERE LOWER(TRIM(name)) IN (` + placeholders + `)
		   GROUP BY recipe_id
		   HAVING COUNT(DISTINCT LOWER(TRIM(name))) = ?
		 ) m ON m.recipe_id = r.id
		 WHERE r.is_public = 1
		 ORDER BY r.created_at DESC, r.id DESC
		 LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search recipes: %w", err)
	}
	defer rows.Close()

	return scanRecipes(rows)
}

func (r *RecipeRepository) loadIngredients(ctx context.Context, recipeID int64) ([]domain.Ingredient, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, recipe_id, name, quantity FROM recipe_ingredients
		 WHERE recipe_id = ? ORDER BY id ASC`, recipeID)
	if err != nil {
		return nil, fmt.Errorf("load ingredients: %w", err)
	}
	defer rows.Close()

	var ingredients []domain.Ingredient
	for rows.Next() {
		var ing domain.Ingredient
		if err := rows.Scan(&ing.ID, &ing.RecipeID, &ing.Name, &ing.Quantity); err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		ingredients = append(ingredients, ing)
	}
	return ingredients, rows.Err()
}

func (r *RecipeRepository) loadCategories(ctx context.Context, recipeID int64) ([]domain.Category, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT c.id, c.name, c.description, c.created_at
		 FROM categories c
		 JOIN recipe_categories rc ON rc.category_id = c.id
		 WHERE rc.recipe_id = ? ORDER BY c.name ASC`, recipeID)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func scanRecipes(rows *sql.Rows) ([]domain.Recipe, error) {
	var recipes []domain.Recipe
	for rows.Next() {
		var rec domain.Recipe
		if err := rows.Scan(&rec.ID, &rec.AuthorID, &rec.Title, &rec.Description,
			&rec.Instructions, &rec.ImageURL, &rec.PrepTimeMinutes,
			&rec.CookTimeMinutes, &rec.Servings, &rec.IsPublic,
			&rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		recipes = append(recipes, rec)
	}
	return recipes, rows.Err()
}

// prefixColumns qualifies each column in a comma-separated list with a
// table alias.
func prefixColumns(alias, columns string) string {
	parts := strings.Split(columns, ",")
	for i, p := range parts {
		parts[i] = alias + "." + strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}
