package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/msomdec/recipe-hub/internal/domain"
)

// FavoriteRepository implements domain.FavoriteRepository using SQLite.
type FavoriteRepository struct {
	db *sql.DB
}

func (r *FavoriteRepository) Create(ctx context.Context, favorite *domain.Favorite) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO favorites (user_id, recipe_id, created_at) VALUES (?, ?, ?)`,
		favorite.UserID, favorite.RecipeID, now,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return domain.ErrDuplicateFavorite
		}
		return fmt.Errorf("insert favorite: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	favorite.ID = id
	favorite.CreatedAt = now
	return nil
}

func (r *FavoriteRepository) Delete(ctx context.Context, userID, recipeID int64) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM favorites WHERE user_id = ? AND recipe_id = ?`, userID, recipeID)
	if err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *FavoriteRepository) ListRecipesByUser(ctx context.Context, userID int64) ([]domain.Recipe, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+prefixColumns("r", recipeColumns)+`
		 FROM recipes r
		 JOIN favorites f ON f.recipe_id = r.id
		 WHERE f.user_id = ?
		 ORDER BY f.created_at DESC, f.id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorite recipes: %w", err)
	}
	defer rows.Close()

	return scanRecipes(rows)
}
