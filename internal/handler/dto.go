package handler

import (
	"time"

	"github.com/msomdec/recipe-hub/internal/domain"
)

// UserDTO is the JSON representation of a user. The password hash never
// leaves the server.
type UserDTO struct {
	ID       int64   `json:"id"`
	Email    string  `json:"email"`
	FullName *string `json:"full_name"`
	IsActive bool    `json:"is_active"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		IsActive: u.IsActive,
	}
}

// TokenDTO is the JSON representation of an issued access token.
type TokenDTO struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// CategoryDTO is the JSON representation of a category.
type CategoryDTO struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func toCategoryDTO(c domain.Category) CategoryDTO {
	return CategoryDTO{ID: c.ID, Name: c.Name, Description: c.Description}
}

func toCategoryDTOs(categories []domain.Category) []CategoryDTO {
	dtos := make([]CategoryDTO, len(categories))
	for i, c := range categories {
		dtos[i] = toCategoryDTO(c)
	}
	return dtos
}

// IngredientDTO is the JSON representation of a recipe ingredient line.
type IngredientDTO struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Quantity *string `json:"quantity"`
}

func toIngredientDTOs(ingredients []domain.Ingredient) []IngredientDTO {
	dtos := make([]IngredientDTO, len(ingredients))
	for i, ing := range ingredients {
		dtos[i] = IngredientDTO{ID: ing.ID, Name: ing.Name, Quantity: ing.Quantity}
	}
	return dtos
}

// RecipeDTO is the summary JSON representation of a recipe.
type RecipeDTO struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	Description     *string `json:"description"`
	ImageURL        *string `json:"image_url"`
	PrepTimeMinutes *int    `json:"prep_time_minutes"`
	CookTimeMinutes *int    `json:"cook_time_minutes"`
	Servings        *int    `json:"servings"`
	CreatedAt       string  `json:"created_at"`
}

func toRecipeDTO(r *domain.Recipe) RecipeDTO {
	return RecipeDTO{
		ID:              r.ID,
		Title:           r.Title,
		Description:     r.Description,
		ImageURL:        r.ImageURL,
		PrepTimeMinutes: r.PrepTimeMinutes,
		CookTimeMinutes: r.CookTimeMinutes,
		Servings:        r.Servings,
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
	}
}

func toRecipeDTOs(recipes []domain.Recipe) []RecipeDTO {
	dtos := make([]RecipeDTO, len(recipes))
	for i := range recipes {
		dtos[i] = toRecipeDTO(&recipes[i])
	}
	return dtos
}

// RecipeDetailDTO is the detailed JSON representation of a recipe,
// including its instructions, categories, and ingredient lines.
type RecipeDetailDTO struct {
	RecipeDTO
	Instructions *string         `json:"instructions"`
	Categories   []CategoryDTO   `json:"categories"`
	Ingredients  []IngredientDTO `json:"ingredients"`
}

func toRecipeDetailDTO(r *domain.Recipe) RecipeDetailDTO {
	dto := RecipeDetailDTO{
		RecipeDTO:    toRecipeDTO(r),
		Instructions: r.Instructions,
		Categories:   toCategoryDTOs(r.Categories),
		Ingredients:  toIngredientDTOs(r.Ingredients),
	}
	if dto.Categories == nil {
		dto.Categories = []CategoryDTO{}
	}
	if dto.Ingredients == nil {
		dto.Ingredients = []IngredientDTO{}
	}
	return dto
}

// FavoriteDTO is the JSON representation of a favorite relationship.
type FavoriteDTO struct {
	ID       int64 `json:"id"`
	UserID   int64 `json:"user_id"`
	RecipeID int64 `json:"recipe_id"`
}

// NoteDTO is the JSON representation of a note.
type NoteDTO struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	RecipeID  int64  `json:"recipe_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func toNoteDTO(n *domain.Note) NoteDTO {
	return NoteDTO{
		ID:        n.ID,
		UserID:    n.UserID,
		RecipeID:  n.RecipeID,
		Content:   n.Content,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
		UpdatedAt: n.UpdatedAt.Format(time.RFC3339),
	}
}

func toNoteDTOs(notes []domain.Note) []NoteDTO {
	dtos := make([]NoteDTO, len(notes))
	for i := range notes {
		dtos[i] = toNoteDTO(&notes[i])
	}
	return dtos
}
