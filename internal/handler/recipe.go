package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/msomdec/recipe-hub/internal/domain"
	"github.com/msomdec/recipe-hub/internal/service"
)

// RecipeHandler handles recipe browsing, search, and authoring.
type RecipeHandler struct {
	recipes *service.RecipeService
}

// NewRecipeHandler creates a new RecipeHandler.
func NewRecipeHandler(recipes *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

// HandleList returns public recipes, newest first.
// GET /recipes?limit=50&offset=0
func (h *RecipeHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r)
	recipes, err := h.recipes.ListPublic(r.Context(), limit, offset)
	if err != nil {
		slog.Error("list recipes", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, recipeList(recipes))
}

// HandleSearch returns public recipes containing all requested ingredients.
// GET /recipes/search?ingredients=tomato,onion
func (h *RecipeHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r)
	recipes, err := h.recipes.SearchByIngredients(r.Context(), r.URL.Query().Get("ingredients"), limit, offset)
	if err != nil {
		slog.Error("search recipes", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, recipeList(recipes))
}

// HandleGet returns a recipe with its categories and ingredients.
// GET /recipes/{id}
func (h *RecipeHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Recipe not found.")
		return
	}

	recipe, err := h.recipes.GetPublic(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Recipe not found.")
			return
		}
		slog.Error("get recipe", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, toRecipeDetailDTO(recipe))
}

// HandleCreate creates a recipe authored by the current user.
// POST /recipes (protected)
func (h *RecipeHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	var req struct {
		Title           string  `json:"title"`
		Description     *string `json:"description"`
		Instructions    *string `json:"instructions"`
		ImageURL        *string `json:"image_url"`
		PrepTimeMinutes *int    `json:"prep_time_minutes"`
		CookTimeMinutes *int    `json:"cook_time_minutes"`
		Servings        *int    `json:"servings"`
		IsPublic        *bool   `json:"is_public"`
		CategoryIDs     []int64 `json:"category_ids"`
		Ingredients     []struct {
			Name     string  `json:"name"`
			Quantity *string `json:"quantity"`
		} `json:"ingredients"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Invalid request body.")
		return
	}

	recipe := &domain.Recipe{
		Title:           req.Title,
		Description:     req.Description,
		Instructions:    req.Instructions,
		ImageURL:        req.ImageURL,
		PrepTimeMinutes: req.PrepTimeMinutes,
		CookTimeMinutes: req.CookTimeMinutes,
		Servings:        req.Servings,
		IsPublic:        req.IsPublic == nil || *req.IsPublic,
	}
	for _, ing := range req.Ingredients {
		recipe.Ingredients = append(recipe.Ingredients, domain.Ingredient{
			Name:     ing.Name,
			Quantity: ing.Quantity,
		})
	}
	for _, id := range req.CategoryIDs {
		recipe.Categories = append(recipe.Categories, domain.Category{ID: id})
	}

	created, err := h.recipes.Create(r.Context(), user.ID, recipe)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.Error("create recipe", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	// Re-read so the response carries resolved category names.
	full, err := h.recipes.Get(r.Context(), created.ID)
	if err != nil {
		full = created
	}
	writeJSON(w, http.StatusCreated, toRecipeDetailDTO(full))
}

func recipeList(recipes []domain.Recipe) []RecipeDTO {
	dtos := toRecipeDTOs(recipes)
	if dtos == nil {
		dtos = []RecipeDTO{}
	}
	return dtos
}

// pageParams reads limit/offset query parameters. Out-of-range values are
// clamped by the service layer.
func pageParams(r *http.Request) (limit, offset int) {
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ = strconv.Atoi(r.URL.Query().Get("offset"))
	return limit, offset
}
