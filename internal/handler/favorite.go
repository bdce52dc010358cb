package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/msomdec/recipe-hub/internal/domain"
	"github.com/msomdec/recipe-hub/internal/service"
)

// FavoriteHandler handles the current user's favorite recipes. All routes
// are protected.
type FavoriteHandler struct {
	favorites *service.FavoriteService
}

// NewFavoriteHandler creates a new FavoriteHandler.
func NewFavoriteHandler(favorites *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites}
}

// HandleList returns the current user's favorite recipes.
// GET /favorites
func (h *FavoriteHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	recipes, err := h.favorites.ListRecipes(r.Context(), user.ID)
	if err != nil {
		slog.Error("list favorites", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, recipeList(recipes))
}

// HandleAdd marks a recipe as a favorite of the current user.
// POST /favorites  {"recipe_id": 1}
func (h *FavoriteHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	var req struct {
		RecipeID int64 `json:"recipe_id"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Invalid request body.")
		return
	}

	favorite, err := h.favorites.Add(r.Context(), user.ID, req.RecipeID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "Recipe not found.")
		case errors.Is(err, domain.ErrDuplicateFavorite):
			writeError(w, http.StatusConflict, "Already favorited.")
		default:
			slog.Error("add favorite", "error", err)
			writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		}
		return
	}

	writeJSON(w, http.StatusCreated, FavoriteDTO{
		ID:       favorite.ID,
		UserID:   favorite.UserID,
		RecipeID: favorite.RecipeID,
	})
}

// HandleRemove unmarks a recipe as a favorite of the current user.
// DELETE /favorites/{recipe_id}
func (h *FavoriteHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	recipeID, err := strconv.ParseInt(r.PathValue("recipe_id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Favorite not found.")
		return
	}

	if err := h.favorites.Remove(r.Context(), user.ID, recipeID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Favorite not found.")
			return
		}
		slog.Error("remove favorite", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
