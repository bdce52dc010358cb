package handler

import (
	"log/slog"
	"net/http"

	"github.com/msomdec/recipe-hub/internal/service"
)

// CategoryHandler handles category browsing.
type CategoryHandler struct {
	categories *service.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categories *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// HandleList returns all categories ordered by name.
// GET /categories
func (h *CategoryHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.List(r.Context())
	if err != nil {
		slog.Error("list categories", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	dtos := toCategoryDTOs(categories)
	if dtos == nil {
		dtos = []CategoryDTO{}
	}
	writeJSON(w, http.StatusOK, dtos)
}
