package handler

import (
	"net/http"

	"github.com/msomdec/recipe-hub/internal/config"
	"github.com/msomdec/recipe-hub/internal/service"
)

// Services bundles everything the routes need.
type Services struct {
	Auth       *service.AuthService
	Categories *service.CategoryService
	Recipes    *service.RecipeService
	Favorites  *service.FavoriteService
	Notes      *service.NoteService
	Limiter    *service.LoginLimiter
}

// RegisterRoutes wires up all HTTP routes and returns the root handler with
// the global middleware applied.
func RegisterRoutes(mux *http.ServeMux, cfg *config.Config, svc Services) http.Handler {
	authHandler := NewAuthHandler(svc.Auth, svc.Limiter)
	categoryHandler := NewCategoryHandler(svc.Categories)
	recipeHandler := NewRecipeHandler(svc.Recipes)
	favoriteHandler := NewFavoriteHandler(svc.Favorites)
	noteHandler := NewNoteHandler(svc.Notes)
	healthHandler := NewHealthHandler(cfg)

	protected := func(h http.HandlerFunc) http.Handler {
		return RequireAuth(svc.Auth, h)
	}

	// Auth
	mux.HandleFunc("POST /auth/register", authHandler.HandleRegister)
	mux.HandleFunc("POST /auth/login", authHandler.HandleLogin)
	mux.Handle("GET /auth/me", protected(authHandler.HandleMe))

	// Categories
	mux.HandleFunc("GET /categories", categoryHandler.HandleList)

	// Recipes
	mux.HandleFunc("GET /recipes", recipeHandler.HandleList)
	mux.HandleFunc("GET /recipes/search", recipeHandler.HandleSearch)
	mux.HandleFunc("GET /recipes/{id}", recipeHandler.HandleGet)
	mux.Handle("POST /recipes", protected(recipeHandler.HandleCreate))

	// Favorites
	mux.Handle("GET /favorites", protected(favoriteHandler.HandleList))
	mux.Handle("POST /favorites", protected(favoriteHandler.HandleAdd))
	mux.Handle("DELETE /favorites/{recipe_id}", protected(favoriteHandler.HandleRemove))

	// Notes
	mux.Handle("GET /notes", protected(noteHandler.HandleList))
	mux.Handle("POST /notes", protected(noteHandler.HandleCreate))
	mux.Handle("GET /notes/{id}", protected(noteHandler.HandleGet))
	mux.Handle("PUT /notes/{id}", protected(noteHandler.HandleUpdate))
	mux.Handle("DELETE /notes/{id}", protected(noteHandler.HandleDelete))

	// Operational
	mux.HandleFunc("GET /healthz", healthHandler.HandleHealthz)
	mux.HandleFunc("GET /config/runtime", healthHandler.HandleRuntimeConfig)

	var root http.Handler = mux
	root = RequestLogger(root)
	root = CORS(cfg.CORSOrigins(), root)
	root = SecurityHeaders(root)
	return root
}
