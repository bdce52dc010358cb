package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/msomdec/recipe-hub/internal/config"
	"github.com/msomdec/recipe-hub/internal/handler"
	"github.com/msomdec/recipe-hub/internal/repository/sqlite"
	"github.com/msomdec/recipe-hub/internal/service"
)

const testJWTSecret = "test-secret-key-for-unit-tests!!"

func newTestConfig() *config.Config {
	return &config.Config{
		Port:                     "8080",
		DatabaseURL:              "test.db",
		JWTSecret:                testJWTSecret,
		JWTAlgorithm:             "HS256",
		AccessTokenExpireMinutes: 60,
		BcryptCost:               4,
	}
}

// newTestServer spins up the full HTTP stack against a throwaway database.
// The login rate limiter is disabled unless one is passed in.
func newTestServer(t *testing.T, limiter *service.LoginLimiter) (*httptest.Server, handler.Services) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	cfg := newTestConfig()
	tokens, err := service.NewTokenService(cfg.JWTSecret, cfg.JWTAlgorithm, time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}

	recipes := service.NewRecipeService(db.Recipes())
	svc := handler.Services{
		Auth:       service.NewAuthService(db.Users(), tokens, service.NewPasswordHasher(cfg.BcryptCost)),
		Categories: service.NewCategoryService(db.Categories()),
		Recipes:    recipes,
		Favorites:  service.NewFavoriteService(db.Favorites(), recipes),
		Notes:      service.NewNoteService(db.Notes(), recipes),
		Limiter:    limiter,
	}
	if err := svc.Categories.SeedPredefined(context.Background()); err != nil {
		t.Fatalf("SeedPredefined: %v", err)
	}

	mux := http.NewServeMux()
	root := handler.RegisterRoutes(mux, cfg, svc)

	srv := httptest.NewServer(root)
	t.Cleanup(srv.Close)
	return srv, svc
}
