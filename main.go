package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/msomdec/recipe-hub/internal/config"
	"github.com/msomdec/recipe-hub/internal/handler"
	"github.com/msomdec/recipe-hub/internal/repository/sqlite"
	"github.com/msomdec/recipe-hub/internal/service"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	db, err := sqlite.New(cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(context.Background()); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("database migrations applied")

	tokenTTL := time.Duration(cfg.AccessTokenExpireMinutes) * time.Minute
	tokenService, err := service.NewTokenService(cfg.JWTSecret, cfg.JWTAlgorithm, tokenTTL)
	if err != nil {
		slog.Error("failed to configure token signing", "error", err)
		os.Exit(1)
	}

	authService := service.NewAuthService(db.Users(), tokenService, service.NewPasswordHasher(cfg.BcryptCost))
	categoryService := service.NewCategoryService(db.Categories())
	recipeService := service.NewRecipeService(db.Recipes())
	favoriteService := service.NewFavoriteService(db.Favorites(), recipeService)
	noteService := service.NewNoteService(db.Notes(), recipeService)

	// Seed predefined categories (idempotent).
	if err := categoryService.SeedPredefined(context.Background()); err != nil {
		slog.Error("failed to seed predefined categories", "error", err)
		os.Exit(1)
	}
	slog.Info("predefined categories seeded")

	// Allow one login attempt every 2 seconds per client, with a small burst.
	loginLimiter := service.NewLoginLimiter(0.5, 5)
	defer loginLimiter.Close()

	mux := http.NewServeMux()
	root := handler.RegisterRoutes(mux, cfg, handler.Services{
		Auth:       authService,
		Categories: categoryService,
		Recipes:    recipeService,
		Favorites:  favoriteService,
		Notes:      noteService,
		Limiter:    loginLimiter,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           root,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
