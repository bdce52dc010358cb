package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/msomdec/recipe-hub/internal/domain"
)

// NoteService manages a user's personal notes on recipes. All operations
// are scoped to the owning user: someone else's note is indistinguishable
// from a missing one.
type NoteService struct {
	notes   domain.NoteRepository
	recipes *RecipeService
}

// NewNoteService creates a new NoteService.
func NewNoteService(notes domain.NoteRepository, recipes *RecipeService) *NoteService {
	return &NoteService{notes: notes, recipes: recipes}
}

// List returns all notes by the user, most recently updated first.
func (s *NoteService) List(ctx context.Context, userID int64) ([]domain.Note, error) {
	return s.notes.ListByUser(ctx, userID)
}

// Create attaches a new note to a recipe for the user.
func (s *NoteService) Create(ctx context.Context, userID, recipeID int64, content string) (*domain.Note, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: note content must be non-empty", domain.ErrInvalidInput)
	}

	exists, err := s.recipes.Exists(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("check recipe: %w", err)
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	note := &domain.Note{UserID: userID, RecipeID: recipeID, Content: content}
	if err := s.notes.Create(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

// Get returns a note by ID if it belongs to the user.
func (s *NoteService) Get(ctx context.Context, userID, noteID int64) (*domain.Note, error) {
	return s.getOwned(ctx, userID, noteID)
}

// Update replaces the content of a note belonging to the user.
func (s *NoteService) Update(ctx context.Context, userID, noteID int64, content string) (*domain.Note, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: note content must be non-empty", domain.ErrInvalidInput)
	}

	note, err := s.getOwned(ctx, userID, noteID)
	if err != nil {
		return nil, err
	}

	note.Content = content
	if err := s.notes.Update(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

// Delete removes a note belonging to the user.
func (s *NoteService) Delete(ctx context.Context, userID, noteID int64) error {
	note, err := s.getOwned(ctx, userID, noteID)
	if err != nil {
		return err
	}
	return s.notes.Delete(ctx, note.ID)
}

func (s *NoteService) getOwned(ctx context.Context, userID, noteID int64) (*domain.Note, error) {
	note, err := s.notes.GetByID(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if note.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return note, nil
}
