package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/msomdec/recipe-hub/internal/domain"
	"github.com/msomdec/recipe-hub/internal/service"
)

// NoteHandler handles the current user's recipe notes. All routes are
// protected.
type NoteHandler struct {
	notes *service.NoteService
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(notes *service.NoteService) *NoteHandler {
	return &NoteHandler{notes: notes}
}

// HandleList returns all notes by the current user.
// GET /notes
func (h *NoteHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	notes, err := h.notes.List(r.Context(), user.ID)
	if err != nil {
		slog.Error("list notes", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, toNoteDTOs(notes))
}

// HandleCreate attaches a new note to a recipe.
// POST /notes  {"recipe_id": 1, "content": "..."}
func (h *NoteHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	var req struct {
		RecipeID int64  `json:"recipe_id"`
		Content  string `json:"content"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Invalid request body.")
		return
	}

	note, err := h.notes.Create(r.Context(), user.ID, req.RecipeID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "Recipe not found.")
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			slog.Error("create note", "error", err)
			writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		}
		return
	}

	writeJSON(w, http.StatusCreated, toNoteDTO(note))
}

// HandleGet returns one of the current user's notes.
// GET /notes/{id}
func (h *NoteHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user, noteID, ok := h.noteRequest(w, r)
	if !ok {
		return
	}

	note, err := h.notes.Get(r.Context(), user.ID, noteID)
	if err != nil {
		h.writeNoteError(w, "get note", err)
		return
	}

	writeJSON(w, http.StatusOK, toNoteDTO(note))
}

// HandleUpdate replaces the content of one of the current user's notes.
// PUT /notes/{id}  {"content": "..."}
func (h *NoteHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user, noteID, ok := h.noteRequest(w, r)
	if !ok {
		return
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Invalid request body.")
		return
	}

	note, err := h.notes.Update(r.Context(), user.ID, noteID, req.Content)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		h.writeNoteError(w, "update note", err)
		return
	}

	writeJSON(w, http.StatusOK, toNoteDTO(note))
}

// HandleDelete removes one of the current user's notes.
// DELETE /notes/{id}
func (h *NoteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user, noteID, ok := h.noteRequest(w, r)
	if !ok {
		return
	}

	if err := h.notes.Delete(r.Context(), user.ID, noteID); err != nil {
		h.writeNoteError(w, "delete note", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// noteRequest resolves the current user and the {id} path value, writing
// the error response itself when either is missing.
func (h *NoteHandler) noteRequest(w http.ResponseWriter, r *http.Request) (*domain.User, int64, bool) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated.")
		return nil, 0, false
	}

	noteID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Note not found.")
		return nil, 0, false
	}
	return user, noteID, true
}

func (h *NoteHandler) writeNoteError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Note not found.")
		return
	}
	slog.Error(op, "error", err)
	writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
}
