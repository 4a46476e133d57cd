package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/haoyu/ai-notebook/internal/api/middleware"
	"github.com/haoyu/ai-notebook/internal/domain"
	"github.com/haoyu/ai-notebook/internal/service"
)

type NoteHandler struct {
	noteService *service.NoteService
}

func NewNoteHandler(noteService *service.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

type CreateNoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type UpdateNoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	notes, err := h.noteService.List(r.Context(), userID)
	if err != nil {
		log.Printf("ERROR [notes.List] failed to list notes: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]NoteResponse, 0, len(notes))
	for _, note := range notes {
		resp = append(resp, toNoteResponse(note))
	}

	respondJSON(w, http.StatusOK, map[string][]NoteResponse{"notes": resp})
}

func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	noteID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Note not found")
		return
	}

	note, err := h.noteService.Get(r.Context(), noteID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Note not found")
			return
		}
		log.Printf("ERROR [notes.Get] failed to get note: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]NoteResponse{"note": toNoteResponse(note)})
}

func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Title == nil || *req.Title == "" || req.Content == nil {
		respondError(w, http.StatusBadRequest, "Title and content are required")
		return
	}

	note, err := h.noteService.Create(r.Context(), userID, service.CreateNoteInput{
		Title:   *req.Title,
		Content: *req.Content,
	})
	if err != nil {
		log.Printf("ERROR [notes.Create] failed to create note: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	log.Printf("INFO [notes.Create] user %s created note %s", userID, note.ID)
	respondJSON(w, http.StatusCreated, map[string]NoteResponse{"note": toNoteResponse(note)})
}

func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	noteID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Note not found")
		return
	}

	var req UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	note, err := h.noteService.Update(r.Context(), noteID, userID, service.UpdateNoteInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Note not found")
			return
		}
		log.Printf("ERROR [notes.Update] failed to update note: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]NoteResponse{"note": toNoteResponse(note)})
}

func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	noteID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Note not found")
		return
	}

	if err := h.noteService.Delete(r.Context(), noteID, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Note not found")
			return
		}
		log.Printf("ERROR [notes.Delete] failed to delete note: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Note deleted"})
}
