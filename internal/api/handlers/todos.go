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

type TodoHandler struct {
	todoService *service.TodoService
}

func NewTodoHandler(todoService *service.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

type CreateTodoRequest struct {
	Text        *string `json:"text"`
	IsCompleted *bool   `json:"is_completed"`
}

type UpdateTodoRequest struct {
	IsCompleted *bool `json:"is_completed"`
}

func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	todos, err := h.todoService.List(r.Context(), userID)
	if err != nil {
		log.Printf("ERROR [todos.List] failed to list todos: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]TodoResponse, 0, len(todos))
	for _, todo := range todos {
		resp = append(resp, toTodoResponse(todo))
	}

	respondJSON(w, http.StatusOK, map[string][]TodoResponse{"todos": resp})
}

func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CreateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Text == nil || *req.Text == "" {
		respondError(w, http.StatusBadRequest, "Todo text is required")
		return
	}

	input := service.CreateTodoInput{Text: *req.Text}
	if req.IsCompleted != nil {
		input.IsCompleted = *req.IsCompleted
	}

	todo, err := h.todoService.Create(r.Context(), userID, input)
	if err != nil {
		log.Printf("ERROR [todos.Create] failed to create todo: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]TodoResponse{"todo": toTodoResponse(todo)})
}

func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	todoID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Todo not found")
		return
	}

	var req UpdateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	todo, err := h.todoService.Update(r.Context(), todoID, userID, service.UpdateTodoInput{
		IsCompleted: req.IsCompleted,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Todo not found")
			return
		}
		log.Printf("ERROR [todos.Update] failed to update todo: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]TodoResponse{"todo": toTodoResponse(todo)})
}
