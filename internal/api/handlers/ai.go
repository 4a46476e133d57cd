package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/haoyu/ai-notebook/internal/service"
)

type AIHandler struct {
	aiService *service.AIService
}

func NewAIHandler(aiService *service.AIService) *AIHandler {
	return &AIHandler{aiService: aiService}
}

type TextRequest struct {
	Text string `json:"text"`
}

type InsightRequest struct {
	Content string `json:"content"`
}

type PolishResponse struct {
	OriginalText  string `json:"original_text"`
	ProcessedText string `json:"processed_text"`
}

type ContinueResponse struct {
	OriginalText  string `json:"original_text"`
	ContinuedText string `json:"continued_text"`
}

func (h *AIHandler) Polish(w http.ResponseWriter, r *http.Request) {
	var req TextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Text == "" {
		respondError(w, http.StatusBadRequest, "Text content is required")
		return
	}

	respondJSON(w, http.StatusOK, PolishResponse{
		OriginalText:  req.Text,
		ProcessedText: h.aiService.Polish(req.Text),
	})
}

func (h *AIHandler) Continue(w http.ResponseWriter, r *http.Request) {
	var req TextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Text == "" {
		respondError(w, http.StatusBadRequest, "Text content is required")
		return
	}

	respondJSON(w, http.StatusOK, ContinueResponse{
		OriginalText:  req.Text,
		ContinuedText: h.aiService.Continue(req.Text),
	})
}

func (h *AIHandler) Insight(w http.ResponseWriter, r *http.Request) {
	var req InsightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Content == "" {
		respondError(w, http.StatusBadRequest, "Note content is required")
		return
	}

	respondJSON(w, http.StatusOK, h.aiService.GenerateInsight(req.Content))
}
