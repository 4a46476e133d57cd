package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/haoyu/ai-notebook/internal/api/middleware"
	"github.com/haoyu/ai-notebook/internal/service"
)

type ChatHandler struct {
	chatService *service.ChatService
}

func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

type SendMessageRequest struct {
	Message string `json:"message"`
}

// AIReply mirrors the shape the original clients expect for the assistant
// half of a chat turn: role and content only, no row metadata.
type AIReply struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type SendMessageResponse struct {
	UserMessage ChatMessageResponse `json:"user_message"`
	AIResponse  AIReply             `json:"ai_response"`
}

func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Message == "" {
		respondError(w, http.StatusBadRequest, "Message content is required")
		return
	}

	turn, err := h.chatService.SendMessage(r.Context(), userID, req.Message)
	if err != nil {
		log.Printf("ERROR [chat.Send] failed to send message: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, SendMessageResponse{
		UserMessage: toChatMessageResponse(turn.UserMessage),
		AIResponse: AIReply{
			Role:    string(turn.AssistantMessage.Role),
			Content: turn.AssistantMessage.Content,
		},
	})
}

func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	messages, err := h.chatService.History(r.Context(), userID)
	if err != nil {
		log.Printf("ERROR [chat.History] failed to fetch history: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]ChatMessageResponse, 0, len(messages))
	for _, msg := range messages {
		resp = append(resp, toChatMessageResponse(msg))
	}

	respondJSON(w, http.StatusOK, map[string][]ChatMessageResponse{"messages": resp})
}

func (h *ChatHandler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.chatService.ClearHistory(r.Context(), userID); err != nil {
		log.Printf("ERROR [chat.ClearHistory] failed to clear history: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Chat history cleared"})
}
