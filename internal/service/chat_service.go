package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/haoyu/ai-notebook/internal/config"
	"github.com/haoyu/ai-notebook/internal/domain"
	"github.com/haoyu/ai-notebook/internal/repository"
)

// historyLimit caps how many messages a history fetch returns.
const historyLimit = 50

type ChatService struct {
	chatRepo repository.ChatMessageRepository
	cfg      *config.Config
}

func NewChatService(chatRepo repository.ChatMessageRepository, cfg *config.Config) *ChatService {
	return &ChatService{
		chatRepo: chatRepo,
		cfg:      cfg,
	}
}

type ChatTurn struct {
	UserMessage      *domain.ChatMessage
	AssistantMessage *domain.ChatMessage
}

// SendMessage stores the user message and a canned assistant reply as one
// transactional pair.
func (s *ChatService) SendMessage(ctx context.Context, userID uuid.UUID, message string) (*ChatTurn, error) {
	userMsg := &domain.ChatMessage{
		ID:        uuid.New(),
		UserID:    userID,
		Role:      domain.ChatRoleUser,
		Content:   message,
		CreatedAt: time.Now(),
	}

	// TODO: call the configured OpenAI model (s.cfg.OpenAIModel) instead of
	// returning the canned reply.
	reply := "This is a simulated AI reply; the real OpenAI integration is coming later."

	assistantMsg := &domain.ChatMessage{
		ID:        uuid.New(),
		UserID:    userID,
		Role:      domain.ChatRoleAssistant,
		Content:   reply,
		CreatedAt: time.Now(),
	}

	if err := s.chatRepo.CreateTurn(ctx, userMsg, assistantMsg); err != nil {
		return nil, err
	}

	return &ChatTurn{UserMessage: userMsg, AssistantMessage: assistantMsg}, nil
}

// History returns up to 50 messages in ascending creation order.
func (s *ChatService) History(ctx context.Context, userID uuid.UUID) ([]*domain.ChatMessage, error) {
	return s.chatRepo.ListByUserID(ctx, userID, historyLimit)
}

func (s *ChatService) ClearHistory(ctx context.Context, userID uuid.UUID) error {
	return s.chatRepo.DeleteByUserID(ctx, userID)
}
