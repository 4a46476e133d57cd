package service

import (
	"github.com/haoyu/ai-notebook/internal/config"
	"github.com/haoyu/ai-notebook/internal/repository"
)

type Services struct {
	Auth *AuthService
	Note *NoteService
	Todo *TodoService
	Chat *ChatService
	AI   *AIService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth: NewAuthService(repos.User, cfg),
		Note: NewNoteService(repos.Note),
		Todo: NewTodoService(repos.Todo),
		Chat: NewChatService(repos.ChatMessage, cfg),
		AI:   NewAIService(cfg),
	}
}
