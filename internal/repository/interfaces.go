package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/haoyu/ai-notebook/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type NoteRepository interface {
	Create(ctx context.Context, note *domain.Note) error
	GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.Note, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Note, error)
	Update(ctx context.Context, note *domain.Note) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type TodoRepository interface {
	Create(ctx context.Context, todo *domain.Todo) error
	GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.Todo, error)
	// ListVisible returns every incomplete todo plus completed todos whose
	// created_date is on or after completedSince, incomplete first, newest
	// first within each group.
	ListVisible(ctx context.Context, userID uuid.UUID, completedSince time.Time) ([]*domain.Todo, error)
	Update(ctx context.Context, todo *domain.Todo) error
}

type ChatMessageRepository interface {
	// CreateTurn persists a user message and the assistant reply in one
	// transaction; either both rows land or neither does.
	CreateTurn(ctx context.Context, userMsg, assistantMsg *domain.ChatMessage) error
	ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.ChatMessage, error)
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

type Repositories struct {
	User        UserRepository
	Note        NoteRepository
	Todo        TodoRepository
	ChatMessage ChatMessageRepository
}
