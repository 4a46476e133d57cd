package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/haoyu/ai-notebook/internal/domain"
	"github.com/haoyu/ai-notebook/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// visibilityWindowDays is how long a completed todo stays in the list,
// counted in calendar days from its creation date.
const visibilityWindowDays = 7

type TodoService struct {
	todoRepo repository.TodoRepository
}

func NewTodoService(todoRepo repository.TodoRepository) *TodoService {
	return &TodoService{todoRepo: todoRepo}
}

// List returns every open todo regardless of age, plus completed todos
// created within the last seven calendar days (boundary inclusive).
func (s *TodoService) List(ctx context.Context, userID uuid.UUID) ([]*domain.Todo, error) {
	cutoff := time.Now().AddDate(0, 0, -visibilityWindowDays)
	return s.todoRepo.ListVisible(ctx, userID, cutoff)
}

type CreateTodoInput struct {
	Text        string
	IsCompleted bool
}

func (s *TodoService) Create(ctx context.Context, userID uuid.UUID, input CreateTodoInput) (*domain.Todo, error) {
	todo := &domain.Todo{
		ID:          uuid.New(),
		UserID:      userID,
		Text:        input.Text,
		IsCompleted: input.IsCompleted,
		CreatedDate: datatypes.Date(time.Now()),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.todoRepo.Create(ctx, todo); err != nil {
		return nil, err
	}

	return todo, nil
}

type UpdateTodoInput struct {
	IsCompleted *bool
}

// Update toggles the completion flag. The text and creation date are never
// mutated after creation.
func (s *TodoService) Update(ctx context.Context, id, userID uuid.UUID, input UpdateTodoInput) (*domain.Todo, error) {
	todo, err := s.todoRepo.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if input.IsCompleted != nil {
		todo.IsCompleted = *input.IsCompleted
	}
	todo.UpdatedAt = time.Now()

	if err := s.todoRepo.Update(ctx, todo); err != nil {
		return nil, err
	}

	return todo, nil
}
