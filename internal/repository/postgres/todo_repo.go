package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/haoyu/ai-notebook/internal/domain"
	"gorm.io/gorm"
)

type todoRepository struct {
	db *gorm.DB
}

func NewTodoRepository(db *gorm.DB) *todoRepository {
	return &todoRepository{db: db}
}

func (r *todoRepository) Create(ctx context.Context, todo *domain.Todo) error {
	return r.db.WithContext(ctx).Create(todo).Error
}

func (r *todoRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.Todo, error) {
	var todo domain.Todo
	err := r.db.WithContext(ctx).
		Scopes(ownedBy(userID)).
		First(&todo, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

func (r *todoRepository) ListVisible(ctx context.Context, userID uuid.UUID, completedSince time.Time) ([]*domain.Todo, error) {
	var todos []*domain.Todo
	err := r.db.WithContext(ctx).
		Scopes(ownedBy(userID)).
		Where("is_completed = ? OR (is_completed = ? AND created_date >= ?)",
			false, true, completedSince.Format("2006-01-02")).
		Order("is_completed ASC, created_at DESC").
		Find(&todos).Error
	if err != nil {
		return nil, err
	}
	return todos, nil
}

func (r *todoRepository) Update(ctx context.Context, todo *domain.Todo) error {
	return r.db.WithContext(ctx).Save(todo).Error
}
