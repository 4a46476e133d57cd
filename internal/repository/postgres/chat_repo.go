package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/haoyu/ai-notebook/internal/domain"
	"gorm.io/gorm"
)

type chatMessageRepository struct {
	db *gorm.DB
}

func NewChatMessageRepository(db *gorm.DB) *chatMessageRepository {
	return &chatMessageRepository{db: db}
}

func (r *chatMessageRepository) CreateTurn(ctx context.Context, userMsg, assistantMsg *domain.ChatMessage) error {
	if !userMsg.Role.Valid() || !assistantMsg.Role.Valid() {
		return domain.ErrInvalidRole
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(userMsg).Error; err != nil {
			return err
		}
		return tx.Create(assistantMsg).Error
	})
}

func (r *chatMessageRepository) ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.ChatMessage, error) {
	var messages []*domain.ChatMessage
	err := r.db.WithContext(ctx).
		Scopes(ownedBy(userID)).
		Order("created_at ASC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *chatMessageRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.ChatMessage{}, "user_id = ?", userID).Error
}
