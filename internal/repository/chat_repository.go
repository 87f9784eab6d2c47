package repository

import (
	"context"

	"chatbox-backend/internal/domain/chat"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostgresChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &PostgresChatRepository{db: db}
}

func (r *PostgresChatRepository) Create(ctx context.Context, m *chat.Message) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// ListByAccount returns an account's prompts in seq order, so conversation
// order never depends on storage write order.
func (r *PostgresChatRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]chat.Message, error) {
	var messages []chat.Message
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("seq ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *PostgresChatRepository) CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&chat.Message{}).
		Where("account_id = ?", accountID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
