package repositories

import (
	"context"

	"gorm.io/gorm"

	"wanderly/internal/models/db_models"
)

type ChatRepository interface {
	Insert(ctx context.Context, message *db_models.ChatMessage) error
	ListByUserId(ctx context.Context, userId string) ([]db_models.ChatMessage, error)
}

type chatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{
		db: db,
	}
}

func (c *chatRepository) Insert(ctx context.Context, message *db_models.ChatMessage) error {
	return c.db.WithContext(ctx).Create(message).Error
}

// ListByUserId returns the user's messages oldest first for linear replay.
func (c *chatRepository) ListByUserId(ctx context.Context, userId string) ([]db_models.ChatMessage, error) {
	var messages []db_models.ChatMessage
	err := c.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("created_at ASC, id ASC").
		Find(&messages).Error

	if err != nil {
		return nil, err
	}

	return messages, nil
}
