package repository

import (
	"context"

	"gorm.io/gorm"

	model "repairdesk.com/repairdesk/internal/models"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(ctx context.Context, msg *model.Message) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

// Conversation returns the messages exchanged between two users in insertion
// order, both directions.
func (r *MessageRepository) Conversation(ctx context.Context, userID, otherUserID uint) ([]model.Message, error) {
	var messages []model.Message
	err := r.db.WithContext(ctx).
		Where("(from_user_id = ? AND to_user_id = ?) OR (from_user_id = ? AND to_user_id = ?)",
			userID, otherUserID, otherUserID, userID).
		Order("id asc").
		Find(&messages).Error
	return messages, err
}

// MarkSeen flips the seen flag on every message sent by fromUserID to
// toUserID.
func (r *MessageRepository) MarkSeen(ctx context.Context, toUserID, fromUserID uint) error {
	return r.db.WithContext(ctx).Model(&model.Message{}).
		Where("to_user_id = ? AND from_user_id = ? AND seen = ?", toUserID, fromUserID, false).
		Update("seen", true).Error
}
