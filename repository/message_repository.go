package repository

import (
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/entity"
	"gorm.io/gorm"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db}
}

func (r *MessageRepository) Create(msg *entity.Message) error {
	return r.db.Create(msg).Error
}

// FindRecentByRoom returns up to limit messages, newest first. Callers that
// need chronological order reverse the slice.
func (r *MessageRepository) FindRecentByRoom(room string, limit int) ([]entity.Message, error) {
	var msgs []entity.Message
	err := r.db.
		Where("room = ?", room).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&msgs).Error
	return msgs, err
}
