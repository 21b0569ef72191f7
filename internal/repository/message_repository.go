package repository

import (
	"debate_arena/internal/models"
	"debate_arena/internal/storage"
)

type MessageRepository interface {
	Create(message *models.DebateMessage) error
	FindByRoomID(roomID uint) ([]models.DebateMessage, error)
}

type messageRepository struct {
	db *storage.PostgresDB
}

func NewMessageRepository(db *storage.PostgresDB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(message *models.DebateMessage) error {
	return r.db.Create(message).Error
}

func (r *messageRepository) FindByRoomID(roomID uint) ([]models.DebateMessage, error) {
	var messages []models.DebateMessage
	err := r.db.Where("room_id = ?", roomID).Order("created_at asc").Find(&messages).Error
	return messages, err
}
