package repository

import (
	"gorm.io/gorm"

	"debate_arena/internal/models"
	"debate_arena/internal/storage"
)

type RoomRepository interface {
	Create(room *models.DebateRoom) error
	FindByID(id uint) (*models.DebateRoom, error)
	Update(room *models.DebateRoom) error
	// UpdateWithMessage 在同一交易中保存訊息並更新房間
	UpdateWithMessage(room *models.DebateRoom, message *models.DebateMessage) error
	FindByParticipant(userID uint) ([]models.DebateRoom, error)
}

type roomRepository struct {
	db *storage.PostgresDB
}

func NewRoomRepository(db *storage.PostgresDB) RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) Create(room *models.DebateRoom) error {
	return r.db.Create(room).Error
}

func (r *roomRepository) FindByID(id uint) (*models.DebateRoom, error) {
	var room models.DebateRoom
	err := r.db.First(&room, id).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) Update(room *models.DebateRoom) error {
	return r.db.Save(room).Error
}

func (r *roomRepository) UpdateWithMessage(room *models.DebateRoom, message *models.DebateMessage) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(message).Error; err != nil {
			return err
		}
		return tx.Save(room).Error
	})
}

// FindByParticipant 查詢用戶參與過的所有辯論
func (r *roomRepository) FindByParticipant(userID uint) ([]models.DebateRoom, error) {
	var rooms []models.DebateRoom
	err := r.db.Where("participant1_id = ? OR participant2_id = ?", userID, userID).
		Order("created_at DESC").Find(&rooms).Error
	return rooms, err
}
