package repository

import (
	"errors"

	"gorm.io/gorm"

	"debate_arena/internal/models"
	"debate_arena/internal/storage"
)

type OpinionRepository interface {
	Upsert(opinion *models.Opinion) error
	FindByID(id uint) (*models.Opinion, error)
	FindByTopicAndUser(topicID, userID uint) (*models.Opinion, error)
	FindByTopicID(topicID uint) ([]models.Opinion, error)
	// FindDebatable 查詢同主題中立場不同、開放辯論且排除指定用戶的意見
	FindDebatable(topicID uint, excludeUserID uint, stance string) ([]models.Opinion, error)
}

type opinionRepository struct {
	db *storage.PostgresDB
}

func NewOpinionRepository(db *storage.PostgresDB) OpinionRepository {
	return &opinionRepository{db: db}
}

// Upsert 建立或更新用戶對主題的意見，每個用戶對每個主題只有一筆
func (r *opinionRepository) Upsert(opinion *models.Opinion) error {
	var existing models.Opinion
	err := r.db.Where("topic_id = ? AND user_id = ?", opinion.TopicID, opinion.UserID).
		First(&existing).Error
	if err == nil {
		opinion.ID = existing.ID
		opinion.CreatedAt = existing.CreatedAt
		return r.db.Save(opinion).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.db.Create(opinion).Error
}

func (r *opinionRepository) FindByID(id uint) (*models.Opinion, error) {
	var opinion models.Opinion
	err := r.db.First(&opinion, id).Error
	if err != nil {
		return nil, err
	}
	return &opinion, nil
}

func (r *opinionRepository) FindByTopicAndUser(topicID, userID uint) (*models.Opinion, error) {
	var opinion models.Opinion
	err := r.db.Where("topic_id = ? AND user_id = ?", topicID, userID).First(&opinion).Error
	if err != nil {
		return nil, err
	}
	return &opinion, nil
}

func (r *opinionRepository) FindByTopicID(topicID uint) ([]models.Opinion, error) {
	var opinions []models.Opinion
	err := r.db.Where("topic_id = ?", topicID).Order("created_at DESC").Find(&opinions).Error
	return opinions, err
}

func (r *opinionRepository) FindDebatable(topicID uint, excludeUserID uint, stance string) ([]models.Opinion, error) {
	var opinions []models.Opinion
	err := r.db.Where("topic_id = ? AND user_id <> ? AND stance <> ? AND debate_open = ?",
		topicID, excludeUserID, stance, true).Find(&opinions).Error
	return opinions, err
}
