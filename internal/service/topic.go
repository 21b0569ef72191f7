package service

import (
	"errors"

	"gorm.io/gorm"

	"debate_arena/internal/models"
	"debate_arena/internal/repository"
)

// TopicService 提供主題與意見的基本操作，
// 意見是配對器挑選對手的來源
type TopicService struct {
	topicRepo   repository.TopicRepository
	opinionRepo repository.OpinionRepository
}

func NewTopicService(topicRepo repository.TopicRepository, opinionRepo repository.OpinionRepository) *TopicService {
	return &TopicService{topicRepo: topicRepo, opinionRepo: opinionRepo}
}

func (s *TopicService) CreateTopic(title, description string) (*models.Topic, error) {
	topic := &models.Topic{Title: title, Description: description}
	if err := s.topicRepo.Create(topic); err != nil {
		return nil, err
	}
	return topic, nil
}

func (s *TopicService) GetTopic(id uint) (*models.Topic, error) {
	topic, err := s.topicRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTopicNotFound
		}
		return nil, err
	}
	return topic, nil
}

func (s *TopicService) ListTopics() ([]models.Topic, error) {
	return s.topicRepo.FindAll()
}

// UpsertOpinion 建立或更新用戶對主題的意見
func (s *TopicService) UpsertOpinion(topicID, userID uint, stance, content string, debateOpen bool) (*models.Opinion, error) {
	if _, err := s.GetTopic(topicID); err != nil {
		return nil, err
	}

	opinion := &models.Opinion{
		TopicID:    topicID,
		UserID:     userID,
		Stance:     stance,
		Content:    content,
		DebateOpen: debateOpen,
	}
	if err := s.opinionRepo.Upsert(opinion); err != nil {
		return nil, err
	}
	return opinion, nil
}

func (s *TopicService) ListOpinions(topicID uint) ([]models.Opinion, error) {
	if _, err := s.GetTopic(topicID); err != nil {
		return nil, err
	}
	return s.opinionRepo.FindByTopicID(topicID)
}
