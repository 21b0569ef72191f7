package service

import (
	"errors"
	"math/rand"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"debate_arena/internal/models"
	"debate_arena/internal/repository"
)

// MatcherService 負責替用戶尋找立場不同的對手並建立辯論房間
type MatcherService struct {
	roomRepo    repository.RoomRepository
	opinionRepo repository.OpinionRepository
	logger      *zap.Logger
}

func NewMatcherService(roomRepo repository.RoomRepository, opinionRepo repository.OpinionRepository, logger *zap.Logger) *MatcherService {
	return &MatcherService{
		roomRepo:    roomRepo,
		opinionRepo: opinionRepo,
		logger:      logger,
	}
}

// MatchDebate 從持不同立場且開放辯論的用戶中隨機挑選一位對手，
// 並建立一個處於結構化階段的新房間，由發起者先發言
func (s *MatcherService) MatchDebate(topicID, userID uint) (*models.DebateRoom, error) {
	mine, err := s.opinionRepo.FindByTopicAndUser(topicID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoOpinionOnTopic
		}
		return nil, err
	}
	if !mine.DebateOpen {
		return nil, ErrDebateNotOpen
	}

	candidates, err := s.opinionRepo.FindDebatable(topicID, userID, mine.Stance)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, ErrNoOpponentsAvailable
	}

	// 任何符合條件的對手都可以，均勻隨機挑選一位
	opponent := candidates[rand.Intn(len(candidates))]

	room, err := s.createRoom(topicID, userID, mine.Stance, opponent.UserID, opponent.Stance)
	if err != nil {
		return nil, err
	}

	s.logger.Info("matched debate",
		zap.Uint("room_id", room.ID), zap.Uint("topic_id", topicID),
		zap.Uint("participant1", userID), zap.Uint("participant2", opponent.UserID))
	return room, nil
}

// StartDebateWithOpponent 直接挑戰某則意見的作者，
// 除了一般的資格檢查外，還會拒絕相同立場與自我配對
func (s *MatcherService) StartDebateWithOpponent(opinionID, userID uint) (*models.DebateRoom, error) {
	target, err := s.opinionRepo.FindByID(opinionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOpinionNotFound
		}
		return nil, err
	}

	if target.UserID == userID {
		return nil, ErrSelfDebate
	}
	if !target.DebateOpen {
		return nil, ErrDebateNotOpen
	}

	mine, err := s.opinionRepo.FindByTopicAndUser(target.TopicID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoOpinionOnTopic
		}
		return nil, err
	}
	if !mine.DebateOpen {
		return nil, ErrDebateNotOpen
	}
	if mine.Stance == target.Stance {
		return nil, ErrSameStance
	}

	room, err := s.createRoom(target.TopicID, userID, mine.Stance, target.UserID, target.Stance)
	if err != nil {
		return nil, err
	}

	s.logger.Info("started direct debate",
		zap.Uint("room_id", room.ID), zap.Uint("opinion_id", opinionID),
		zap.Uint("participant1", userID), zap.Uint("participant2", target.UserID))
	return room, nil
}

func (s *MatcherService) createRoom(topicID, userID uint, myStance string, opponentID uint, opponentStance string) (*models.DebateRoom, error) {
	room := &models.DebateRoom{
		TopicID:             topicID,
		Participant1ID:      userID,
		Participant2ID:      opponentID,
		Participant1Stance:  myStance,
		Participant2Stance:  opponentStance,
		Participant1Privacy: models.PrivacyPublic,
		Participant2Privacy: models.PrivacyPublic,
		Phase:               models.PhaseStructured,
		CurrentTurn:         userID, // 發起者先發言
		Status:              models.RoomStatusActive,
		StartedAt:           time.Now(),
	}

	if err := s.roomRepo.Create(room); err != nil {
		return nil, err
	}
	return room, nil
}
