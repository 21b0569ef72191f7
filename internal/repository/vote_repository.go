package repository

import (
	"debate_arena/internal/models"
	"debate_arena/internal/storage"
)

type VoteRepository interface {
	Create(vote *models.DebateVote) error
	FindByRoomAndVoter(roomID, voterID uint) (*models.DebateVote, error)
	FindByRoomID(roomID uint) ([]models.DebateVote, error)
}

type voteRepository struct {
	db *storage.PostgresDB
}

func NewVoteRepository(db *storage.PostgresDB) VoteRepository {
	return &voteRepository{db: db}
}

func (r *voteRepository) Create(vote *models.DebateVote) error {
	return r.db.Create(vote).Error
}

func (r *voteRepository) FindByRoomAndVoter(roomID, voterID uint) (*models.DebateVote, error) {
	var vote models.DebateVote
	err := r.db.Where("room_id = ? AND voter_id = ?", roomID, voterID).First(&vote).Error
	if err != nil {
		return nil, err
	}
	return &vote, nil
}

func (r *voteRepository) FindByRoomID(roomID uint) ([]models.DebateVote, error) {
	var votes []models.DebateVote
	err := r.db.Where("room_id = ?", roomID).Find(&votes).Error
	return votes, err
}
