package service

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"debate_arena/internal/models"
)

// 評分的固定範圍
const (
	RatingMin = 1
	RatingMax = 5
)

// Ratings 是對對手的三個獨立評分維度，各自介於 1~5。
// 此引擎不計算任何總分，原始評分留給外部的統計服務使用
type Ratings struct {
	LogicalReasoning int `json:"logical_reasoning"`
	Politeness       int `json:"politeness"`
	OpennessToChange int `json:"openness_to_change"`
}

func (r Ratings) valid() bool {
	for _, v := range []int{r.LogicalReasoning, r.Politeness, r.OpennessToChange} {
		if v < RatingMin || v > RatingMax {
			return false
		}
	}
	return true
}

// SubmitVote 在投票階段記錄一位參與者對對手的評分與是否繼續的選擇。
// 每位參與者只能投一次。兩個繼續槽位都填入後立即對帳：
// 雙方都同意才進入自由階段，任一方反對就結束辯論
func (s *RoomService) SubmitVote(roomID, voterID, votedForUserID uint, ratings Ratings, continueDebate bool) (*models.DebateVote, *models.DebateRoom, error) {
	lock := s.locks.lock(roomID)
	defer lock.Unlock()

	room, err := s.loadRoom(roomID)
	if err != nil {
		return nil, nil, err
	}

	if room.Status == models.RoomStatusEnded {
		return nil, nil, ErrDebateEnded
	}
	if room.Phase != models.PhaseVoting {
		return nil, nil, ErrNotVotingPhase
	}
	if !room.IsParticipant(voterID) {
		return nil, nil, ErrNotParticipant
	}
	if votedForUserID != room.OtherParticipant(voterID) {
		return nil, nil, ErrInvalidOpponent
	}
	if !ratings.valid() {
		return nil, nil, ErrInvalidRating
	}

	if _, err := s.voteRepo.FindByRoomAndVoter(roomID, voterID); err == nil {
		return nil, nil, ErrDuplicateVote
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, err
	}

	vote := &models.DebateVote{
		RoomID:           roomID,
		VoterID:          voterID,
		VotedForUserID:   votedForUserID,
		LogicalReasoning: ratings.LogicalReasoning,
		Politeness:       ratings.Politeness,
		OpennessToChange: ratings.OpennessToChange,
	}
	if err := s.voteRepo.Create(vote); err != nil {
		return nil, nil, err
	}

	if voterID == room.Participant1ID {
		room.VotesToContinue1 = &continueDebate
	} else {
		room.VotesToContinue2 = &continueDebate
	}

	// 兩個槽位都填入後才決定結果，否則等待另一方投票
	changed := false
	if room.VotesToContinue1 != nil && room.VotesToContinue2 != nil {
		changed = true
		if *room.VotesToContinue1 && *room.VotesToContinue2 {
			room.Phase = models.PhaseFreeform
		} else {
			now := time.Now()
			room.Status = models.RoomStatusEnded
			room.EndedAt = &now
		}
	}

	if err := s.roomRepo.Update(room); err != nil {
		return nil, nil, err
	}

	if changed {
		s.broadcastPhase(room)
		s.logger.Info("votes reconciled",
			zap.Uint("room_id", roomID),
			zap.String("phase", string(room.Phase)),
			zap.String("status", string(room.Status)))

		// 任一方反對就結束，鎖表不再保留此房間的項目
		if room.Status == models.RoomStatusEnded {
			s.locks.release(roomID, lock)
		}
	}

	return vote, room, nil
}

// GetVotes 回傳房間的所有評分紀錄
func (s *RoomService) GetVotes(roomID uint) ([]models.DebateVote, error) {
	if _, err := s.loadRoom(roomID); err != nil {
		return nil, err
	}
	return s.voteRepo.FindByRoomID(roomID)
}
