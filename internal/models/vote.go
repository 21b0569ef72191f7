package models

import (
	"gorm.io/gorm"
)

// DebateVote 表示一位參與者對對手的評分
// 每個 (RoomID, VoterID) 只允許一筆，重複提交會被拒絕而不是覆寫
type DebateVote struct {
	gorm.Model
	RoomID           uint `json:"room_id" gorm:"uniqueIndex:idx_room_voter"`
	VoterID          uint `json:"voter_id" gorm:"uniqueIndex:idx_room_voter"`
	VotedForUserID   uint `json:"voted_for_user_id"`
	LogicalReasoning int  `json:"logical_reasoning"`  // 1~5
	Politeness       int  `json:"politeness"`         // 1~5
	OpennessToChange int  `json:"openness_to_change"` // 1~5
}
