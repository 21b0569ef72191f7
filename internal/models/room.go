package models

import (
	"time"

	"gorm.io/gorm"
)

// DebateRoom 表示一場一對一的辯論
// 兩位參與者與立場在建立後不可變更，隱私設定只能由本人修改
type DebateRoom struct {
	gorm.Model
	TopicID             uint        `json:"topic_id"`
	Participant1ID      uint        `json:"participant1_id"`
	Participant2ID      uint        `json:"participant2_id"`
	Participant1Stance  string      `json:"participant1_stance"`
	Participant2Stance  string      `json:"participant2_stance"`
	Participant1Privacy Privacy     `json:"participant1_privacy" gorm:"type:varchar(10)"`
	Participant2Privacy Privacy     `json:"participant2_privacy" gorm:"type:varchar(10)"`
	Phase               DebatePhase `json:"phase" gorm:"type:varchar(20)"`
	CurrentTurn         uint        `json:"current_turn"`
	TurnCount1          int         `json:"turn_count1"`
	TurnCount2          int         `json:"turn_count2"`
	VotesToContinue1    *bool       `json:"votes_to_continue1"`
	VotesToContinue2    *bool       `json:"votes_to_continue2"`
	Status              RoomStatus  `json:"status" gorm:"type:varchar(10)"`
	StartedAt           time.Time   `json:"started_at"`
	EndedAt             *time.Time  `json:"ended_at"`
}

// DebatePhase 定義辯論階段的類型
// 階段只會單向前進：structured -> voting -> freeform
type DebatePhase string

const (
	PhaseStructured DebatePhase = "structured" // 結構化階段，輪流發言
	PhaseVoting     DebatePhase = "voting"     // 投票階段，雙方互評並決定是否繼續
	PhaseFreeform   DebatePhase = "freeform"   // 自由討論階段
)

// RoomStatus 定義房間狀態的類型
type RoomStatus string

const (
	RoomStatusActive RoomStatus = "active"
	RoomStatusEnded  RoomStatus = "ended" // 終態，之後不允許任何變更
)

// Privacy 定義參與者的訊息隱私設定
type Privacy string

const (
	PrivacyPublic  Privacy = "public"
	PrivacyPrivate Privacy = "private"
)

// IsParticipant 判斷指定用戶是否為房間的參與者
func (r *DebateRoom) IsParticipant(userID uint) bool {
	return userID == r.Participant1ID || userID == r.Participant2ID
}

// OtherParticipant 回傳對手的用戶 ID，若不是參與者則回傳 0
func (r *DebateRoom) OtherParticipant(userID uint) uint {
	switch userID {
	case r.Participant1ID:
		return r.Participant2ID
	case r.Participant2ID:
		return r.Participant1ID
	default:
		return 0
	}
}
