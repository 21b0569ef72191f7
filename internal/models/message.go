package models

import (
	"gorm.io/gorm"
)

// DebateMessage 表示一條辯論訊息
// 建立後內容不可變更，只有審核狀態可由內容過濾器調整
type DebateMessage struct {
	gorm.Model
	RoomID  uint          `json:"room_id" gorm:"index"`
	UserID  uint          `json:"user_id"`
	Content string        `json:"content" gorm:"type:text"`
	Status  MessageStatus `json:"status" gorm:"type:varchar(10)"`
}

// MessageStatus 定義訊息的審核狀態
type MessageStatus string

const (
	MessageStatusApproved MessageStatus = "approved"
	MessageStatusFlagged  MessageStatus = "flagged" // 被過濾器標記，但仍會保存與顯示
)
