package models

import (
	"gorm.io/gorm"
)

// Opinion 表示用戶對某個主題的立場
// 配對器從持不同立場且開放辯論的意見中挑選對手
type Opinion struct {
	gorm.Model
	TopicID    uint   `json:"topic_id" gorm:"uniqueIndex:idx_topic_user"`
	UserID     uint   `json:"user_id" gorm:"uniqueIndex:idx_topic_user"`
	Stance     string `json:"stance" gorm:"type:varchar(20)"`
	Content    string `json:"content" gorm:"type:text"`
	DebateOpen bool   `json:"debate_open"`
}
