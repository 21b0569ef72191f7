package models

import (
	"gorm.io/gorm"
)

// Topic 表示一個辯論主題
type Topic struct {
	gorm.Model
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"type:text"`
}
