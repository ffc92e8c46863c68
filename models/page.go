package models

import "time"

type StaticPage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PageKey   string    `gorm:"uniqueIndex" json:"page_key" validate:"required"`
	Title     string    `json:"title" validate:"required"`
	Content   string    `gorm:"type:text" json:"content"`
	Status    string    `gorm:"default:active" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
