package models

import "time"

type Certification struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `json:"name" validate:"required"`
	Description string    `gorm:"type:text" json:"description"`
	Image       string    `json:"image"`
	Status      string    `gorm:"default:active" json:"status"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
