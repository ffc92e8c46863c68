package models

import "time"

type Testimonial struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `json:"name" validate:"required"`
	Designation string    `json:"designation"`
	Company     string    `json:"company"`
	Content     string    `gorm:"type:text" json:"content" validate:"required"`
	Image       string    `json:"image"`
	Rating      int       `json:"rating"`
	Status      string    `gorm:"default:active" json:"status"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
