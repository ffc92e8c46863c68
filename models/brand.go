package models

import "time"

type Brand struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `json:"name" validate:"required"`
	Slug        string     `gorm:"uniqueIndex" json:"slug"`
	Description string     `json:"description"`
	Image       string     `json:"image"`
	Logo        string     `json:"logo"`
	Status      string     `gorm:"default:active" json:"status"`
	SortOrder   int        `json:"sort_order"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	Categories  []Category `gorm:"foreignKey:BrandID" json:"categories,omitempty"`
	Products    []Product  `gorm:"foreignKey:BrandID" json:"products,omitempty"`
}
