package models

import "time"

type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BrandID   uint      `gorm:"index" json:"brand_id"`
	Name      string    `json:"name" validate:"required"`
	Slug      string    `gorm:"index" json:"slug"`
	Image     string    `json:"image"`
	Status    string    `gorm:"default:active" json:"status"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	Products  []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
}
