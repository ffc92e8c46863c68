package models

import "time"

type Product struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	BrandID          uint            `gorm:"index" json:"brand_id"`
	CategoryID       *uint           `gorm:"index" json:"category_id"` // legacy, nullable
	Name             string          `json:"name" validate:"required"`
	Slug             string          `gorm:"index" json:"slug"`
	Description      string          `gorm:"type:text" json:"description"`
	ShortDescription string          `json:"short_description"`
	Image            string          `json:"image"`
	Gallery          []string        `gorm:"type:text;serializer:json" json:"gallery"`
	Status           string          `gorm:"default:active" json:"status"`
	Featured         bool            `json:"featured"`
	SortOrder        int             `json:"sort_order"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	Brand            *Brand          `gorm:"foreignKey:BrandID" json:"brand,omitempty"`
	Category         *Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Specifications   []Specification `gorm:"foreignKey:ProductID" json:"specifications,omitempty"`
}

type Specification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uint      `gorm:"index" json:"product_id"`
	SpecName  string    `json:"spec_name" validate:"required"`
	SpecValue string    `json:"spec_value" validate:"required"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
