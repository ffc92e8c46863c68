package models

import "time"

// City is a content localization dimension for SEO pages, not a
// geographic or inventory attribute of the catalog itself.
type City struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name" validate:"required"`
	Slug      string    `gorm:"uniqueIndex" json:"slug"`
	Status    string    `gorm:"default:active" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
