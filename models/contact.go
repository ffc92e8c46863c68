package models

import "time"

// ContactDetail is a typed contact record (phone, email, address, hours);
// the public contact page groups rows by type.
type ContactDetail struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Type      string    `gorm:"index" json:"type" validate:"required"`
	Label     string    `json:"label"`
	Value     string    `json:"value" validate:"required"`
	Status    string    `gorm:"default:active" json:"status"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
