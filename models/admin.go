package models

import "time"

type AdminUser struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Username  string     `gorm:"uniqueIndex;not null" json:"username"`
	Email     string     `gorm:"index" json:"email"`
	Password  string     `gorm:"not null" json:"-"`
	FullName  string     `json:"full_name"`
	Status    string     `gorm:"default:active" json:"status"`
	LastLogin *time.Time `json:"last_login"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
