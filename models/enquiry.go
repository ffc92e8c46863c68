package models

import "time"

// Enquiry statuses. "read" is set automatically on first admin view,
// "replied" and "closed" are manual transitions.
const (
	EnquiryStatusNew     = "new"
	EnquiryStatusRead    = "read"
	EnquiryStatusReplied = "replied"
	EnquiryStatusClosed  = "closed"
)

type Enquiry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name" validate:"required"`
	Email     string    `json:"email" validate:"required,email"`
	Phone     string    `json:"phone"`
	Company   string    `json:"company"`
	Subject   string    `json:"subject"`
	Message   string    `gorm:"type:text" json:"message" validate:"required"`
	ProductID *uint     `json:"product_id"`
	BrandID   *uint     `json:"brand_id"`
	IPAddress string    `json:"ip_address"`
	UserAgent string    `json:"user_agent"`
	Status    string    `gorm:"default:new" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	Product   *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Brand     *Brand    `gorm:"foreignKey:BrandID" json:"brand,omitempty"`
}
