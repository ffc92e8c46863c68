package models

import "time"

// SEOEntry holds per-entity metadata overrides. At most one row exists per
// (entity_type, entity_id, city_id) key; a NULL city_id is the base entry
// and is a distinct key from any concrete city.
type SEOEntry struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	EntityType      string    `gorm:"index:idx_seo_key" json:"entity_type"`
	EntityID        uint      `gorm:"index:idx_seo_key" json:"entity_id"`
	CityID          *uint     `gorm:"index:idx_seo_key" json:"city_id"`
	MetaTitle       string    `json:"meta_title"`
	MetaDescription string    `gorm:"type:text" json:"meta_description"`
	MetaKeywords    string    `gorm:"size:500" json:"meta_keywords"`
	CanonicalURL    string    `gorm:"size:500" json:"canonical_url"`
	OGTitle         string    `json:"og_title"`
	OGDescription   string    `gorm:"type:text" json:"og_description"`
	OGImage         string    `gorm:"size:500" json:"og_image"`
	H1Text          string    `json:"h1_text"`
	H2Text          string    `gorm:"type:text" json:"h2_text"`
	SEOHead         string    `gorm:"type:text" json:"seo_head"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
