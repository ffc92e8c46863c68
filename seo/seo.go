// Package seo resolves and persists per-entity SEO metadata. Entries are
// keyed by (entity_type, entity_id, city_id); a nil city is the base entry
// and a distinct key from every concrete city.
package seo

import (
	"errors"
	"unicode/utf8"

	"dealersite/models"

	"gorm.io/gorm"
)

// Entity types that can carry SEO entries.
const (
	EntityPage     = "page"
	EntityBrand    = "brand"
	EntityCategory = "category"
	EntityProduct  = "product"
)

// ValidEntityType reports whether t is a known SEO entity type.
func ValidEntityType(t string) bool {
	switch t {
	case EntityPage, EntityBrand, EntityCategory, EntityProduct:
		return true
	}
	return false
}

func keyQuery(gdb *gorm.DB, entityType string, entityID uint, cityID *uint) *gorm.DB {
	q := gdb.Where("entity_type = ? AND entity_id = ?", entityType, entityID)
	if cityID == nil {
		return q.Where("city_id IS NULL")
	}
	return q.Where("city_id = ?", *cityID)
}

// Get returns the stored entry for the exact key, or an all-empty record
// carrying just the key when none exists. Callers layer entity-specific
// defaults on top of empty fields only.
func Get(gdb *gorm.DB, entityType string, entityID uint, cityID *uint) models.SEOEntry {
	var entry models.SEOEntry
	if err := keyQuery(gdb, entityType, entityID, cityID).First(&entry).Error; err != nil {
		return models.SEOEntry{EntityType: entityType, EntityID: entityID, CityID: cityID}
	}
	return entry
}

// Save upserts the entry for the exact key. Length-capped fields are
// truncated before persisting; descriptions, h2 and the raw seo_head block
// are stored as-is.
func Save(gdb *gorm.DB, entityType string, entityID uint, cityID *uint, data models.SEOEntry) error {
	data.EntityType = entityType
	data.EntityID = entityID
	data.CityID = cityID
	data.MetaTitle = Truncate(data.MetaTitle, 255)
	data.MetaKeywords = Truncate(data.MetaKeywords, 500)
	data.CanonicalURL = Truncate(data.CanonicalURL, 500)
	data.OGTitle = Truncate(data.OGTitle, 255)
	data.OGImage = Truncate(data.OGImage, 500)
	data.H1Text = Truncate(data.H1Text, 255)

	var existing models.SEOEntry
	err := keyQuery(gdb, entityType, entityID, cityID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		data.ID = 0
		return gdb.Create(&data).Error
	}
	if err != nil {
		return err
	}

	// Select forces zero values through so a field can be blanked.
	return gdb.Model(&models.SEOEntry{}).Where("id = ?", existing.ID).
		Select("meta_title", "meta_description", "meta_keywords", "canonical_url",
			"og_title", "og_description", "og_image", "h1_text", "h2_text", "seo_head").
		Updates(data).Error
}

// Truncate caps s at n bytes without splitting a UTF-8 rune.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
