package utils

import (
	"strings"

	"dealersite/models"

	"gorm.io/gorm"
)

// ActiveCityBySlug returns the active city with the given slug, or nil.
func ActiveCityBySlug(gdb *gorm.DB, slug string) *models.City {
	var city models.City
	if err := gdb.Where("slug = ? AND status = ?", slug, "active").First(&city).Error; err != nil {
		return nil
	}
	return &city
}

// SplitCitySlug resolves a possibly city-suffixed path segment such as
// "bosch-pune" into a base slug and a city context.
//
// Resolution is entity-first: if an active entity matches the full segment
// the segment is returned untouched, so a brand slug that legitimately
// contains hyphens (e.g. "make-x") is never misread as a city variant.
// Only then is the trailing hyphen-delimited token checked against active
// city slugs, and the extraction is kept only when the remaining base slug
// matches an existing entity.
func SplitCitySlug(gdb *gorm.DB, segment string, exists func(slug string) bool) (string, *models.City) {
	if exists(segment) {
		return segment, nil
	}
	if !strings.Contains(segment, "-") {
		return segment, nil
	}

	parts := strings.Split(segment, "-")
	city := ActiveCityBySlug(gdb, parts[len(parts)-1])
	if city == nil {
		return segment, nil
	}

	base := strings.Join(parts[:len(parts)-1], "-")
	if exists(base) {
		return base, city
	}
	return segment, nil
}
