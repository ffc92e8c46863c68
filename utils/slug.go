package utils

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"
)

var (
	slugInvalid = regexp.MustCompile(`[^a-z0-9-]+`)
	slugDashes  = regexp.MustCompile(`-+`)
)

// ErrSlugExhausted is returned when no free suffix is found within the
// retry bound.
var ErrSlugExhausted = errors.New("could not generate a unique slug")

const maxSlugAttempts = 100

// GenerateSlug normalizes a string into a URL-safe slug: lowercase
// letters, digits and single hyphens, with no leading or trailing hyphen.
func GenerateSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugInvalid.ReplaceAllString(s, "-")
	s = slugDashes.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// UniqueSlug returns slug unchanged if it is free in the given table,
// otherwise the first free numeric-suffixed variant (slug-1, slug-2, ...).
// excludeID skips the row being updated.
func UniqueSlug(gdb *gorm.DB, table, slug string, excludeID uint) (string, error) {
	return uniqueSlug(gdb, table, slug, excludeID, 0)
}

// UniqueSlugInBrand behaves like UniqueSlug but scopes uniqueness to the
// rows of one brand (category and product slugs are unique per brand).
func UniqueSlugInBrand(gdb *gorm.DB, table, slug string, brandID, excludeID uint) (string, error) {
	return uniqueSlug(gdb, table, slug, excludeID, brandID)
}

func uniqueSlug(gdb *gorm.DB, table, slug string, excludeID, brandID uint) (string, error) {
	candidate := slug
	for i := 0; i <= maxSlugAttempts; i++ {
		if i > 0 {
			candidate = fmt.Sprintf("%s-%d", slug, i)
		}

		q := gdb.Table(table).Where("slug = ?", candidate)
		if excludeID != 0 {
			q = q.Where("id <> ?", excludeID)
		}
		if brandID != 0 {
			q = q.Where("brand_id = ?", brandID)
		}

		var count int64
		if err := q.Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
	}
	return "", ErrSlugExhausted
}
