package seo

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"dealersite/config"
	"dealersite/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	if err := gdb.AutoMigrate(&models.SEOEntry{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

func TestGetMissReturnsEmptyEntry(t *testing.T) {
	gdb := testDB(t)

	cityID := uint(7)
	entry := Get(gdb, EntityBrand, 3, &cityID)
	if entry.ID != 0 || entry.MetaTitle != "" {
		t.Errorf("expected empty entry, got %+v", entry)
	}
	if entry.EntityType != EntityBrand || entry.EntityID != 3 || entry.CityID == nil || *entry.CityID != 7 {
		t.Errorf("miss entry should carry the key, got %+v", entry)
	}
}

func TestSaveCreatesAndCityIsDistinctKey(t *testing.T) {
	gdb := testDB(t)

	if err := Save(gdb, EntityBrand, 1, nil, models.SEOEntry{MetaTitle: "Base"}); err != nil {
		t.Fatalf("Save base: %v", err)
	}
	cityID := uint(2)
	if err := Save(gdb, EntityBrand, 1, &cityID, models.SEOEntry{MetaTitle: "City"}); err != nil {
		t.Fatalf("Save city: %v", err)
	}

	if got := Get(gdb, EntityBrand, 1, nil).MetaTitle; got != "Base" {
		t.Errorf("base entry = %q, want Base", got)
	}
	if got := Get(gdb, EntityBrand, 1, &cityID).MetaTitle; got != "City" {
		t.Errorf("city entry = %q, want City", got)
	}
}

func TestSaveUpdatesAndBlanksFields(t *testing.T) {
	gdb := testDB(t)

	if err := Save(gdb, EntityProduct, 5, nil, models.SEOEntry{
		MetaTitle: "First",
		H1Text:    "Heading",
	}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := Save(gdb, EntityProduct, 5, nil, models.SEOEntry{
		MetaTitle: "Second",
	}); err != nil {
		t.Fatalf("Save update: %v", err)
	}

	entry := Get(gdb, EntityProduct, 5, nil)
	if entry.MetaTitle != "Second" {
		t.Errorf("meta_title = %q, want Second", entry.MetaTitle)
	}
	if entry.H1Text != "" {
		t.Errorf("h1_text = %q, want blanked", entry.H1Text)
	}
}

func TestSaveTruncatesCappedFields(t *testing.T) {
	gdb := testDB(t)

	long := strings.Repeat("x", 600)
	if err := Save(gdb, EntityPage, 1, nil, models.SEOEntry{
		MetaTitle:       long,
		MetaKeywords:    long,
		MetaDescription: long,
	}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	entry := Get(gdb, EntityPage, 1, nil)
	if len(entry.MetaTitle) != 255 {
		t.Errorf("meta_title length = %d, want 255", len(entry.MetaTitle))
	}
	if len(entry.MetaKeywords) != 500 {
		t.Errorf("meta_keywords length = %d, want 500", len(entry.MetaKeywords))
	}
	if len(entry.MetaDescription) != 600 {
		t.Errorf("meta_description length = %d, want uncapped 600", len(entry.MetaDescription))
	}
}

func TestTruncateKeepsRunesWhole(t *testing.T) {
	// 2-byte runes; an odd byte cap must back off to the rune boundary.
	s := strings.Repeat("é", 10)
	got := Truncate(s, 5)
	if !utf8.ValidString(got) {
		t.Errorf("Truncate produced invalid UTF-8: %q", got)
	}
	if len(got) != 4 {
		t.Errorf("len = %d, want 4", len(got))
	}
	if Truncate("abc", 10) != "abc" {
		t.Error("short string must pass through unchanged")
	}
}

func TestValidEntityType(t *testing.T) {
	for _, ok := range []string{EntityPage, EntityBrand, EntityCategory, EntityProduct} {
		if !ValidEntityType(ok) {
			t.Errorf("ValidEntityType(%q) = false", ok)
		}
	}
	if ValidEntityType("banner") {
		t.Error("ValidEntityType(banner) = true")
	}
}

func TestBrandDefaultsFillEmptyOnly(t *testing.T) {
	config.Load()

	brand := models.Brand{Name: "bosch power tools", Slug: "bosch", Description: "Bosch catalog"}
	city := models.City{Name: "Pune", Slug: "pune"}

	entry := models.SEOEntry{}
	BrandDefaults(&entry, &brand, &city)

	wantH1 := "Bosch Power Tools Authorised Dealer Distributor and Supplier in Pune"
	if entry.H1Text != wantH1 {
		t.Errorf("h1 = %q, want %q", entry.H1Text, wantH1)
	}
	if !strings.HasSuffix(entry.CanonicalURL, "/bosch-pune") {
		t.Errorf("canonical = %q, want /bosch-pune suffix", entry.CanonicalURL)
	}
	if entry.MetaDescription != "Bosch catalog" {
		t.Errorf("meta_description = %q", entry.MetaDescription)
	}

	// Stored values win over synthesized ones.
	stored := models.SEOEntry{MetaTitle: "Custom Title", H1Text: "Custom H1"}
	BrandDefaults(&stored, &brand, &city)
	if stored.MetaTitle != "Custom Title" || stored.H1Text != "Custom H1" {
		t.Errorf("stored values overridden: %+v", stored)
	}
}

func TestProductDefaultsWithoutCity(t *testing.T) {
	config.Load()

	brand := models.Brand{Name: "Bosch", Slug: "bosch"}
	product := models.Product{Name: "GSB 550", Slug: "gsb-550", ShortDescription: "Impact drill"}

	entry := models.SEOEntry{}
	ProductDefaults(&entry, &product, &brand, nil)

	if entry.H1Text != "GSB 550" {
		t.Errorf("h1 = %q", entry.H1Text)
	}
	if !strings.HasSuffix(entry.CanonicalURL, "/bosch/gsb-550") {
		t.Errorf("canonical = %q", entry.CanonicalURL)
	}
	if !strings.Contains(entry.MetaTitle, "GSB 550 - Bosch") {
		t.Errorf("meta_title = %q", entry.MetaTitle)
	}
}
