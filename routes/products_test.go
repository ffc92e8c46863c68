package routes

import (
	"net/http"
	"testing"

	"dealersite/db"
	"dealersite/models"
	"dealersite/seo"

	"github.com/gofiber/fiber/v2"
)

func TestCreateProductRequiresExistingBrand(t *testing.T) {
	app := setupApp(t)
	token := adminToken(t, app)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/admin/products/",
		fiber.Map{"name": "GSB 550"}, token)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 without brand", resp.StatusCode)
	}

	resp, _ = doJSON(t, app, fiber.MethodPost, "/api/admin/products/",
		fiber.Map{"name": "GSB 550", "brand_id": 99}, token)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for unknown brand", resp.StatusCode)
	}
}

func TestProductSlugScopedToBrand(t *testing.T) {
	app := setupApp(t)
	token := adminToken(t, app)

	bosch := seedBrand(t, "Bosch", "bosch", "active")
	makita := seedBrand(t, "Makita", "makita", "active")

	_, body := doJSON(t, app, fiber.MethodPost, "/api/admin/products/",
		fiber.Map{"name": "Impact Drill", "brand_id": bosch.ID}, token)
	if body["slug"] != "impact-drill" {
		t.Errorf("slug = %v", body["slug"])
	}

	_, body = doJSON(t, app, fiber.MethodPost, "/api/admin/products/",
		fiber.Map{"name": "Impact Drill", "brand_id": makita.ID}, token)
	if body["slug"] != "impact-drill" {
		t.Errorf("slug = %v, same name under another brand should not suffix", body["slug"])
	}

	_, body = doJSON(t, app, fiber.MethodPost, "/api/admin/products/",
		fiber.Map{"name": "Impact Drill", "brand_id": bosch.ID}, token)
	if body["slug"] != "impact-drill-1" {
		t.Errorf("slug = %v, want impact-drill-1", body["slug"])
	}
}

func TestUpdateProductIgnoresGalleryField(t *testing.T) {
	app := setupApp(t)
	token := adminToken(t, app)

	brand := seedBrand(t, "Bosch", "bosch", "active")
	product := models.Product{
		BrandID: brand.ID, Name: "GSB 550", Slug: "gsb-550", Status: "active",
		Gallery: []string{"products/gallery/a.jpg", "products/gallery/b.jpg"},
	}
	db.DB.Create(&product)

	resp, _ := doJSON(t, app, fiber.MethodPut, "/api/admin/products/1",
		fiber.Map{"name": "GSB 550 RE", "gallery": []string{"evil.jpg"}}, token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var stored models.Product
	db.DB.First(&stored, product.ID)
	if stored.Name != "GSB 550 RE" {
		t.Errorf("name = %q", stored.Name)
	}
	if len(stored.Gallery) != 2 || stored.Gallery[0] != "products/gallery/a.jpg" {
		t.Errorf("gallery = %v, must only change through gallery endpoints", stored.Gallery)
	}
}

func TestUpdateProductClearsFeaturedAndSortOrder(t *testing.T) {
	app := setupApp(t)
	token := adminToken(t, app)

	brand := seedBrand(t, "Bosch", "bosch", "active")
	product := models.Product{
		BrandID: brand.ID, Name: "GSB 550", Slug: "gsb-550", Status: "active",
		Featured: true, SortOrder: 5,
	}
	db.DB.Create(&product)

	resp, _ := doJSON(t, app, fiber.MethodPut, "/api/admin/products/1",
		fiber.Map{"name": "GSB 550", "featured": false, "sort_order": 0}, token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var stored models.Product
	db.DB.First(&stored, product.ID)
	if stored.Featured {
		t.Error("featured = true, want un-featured after update")
	}
	if stored.SortOrder != 0 {
		t.Errorf("sort_order = %d, want 0", stored.SortOrder)
	}
}

func TestDeleteGalleryImageReindexes(t *testing.T) {
	app := setupApp(t)
	token := adminToken(t, app)

	brand := seedBrand(t, "Bosch", "bosch", "active")
	product := models.Product{
		BrandID: brand.ID, Name: "GSB 550", Slug: "gsb-550", Status: "active",
		Gallery: []string{"products/gallery/a.jpg", "products/gallery/b.jpg", "products/gallery/c.jpg"},
	}
	db.DB.Create(&product)

	resp, _ := doJSON(t, app, fiber.MethodDelete, "/api/admin/products/1/gallery/1", nil, token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var stored models.Product
	db.DB.First(&stored, product.ID)
	want := []string{"products/gallery/a.jpg", "products/gallery/c.jpg"}
	if len(stored.Gallery) != 2 || stored.Gallery[0] != want[0] || stored.Gallery[1] != want[1] {
		t.Errorf("gallery = %v, want %v", stored.Gallery, want)
	}

	resp, _ = doJSON(t, app, fiber.MethodDelete, "/api/admin/products/1/gallery/9", nil, token)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for out-of-range index", resp.StatusCode)
	}
}

func TestDeleteProductRemovesSEOEntries(t *testing.T) {
	app := setupApp(t)
	token := adminToken(t, app)

	brand := seedBrand(t, "Bosch", "bosch", "active")
	product := seedProduct(t, brand.ID, "GSB 550", "gsb-550", "active")
	seo.Save(db.DB, seo.EntityProduct, product.ID, nil, models.SEOEntry{MetaTitle: "Product"})
	seo.Save(db.DB, seo.EntityBrand, brand.ID, nil, models.SEOEntry{MetaTitle: "Brand"})

	resp, _ := doJSON(t, app, fiber.MethodDelete, "/api/admin/products/1", nil, token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var count int64
	db.DB.Model(&models.SEOEntry{}).Where("entity_type = ?", seo.EntityProduct).Count(&count)
	if count != 0 {
		t.Errorf("product seo entries left behind: %d", count)
	}
	// The brand's own entry stays.
	db.DB.Model(&models.SEOEntry{}).Where("entity_type = ?", seo.EntityBrand).Count(&count)
	if count != 1 {
		t.Errorf("brand seo entries = %d, want 1", count)
	}
}

func TestSpecificationLifecycle(t *testing.T) {
	app := setupApp(t)
	token := adminToken(t, app)

	brand := seedBrand(t, "Bosch", "bosch", "active")
	product := seedProduct(t, brand.ID, "GSB 550", "gsb-550", "active")

	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/admin/products/1/specs",
		fiber.Map{"spec_name": "Power", "spec_value": "550W", "sort_order": 2}, token)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	doJSON(t, app, fiber.MethodPost, "/api/admin/products/1/specs",
		fiber.Map{"spec_name": "Weight", "spec_value": "1.7kg", "sort_order": 1}, token)

	// Missing value is rejected.
	resp, _ = doJSON(t, app, fiber.MethodPost, "/api/admin/products/1/specs",
		fiber.Map{"spec_name": "Chuck"}, token)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for missing spec_value", resp.StatusCode)
	}

	var specs []models.Specification
	db.DB.Where("product_id = ?", product.ID).Order("sort_order ASC, spec_name ASC").Find(&specs)
	if len(specs) != 2 || specs[0].SpecName != "Weight" {
		t.Errorf("specs = %+v, want sort_order ordering", specs)
	}

	resp, _ = doJSON(t, app, fiber.MethodPut, "/api/admin/products/1/specs/1",
		fiber.Map{"spec_name": "Power", "spec_value": "600W", "sort_order": 0}, token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var updated models.Specification
	db.DB.First(&updated, 1)
	if updated.SpecValue != "600W" || updated.SortOrder != 0 {
		t.Errorf("spec not updated: %+v", updated)
	}

	resp, _ = doJSON(t, app, fiber.MethodDelete, "/api/admin/products/1/specs/1", nil, token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var count int64
	db.DB.Model(&models.Specification{}).Count(&count)
	if count != 1 {
		t.Errorf("spec rows = %d, want 1", count)
	}
}

func TestSEOEntryAdminRoundtrip(t *testing.T) {
	app := setupApp(t)
	token := adminToken(t, app)

	seedBrand(t, "Bosch", "bosch", "active")

	resp, _ := doJSON(t, app, fiber.MethodPut, "/api/admin/seo/?entity_type=brand&entity_id=1",
		fiber.Map{"meta_title": "Custom", "h1_text": "Custom H1"}, token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	_, body := doJSON(t, app, fiber.MethodGet, "/api/admin/seo/?entity_type=brand&entity_id=1", nil, token)
	if body["meta_title"] != "Custom" {
		t.Errorf("meta_title = %v", body["meta_title"])
	}

	resp, _ = doJSON(t, app, fiber.MethodGet, "/api/admin/seo/?entity_type=banner&entity_id=1", nil, token)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for unknown entity type", resp.StatusCode)
	}
}
