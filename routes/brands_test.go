package routes

import (
	"net/http"
	"testing"

	"dealersite/db"
	"dealersite/models"
	"dealersite/seo"

	"github.com/gofiber/fiber/v2"
)

func TestCreateBrandSlugDeduplication(t *testing.T) {
	app := setupApp(t)
	token := adminToken(t, app)

	resp, body := doJSON(t, app, fiber.MethodPost, "/api/admin/brands/",
		fiber.Map{"name": "Bosch Power Tools"}, token)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, body %v", resp.StatusCode, body)
	}
	if body["slug"] != "bosch-power-tools" {
		t.Errorf("slug = %v", body["slug"])
	}

	// Same name again gets a numeric suffix.
	_, body = doJSON(t, app, fiber.MethodPost, "/api/admin/brands/",
		fiber.Map{"name": "Bosch Power Tools"}, token)
	if body["slug"] != "bosch-power-tools-1" {
		t.Errorf("slug = %v, want bosch-power-tools-1", body["slug"])
	}
}

func TestCreateBrandRequiresName(t *testing.T) {
	app := setupApp(t)
	token := adminToken(t, app)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/admin/brands/",
		fiber.Map{"description": "nameless"}, token)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestUpdateBrandPreservesImageAndSlug(t *testing.T) {
	app := setupApp(t)
	token := adminToken(t, app)

	brand := models.Brand{Name: "Bosch", Slug: "bosch", Image: "brands/bosch.jpg", Status: "active"}
	db.DB.Create(&brand)

	resp, _ := doJSON(t, app, fiber.MethodPut, "/api/admin/brands/1",
		fiber.Map{"name": "Bosch Tools", "description": "updated"}, token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var stored models.Brand
	db.DB.First(&stored, brand.ID)
	if stored.Name != "Bosch Tools" || stored.Description != "updated" {
		t.Errorf("fields not updated: %+v", stored)
	}
	if stored.Image != "brands/bosch.jpg" {
		t.Errorf("image = %q, blank request field must not clear it", stored.Image)
	}
	if stored.Slug != "bosch" {
		t.Errorf("slug = %q, blank request field must keep it", stored.Slug)
	}
}

func TestUpdateBrandSlugSelfExcluded(t *testing.T) {
	app := setupApp(t)
	token := adminToken(t, app)

	brand := seedBrand(t, "Bosch", "bosch", "active")

	// Re-submitting its own slug must not grow a suffix.
	doJSON(t, app, fiber.MethodPut, "/api/admin/brands/1",
		fiber.Map{"slug": "bosch"}, token)

	var stored models.Brand
	db.DB.First(&stored, brand.ID)
	if stored.Slug != "bosch" {
		t.Errorf("slug = %q, want bosch", stored.Slug)
	}
}

func TestDeleteBrandCascades(t *testing.T) {
	app := setupApp(t)
	token := adminToken(t, app)

	brand := seedBrand(t, "Bosch", "bosch", "active")
	category := models.Category{BrandID: brand.ID, Name: "Drills", Slug: "drills"}
	db.DB.Create(&category)
	product := seedProduct(t, brand.ID, "GSB 550", "gsb-550", "active")
	db.DB.Create(&models.Specification{ProductID: product.ID, SpecName: "Power", SpecValue: "550W"})

	seo.Save(db.DB, seo.EntityBrand, brand.ID, nil, models.SEOEntry{MetaTitle: "Brand"})
	seo.Save(db.DB, seo.EntityCategory, category.ID, nil, models.SEOEntry{MetaTitle: "Category"})
	seo.Save(db.DB, seo.EntityProduct, product.ID, nil, models.SEOEntry{MetaTitle: "Product"})

	resp, _ := doJSON(t, app, fiber.MethodDelete, "/api/admin/brands/1", nil, token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	for name, model := range map[string]interface{}{
		"brands":         &models.Brand{},
		"categories":     &models.Category{},
		"products":       &models.Product{},
		"specifications": &models.Specification{},
		"seo entries":    &models.SEOEntry{},
	} {
		var count int64
		db.DB.Model(model).Count(&count)
		if count != 0 {
			t.Errorf("%s left behind: %d rows", name, count)
		}
	}
}

func TestCategorySlugScopedToBrand(t *testing.T) {
	app := setupApp(t)
	token := adminToken(t, app)

	bosch := seedBrand(t, "Bosch", "bosch", "active")
	makita := seedBrand(t, "Makita", "makita", "active")

	resp, body := doJSON(t, app, fiber.MethodPost, "/api/admin/categories/",
		fiber.Map{"brand_id": bosch.ID, "name": "Drills"}, token)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, body %v", resp.StatusCode, body)
	}
	if body["slug"] != "drills" {
		t.Errorf("slug = %v", body["slug"])
	}

	// The same name is free under another brand.
	_, body = doJSON(t, app, fiber.MethodPost, "/api/admin/categories/",
		fiber.Map{"brand_id": makita.ID, "name": "Drills"}, token)
	if body["slug"] != "drills" {
		t.Errorf("slug = %v, want drills under a different brand", body["slug"])
	}

	// And suffixed under the same brand.
	_, body = doJSON(t, app, fiber.MethodPost, "/api/admin/categories/",
		fiber.Map{"brand_id": bosch.ID, "name": "Drills"}, token)
	if body["slug"] != "drills-1" {
		t.Errorf("slug = %v, want drills-1", body["slug"])
	}
}

func TestDeleteCategoryDetachesProducts(t *testing.T) {
	app := setupApp(t)
	token := adminToken(t, app)

	brand := seedBrand(t, "Bosch", "bosch", "active")
	category := models.Category{BrandID: brand.ID, Name: "Drills", Slug: "drills"}
	db.DB.Create(&category)
	product := seedProduct(t, brand.ID, "GSB 550", "gsb-550", "active")
	db.DB.Model(&product).Update("category_id", category.ID)

	resp, _ := doJSON(t, app, fiber.MethodDelete, "/api/admin/categories/1", nil, token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var stored models.Product
	db.DB.First(&stored, product.ID)
	if stored.CategoryID != nil {
		t.Errorf("category_id = %v, want NULL after category delete", *stored.CategoryID)
	}
}
