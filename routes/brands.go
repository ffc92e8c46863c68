package routes

import (
	"errors"

	"dealersite/config"
	"dealersite/db"
	"dealersite/models"
	"dealersite/seo"
	"dealersite/utils"

	"github.com/gofiber/fiber/v2"
)

type BrandListResponse struct {
	Brands     []models.Brand `json:"brands"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	TotalPages int            `json:"total_pages"`
}

func listBrands(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	var total int64
	if err := db.DB.Model(&models.Brand{}).Count(&total).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to count brands",
		})
	}

	var brands []models.Brand
	if err := db.DB.Order("sort_order ASC, name ASC").
		Offset((page - 1) * config.ItemsPerPage).
		Limit(config.ItemsPerPage).
		Find(&brands).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get brands",
		})
	}

	return c.JSON(BrandListResponse{
		Brands:     brands,
		Total:      int(total),
		Page:       page,
		TotalPages: totalPages(total),
	})
}

func createBrand(c *fiber.Ctx) error {
	brand := new(models.Brand)
	if err := c.BodyParser(brand); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validate.Struct(brand); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name is required",
		})
	}

	slug, err := resolveBrandSlug(brand.Slug, brand.Name, 0)
	if err != nil {
		return slugError(c, err)
	}
	brand.Slug = slug

	// Associations are never written through the brand form
	brand.Categories = nil
	brand.Products = nil

	if err := db.DB.Create(&brand).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create brand",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(brand)
}

func getBrand(c *fiber.Ctx) error {
	id := c.Params("id")
	var brand models.Brand

	if err := db.DB.Preload("Categories").First(&brand, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Brand not found",
		})
	}
	return c.JSON(brand)
}

func updateBrand(c *fiber.Ctx) error {
	id := c.Params("id")
	brand := new(models.Brand)

	if err := c.BodyParser(brand); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	var existing models.Brand
	if err := db.DB.First(&existing, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Brand not found",
		})
	}

	// A submitted slug is normalized and de-duplicated against other
	// brands; a blank one keeps the stored slug.
	if brand.Slug != "" {
		slug, err := resolveBrandSlug(brand.Slug, brand.Name, existing.ID)
		if err != nil {
			return slugError(c, err)
		}
		brand.Slug = slug
	}

	brand.Categories = nil
	brand.Products = nil

	// Zero-value fields (including a blank image path) leave the stored
	// values untouched; clearing an image is a separate explicit action.
	if err := db.DB.Model(&existing).Updates(brand).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update brand",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Brand updated successfully",
		"data":    existing,
	})
}

// deleteBrand removes the brand together with its categories and products,
// cleaning up their files first. File cleanup is best-effort and not
// wrapped in a transaction with the row deletes.
func deleteBrand(c *fiber.Ctx) error {
	id := c.Params("id")

	var brand models.Brand
	if err := db.DB.First(&brand, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Brand not found",
		})
	}

	var products []models.Product
	db.DB.Where("brand_id = ?", brand.ID).Find(&products)
	for _, product := range products {
		utils.DeleteImage(product.Image)
		for _, img := range product.Gallery {
			utils.DeleteImage(img)
		}
		db.DB.Where("product_id = ?", product.ID).Delete(&models.Specification{})
		db.DB.Where("entity_type = ? AND entity_id = ?", seo.EntityProduct, product.ID).
			Delete(&models.SEOEntry{})
	}
	db.DB.Where("brand_id = ?", brand.ID).Delete(&models.Product{})

	var categories []models.Category
	db.DB.Where("brand_id = ?", brand.ID).Find(&categories)
	for _, category := range categories {
		utils.DeleteImage(category.Image)
		db.DB.Where("entity_type = ? AND entity_id = ?", seo.EntityCategory, category.ID).
			Delete(&models.SEOEntry{})
	}
	db.DB.Where("brand_id = ?", brand.ID).Delete(&models.Category{})

	utils.DeleteImage(brand.Image)
	utils.DeleteImage(brand.Logo)
	db.DB.Where("entity_type = ? AND entity_id = ?", seo.EntityBrand, brand.ID).
		Delete(&models.SEOEntry{})

	if err := db.DB.Delete(&brand).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete brand",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Brand deleted successfully",
	})
}

func deleteBrandImage(c *fiber.Ctx) error {
	return clearImageField(c, "image")
}

func deleteBrandLogo(c *fiber.Ctx) error {
	return clearImageField(c, "logo")
}

// clearImageField removes a brand image or logo file and blanks the column.
func clearImageField(c *fiber.Ctx, field string) error {
	id := c.Params("id")

	var brand models.Brand
	if err := db.DB.First(&brand, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Brand not found",
		})
	}

	stored := brand.Image
	if field == "logo" {
		stored = brand.Logo
	}
	if stored == "" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Image not found",
		})
	}

	utils.DeleteImage(stored)
	if err := db.DB.Model(&brand).Update(field, "").Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update brand",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Image deleted successfully",
	})
}

func resolveBrandSlug(raw, name string, excludeID uint) (string, error) {
	if raw == "" {
		raw = name
	}
	slug := utils.GenerateSlug(raw)
	if slug == "" {
		return "", errEmptySlug
	}
	return utils.UniqueSlug(db.DB, "brands", slug, excludeID)
}

var errEmptySlug = errors.New("slug is empty after normalization")

func slugError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, errEmptySlug):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Slug is required",
		})
	case errors.Is(err, utils.ErrSlugExhausted):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Could not generate a unique slug",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to check slug",
		})
	}
}

func totalPages(total int64) int {
	pages := int(total) / config.ItemsPerPage
	if int(total)%config.ItemsPerPage != 0 {
		pages++
	}
	return pages
}
