package routes

import (
	"dealersite/config"
	"dealersite/db"
	"dealersite/models"
	"dealersite/seo"
	"dealersite/utils"

	"github.com/gofiber/fiber/v2"
)

type CategoryListResponse struct {
	Categories []models.Category `json:"categories"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	TotalPages int               `json:"total_pages"`
}

func listCategories(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	brandID := c.Query("brand_id")

	query := db.DB.Model(&models.Category{})
	if brandID != "" {
		query = query.Where("brand_id = ?", brandID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to count categories",
		})
	}

	var categories []models.Category
	if err := query.Order("sort_order ASC, name ASC").
		Offset((page - 1) * config.ItemsPerPage).
		Limit(config.ItemsPerPage).
		Find(&categories).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get categories",
		})
	}

	return c.JSON(CategoryListResponse{
		Categories: categories,
		Total:      int(total),
		Page:       page,
		TotalPages: totalPages(total),
	})
}

func createCategory(c *fiber.Ctx) error {
	category := new(models.Category)
	if err := c.BodyParser(category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validate.Struct(category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name is required",
		})
	}
	if category.BrandID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Brand is required",
		})
	}

	var brand models.Brand
	if err := db.DB.First(&brand, category.BrandID).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Brand not found",
		})
	}

	slug, err := resolveCategorySlug(category.Slug, category.Name, category.BrandID, 0)
	if err != nil {
		return slugError(c, err)
	}
	category.Slug = slug
	category.Products = nil

	if err := db.DB.Create(&category).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create category",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(category)
}

func getCategory(c *fiber.Ctx) error {
	id := c.Params("id")
	var category models.Category

	if err := db.DB.First(&category, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Category not found",
		})
	}
	return c.JSON(category)
}

func updateCategory(c *fiber.Ctx) error {
	id := c.Params("id")
	category := new(models.Category)

	if err := c.BodyParser(category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	var existing models.Category
	if err := db.DB.First(&existing, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Category not found",
		})
	}

	if category.BrandID != 0 && category.BrandID != existing.BrandID {
		var brand models.Brand
		if err := db.DB.First(&brand, category.BrandID).Error; err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Brand not found",
			})
		}
	}

	if category.Slug != "" {
		brandID := existing.BrandID
		if category.BrandID != 0 {
			brandID = category.BrandID
		}
		slug, err := resolveCategorySlug(category.Slug, category.Name, brandID, existing.ID)
		if err != nil {
			return slugError(c, err)
		}
		category.Slug = slug
	}

	category.Products = nil

	if err := db.DB.Model(&existing).Updates(category).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update category",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Category updated successfully",
		"data":    existing,
	})
}

func deleteCategory(c *fiber.Ctx) error {
	id := c.Params("id")

	var category models.Category
	if err := db.DB.First(&category, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Category not found",
		})
	}

	// Products keep existing but lose the legacy category link
	if err := db.DB.Model(&models.Product{}).Where("category_id = ?", category.ID).
		Update("category_id", nil).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update products",
		})
	}

	utils.DeleteImage(category.Image)
	db.DB.Where("entity_type = ? AND entity_id = ?", seo.EntityCategory, category.ID).
		Delete(&models.SEOEntry{})

	if err := db.DB.Delete(&category).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete category",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Category deleted successfully",
	})
}

func deleteCategoryImage(c *fiber.Ctx) error {
	id := c.Params("id")

	var category models.Category
	if err := db.DB.First(&category, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Category not found",
		})
	}
	if category.Image == "" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Image not found",
		})
	}

	utils.DeleteImage(category.Image)
	if err := db.DB.Model(&category).Update("image", "").Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update category",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Image deleted successfully",
	})
}

func resolveCategorySlug(raw, name string, brandID, excludeID uint) (string, error) {
	if raw == "" {
		raw = name
	}
	slug := utils.GenerateSlug(raw)
	if slug == "" {
		return "", errEmptySlug
	}
	return utils.UniqueSlugInBrand(db.DB, "categories", slug, brandID, excludeID)
}
