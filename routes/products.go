package routes

import (
	"dealersite/config"
	"dealersite/db"
	"dealersite/models"
	"dealersite/seo"
	"dealersite/utils"

	"github.com/gofiber/fiber/v2"
)

type ProductListResponse struct {
	Products   []models.Product `json:"products"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	TotalPages int              `json:"total_pages"`
}

func listProducts(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	brandID := c.Query("brand_id")
	categoryID := c.Query("category_id")

	query := db.DB.Model(&models.Product{})
	if brandID != "" {
		query = query.Where("brand_id = ?", brandID)
	}
	if categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to count products",
		})
	}

	var products []models.Product
	if err := query.Preload("Brand").Preload("Category").
		Order("created_at DESC").
		Offset((page - 1) * config.ItemsPerPage).
		Limit(config.ItemsPerPage).
		Find(&products).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get products",
		})
	}

	return c.JSON(ProductListResponse{
		Products:   products,
		Total:      int(total),
		Page:       page,
		TotalPages: totalPages(total),
	})
}

func createProduct(c *fiber.Ctx) error {
	product := new(models.Product)
	if err := c.BodyParser(product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validate.Struct(product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name is required",
		})
	}
	if product.BrandID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Brand is required",
		})
	}

	var brand models.Brand
	if err := db.DB.First(&brand, product.BrandID).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Brand not found",
		})
	}
	if product.CategoryID != nil {
		var category models.Category
		if err := db.DB.First(&category, *product.CategoryID).Error; err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Category not found",
			})
		}
	}

	slug, err := resolveProductSlug(product.Slug, product.Name, product.BrandID, 0)
	if err != nil {
		return slugError(c, err)
	}
	product.Slug = slug
	product.Specifications = nil

	if err := db.DB.Create(&product).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create product",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}

func getProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	var product models.Product

	if err := db.DB.Preload("Brand").Preload("Category").
		Preload("Specifications", specOrder).
		First(&product, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}
	return c.JSON(product)
}

func updateProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	product := new(models.Product)

	if err := c.BodyParser(product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	var existing models.Product
	if err := db.DB.First(&existing, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}

	if product.BrandID != 0 && product.BrandID != existing.BrandID {
		var brand models.Brand
		if err := db.DB.First(&brand, product.BrandID).Error; err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Brand not found",
			})
		}
	}
	if product.CategoryID != nil {
		var category models.Category
		if err := db.DB.First(&category, *product.CategoryID).Error; err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Category not found",
			})
		}
	}

	if product.Slug != "" {
		brandID := existing.BrandID
		if product.BrandID != 0 {
			brandID = product.BrandID
		}
		slug, err := resolveProductSlug(product.Slug, product.Name, brandID, existing.ID)
		if err != nil {
			return slugError(c, err)
		}
		product.Slug = slug
	}

	// Gallery changes go through the dedicated gallery endpoints
	product.Gallery = nil
	product.Specifications = nil

	if err := db.DB.Model(&existing).Updates(product).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update product",
		})
	}

	// Struct updates skip zero values, which would make false/0 stick
	// forever; these fields always carry the submitted value.
	if err := db.DB.Model(&existing).Updates(map[string]interface{}{
		"featured":   product.Featured,
		"sort_order": product.SortOrder,
	}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update product",
		})
	}
	existing.Featured = product.Featured
	existing.SortOrder = product.SortOrder

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Product updated successfully",
		"data":    existing,
	})
}

func deleteProduct(c *fiber.Ctx) error {
	id := c.Params("id")

	var product models.Product
	if err := db.DB.First(&product, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}

	utils.DeleteImage(product.Image)
	for _, img := range product.Gallery {
		utils.DeleteImage(img)
	}
	db.DB.Where("product_id = ?", product.ID).Delete(&models.Specification{})
	db.DB.Where("entity_type = ? AND entity_id = ?", seo.EntityProduct, product.ID).
		Delete(&models.SEOEntry{})

	if err := db.DB.Delete(&product).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete product",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Product deleted successfully",
	})
}

func deleteProductImage(c *fiber.Ctx) error {
	id := c.Params("id")

	var product models.Product
	if err := db.DB.First(&product, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}
	if product.Image == "" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Image not found",
		})
	}

	utils.DeleteImage(product.Image)
	if err := db.DB.Model(&product).Update("image", "").Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update product",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Image deleted successfully",
	})
}

// addGalleryImages appends uploaded files to the existing gallery; it
// never replaces entries that are already stored.
func addGalleryImages(c *fiber.Ctx) error {
	id := c.Params("id")

	var product models.Product
	if err := db.DB.First(&product, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}

	form, err := c.MultipartForm()
	if err != nil || len(form.File["images"]) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No gallery images uploaded",
		})
	}

	gallery := product.Gallery
	for _, file := range form.File["images"] {
		storedPath, err := saveUploadedImage(c, file, "products/gallery")
		if err != nil {
			return err
		}
		gallery = append(gallery, storedPath)
	}

	// Writing through the struct field runs the JSON serializer
	if err := db.DB.Model(&product).Select("gallery").
		Updates(&models.Product{Gallery: gallery}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update gallery",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"gallery": gallery,
	})
}

// deleteGalleryImage removes one entry by index, deletes its file and
// re-indexes the remaining list.
func deleteGalleryImage(c *fiber.Ctx) error {
	id := c.Params("id")
	index, err := c.ParamsInt("index")
	if err != nil || index < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid gallery index",
		})
	}

	var product models.Product
	if err := db.DB.First(&product, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}
	if index >= len(product.Gallery) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid gallery index",
		})
	}

	utils.DeleteImage(product.Gallery[index])
	gallery := append(product.Gallery[:index], product.Gallery[index+1:]...)

	if err := db.DB.Model(&product).Select("gallery").
		Updates(&models.Product{Gallery: gallery}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update gallery",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"gallery": gallery,
	})
}

func resolveProductSlug(raw, name string, brandID, excludeID uint) (string, error) {
	if raw == "" {
		raw = name
	}
	slug := utils.GenerateSlug(raw)
	if slug == "" {
		return "", errEmptySlug
	}
	return utils.UniqueSlugInBrand(db.DB, "products", slug, brandID, excludeID)
}
