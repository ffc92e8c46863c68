package routes

import (
	"dealersite/config"
	"dealersite/db"
	"dealersite/models"
	"dealersite/seo"
	"dealersite/utils"

	"github.com/gofiber/fiber/v2"
)

// Public endpoints return resolved page payloads: the entity data plus the
// SEO block the frontend renders into the document head.

func getHomePage(c *fiber.Ctx) error {
	var sliders []models.SliderImage
	db.DB.Where("status = ?", "active").Order("sort_order ASC").Find(&sliders)

	var brands []models.Brand
	db.DB.Where("status = ?", "active").Order("sort_order ASC, name ASC").Find(&brands)

	var featured []models.Product
	db.DB.Where("status = ? AND featured = ?", "active", true).
		Preload("Brand").Order("sort_order ASC, name ASC").
		Limit(config.ItemsPerPage).Find(&featured)

	var testimonials []models.Testimonial
	db.DB.Where("status = ?", "active").Order("sort_order ASC").Find(&testimonials)

	var certifications []models.Certification
	db.DB.Where("status = ?", "active").Order("sort_order ASC").Find(&certifications)

	entry := seo.Get(db.DB, seo.EntityPage, 0, nil)
	seo.PageDefaults(&entry, "", "")

	return c.JSON(fiber.Map{
		"slider_images":     sliders,
		"brands":            brands,
		"featured_products": featured,
		"testimonials":      testimonials,
		"certifications":    certifications,
		"seo":               entry,
	})
}

func getStaticPage(c *fiber.Ctx) error {
	key := c.Params("key")

	var page models.StaticPage
	if err := db.DB.Where("page_key = ? AND status = ?", key, "active").First(&page).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Page not found",
		})
	}

	entry := seo.Get(db.DB, seo.EntityPage, page.ID, nil)
	seo.PageDefaults(&entry, page.Title, page.PageKey)

	payload := fiber.Map{
		"page": page,
		"seo":  entry,
	}

	// The contact page also carries the typed contact rows.
	if page.PageKey == "contact-us" {
		var contacts []models.ContactDetail
		db.DB.Where("status = ?", "active").Order("type ASC, sort_order ASC").Find(&contacts)
		payload["contact_details"] = contacts
	}

	return c.JSON(payload)
}

func getBrandPage(c *fiber.Ctx) error {
	segment := c.Params("slug")

	// An explicit city param wins over trailing-token extraction.
	slug, city := segment, (*models.City)(nil)
	if citySlug := c.Query("city"); citySlug != "" {
		city = utils.ActiveCityBySlug(db.DB, citySlug)
	} else {
		slug, city = utils.SplitCitySlug(db.DB, segment, func(s string) bool {
			var count int64
			db.DB.Model(&models.Brand{}).Where("slug = ? AND status = ?", s, "active").Count(&count)
			return count > 0
		})
	}

	var brand models.Brand
	if err := db.DB.Where("slug = ? AND status = ?", slug, "active").First(&brand).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Brand not found",
		})
	}

	var categories []models.Category
	db.DB.Where("brand_id = ?", brand.ID).Order("sort_order ASC, name ASC").Find(&categories)

	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	query := db.DB.Model(&models.Product{}).Where("brand_id = ? AND status = ?", brand.ID, "active")
	if categoryID := c.QueryInt("category_id"); categoryID > 0 {
		query = query.Where("category_id = ?", categoryID)
	}

	var total int64
	query.Count(&total)

	var products []models.Product
	query.Order("sort_order ASC, name ASC").
		Offset((page - 1) * config.ItemsPerPage).
		Limit(config.ItemsPerPage).
		Find(&products)

	var cityID *uint
	if city != nil {
		cityID = &city.ID
	}
	entry := seo.Get(db.DB, seo.EntityBrand, brand.ID, cityID)
	seo.BrandDefaults(&entry, &brand, city)

	return c.JSON(fiber.Map{
		"brand":       brand,
		"city":        city,
		"categories":  categories,
		"products":    products,
		"total":       total,
		"page":        page,
		"total_pages": totalPages(total),
		"seo":         entry,
	})
}

func getProductPage(c *fiber.Ctx) error {
	brandSlug := c.Params("brand")
	segment := c.Params("slug")

	var brand models.Brand
	if err := db.DB.Where("slug = ? AND status = ?", brandSlug, "active").First(&brand).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Brand not found",
		})
	}

	slug, city := segment, (*models.City)(nil)
	if citySlug := c.Query("city"); citySlug != "" {
		city = utils.ActiveCityBySlug(db.DB, citySlug)
	} else {
		slug, city = utils.SplitCitySlug(db.DB, segment, func(s string) bool {
			var count int64
			db.DB.Model(&models.Product{}).
				Where("brand_id = ? AND slug = ? AND status = ?", brand.ID, s, "active").
				Count(&count)
			return count > 0
		})
	}

	var product models.Product
	if err := db.DB.Preload("Category").Preload("Specifications", specOrder).
		Where("brand_id = ? AND slug = ? AND status = ?", brand.ID, slug, "active").
		First(&product).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}

	var related []models.Product
	db.DB.Where("brand_id = ? AND status = ? AND id <> ?", brand.ID, "active", product.ID).
		Order("sort_order ASC, name ASC").Limit(4).Find(&related)

	var cityID *uint
	if city != nil {
		cityID = &city.ID
	}
	entry := seo.Get(db.DB, seo.EntityProduct, product.ID, cityID)
	seo.ProductDefaults(&entry, &product, &brand, city)

	return c.JSON(fiber.Map{
		"brand":            brand,
		"product":          product,
		"city":             city,
		"related_products": related,
		"seo":              entry,
	})
}

// searchProducts matches product names and short descriptions first, then
// falls back to listing the products of brands whose name matches.
func searchProducts(c *fiber.Ctx) error {
	term := c.Query("q")
	if term == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing search term",
		})
	}

	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	pattern := "%" + term + "%"

	query := db.DB.Model(&models.Product{}).
		Where("status = ? AND (name LIKE ? OR short_description LIKE ?)", "active", pattern, pattern)

	var total int64
	query.Count(&total)

	if total == 0 {
		var brandIDs []uint
		db.DB.Model(&models.Brand{}).
			Where("status = ? AND name LIKE ?", "active", pattern).
			Pluck("id", &brandIDs)
		if len(brandIDs) == 0 {
			return c.JSON(ProductListResponse{
				Products:   []models.Product{},
				Total:      0,
				Page:       page,
				TotalPages: 0,
			})
		}
		query = db.DB.Model(&models.Product{}).
			Where("status = ? AND brand_id IN ?", "active", brandIDs)
		query.Count(&total)
	}

	var products []models.Product
	query.Preload("Brand").Order("name ASC").
		Offset((page - 1) * config.ItemsPerPage).
		Limit(config.ItemsPerPage).
		Find(&products)

	return c.JSON(ProductListResponse{
		Products:   products,
		Total:      int(total),
		Page:       page,
		TotalPages: totalPages(total),
	})
}

func getActiveCities(c *fiber.Ctx) error {
	var cities []models.City
	if err := db.DB.Where("status = ?", "active").Order("name ASC").Find(&cities).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get cities",
		})
	}
	return c.JSON(cities)
}

func getActiveSliderImages(c *fiber.Ctx) error {
	var sliders []models.SliderImage
	if err := db.DB.Where("status = ?", "active").Order("sort_order ASC").Find(&sliders).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get slider images",
		})
	}
	return c.JSON(sliders)
}

func getActiveTestimonials(c *fiber.Ctx) error {
	var testimonials []models.Testimonial
	if err := db.DB.Where("status = ?", "active").Order("sort_order ASC").Find(&testimonials).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get testimonials",
		})
	}
	return c.JSON(testimonials)
}

func getActiveCertifications(c *fiber.Ctx) error {
	var certifications []models.Certification
	if err := db.DB.Where("status = ?", "active").Order("sort_order ASC").Find(&certifications).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get certifications",
		})
	}
	return c.JSON(certifications)
}

func getActiveBrands(c *fiber.Ctx) error {
	var brands []models.Brand
	if err := db.DB.Where("status = ?", "active").Order("sort_order ASC, name ASC").Find(&brands).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get brands",
		})
	}
	return c.JSON(brands)
}
