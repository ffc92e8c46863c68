package routes

import (
	"dealersite/db"
	"dealersite/models"
	"dealersite/utils"

	"github.com/gofiber/fiber/v2"
)

func listCities(c *fiber.Ctx) error {
	var cities []models.City
	if err := db.DB.Order("name ASC").Find(&cities).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get cities",
		})
	}
	return c.JSON(cities)
}

func createCity(c *fiber.Ctx) error {
	city := new(models.City)
	if err := c.BodyParser(city); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validate.Struct(city); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name is required",
		})
	}

	raw := city.Slug
	if raw == "" {
		raw = city.Name
	}
	slug := utils.GenerateSlug(raw)
	if slug == "" {
		return slugError(c, errEmptySlug)
	}
	slug, err := utils.UniqueSlug(db.DB, "cities", slug, 0)
	if err != nil {
		return slugError(c, err)
	}
	city.Slug = slug

	if err := db.DB.Create(&city).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create city",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(city)
}

func getCity(c *fiber.Ctx) error {
	id := c.Params("id")
	var city models.City

	if err := db.DB.First(&city, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "City not found",
		})
	}
	return c.JSON(city)
}

func updateCity(c *fiber.Ctx) error {
	id := c.Params("id")
	city := new(models.City)

	if err := c.BodyParser(city); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	var existing models.City
	if err := db.DB.First(&existing, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "City not found",
		})
	}

	if city.Slug != "" {
		slug := utils.GenerateSlug(city.Slug)
		if slug == "" {
			return slugError(c, errEmptySlug)
		}
		slug, err := utils.UniqueSlug(db.DB, "cities", slug, existing.ID)
		if err != nil {
			return slugError(c, err)
		}
		city.Slug = slug
	}

	if err := db.DB.Model(&existing).Updates(city).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update city",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "City updated successfully",
		"data":    existing,
	})
}

func deleteCity(c *fiber.Ctx) error {
	id := c.Params("id")

	var city models.City
	if err := db.DB.First(&city, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "City not found",
		})
	}

	// City-scoped SEO entries are meaningless once the city is gone
	db.DB.Where("city_id = ?", city.ID).Delete(&models.SEOEntry{})

	if err := db.DB.Delete(&city).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete city",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "City deleted successfully",
	})
}
