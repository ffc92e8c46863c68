package routes

import (
	"dealersite/db"
	"dealersite/models"
	"dealersite/seo"

	"github.com/gofiber/fiber/v2"
)

func seoKeyFromQuery(c *fiber.Ctx) (string, uint, *uint, error) {
	entityType := c.Query("entity_type")
	if !seo.ValidEntityType(entityType) {
		return "", 0, nil, fiber.NewError(fiber.StatusBadRequest, "Invalid entity type")
	}

	// The home page lives under entity id 0.
	entityID := c.QueryInt("entity_id", -1)
	if entityID < 0 {
		return "", 0, nil, fiber.NewError(fiber.StatusBadRequest, "Invalid entity id")
	}

	var cityID *uint
	if raw := c.QueryInt("city_id"); raw > 0 {
		id := uint(raw)
		cityID = &id
	}
	return entityType, uint(entityID), cityID, nil
}

func getSEOEntry(c *fiber.Ctx) error {
	entityType, entityID, cityID, err := seoKeyFromQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	entry := seo.Get(db.DB, entityType, entityID, cityID)
	return c.JSON(entry)
}

func saveSEOEntry(c *fiber.Ctx) error {
	entityType, entityID, cityID, err := seoKeyFromQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var data models.SEOEntry
	if err := c.BodyParser(&data); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	if err := seo.Save(db.DB, entityType, entityID, cityID, data); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save SEO entry",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "SEO entry saved successfully",
		"data":    seo.Get(db.DB, entityType, entityID, cityID),
	})
}
