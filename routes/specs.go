package routes

import (
	"dealersite/db"
	"dealersite/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func specOrder(gdb *gorm.DB) *gorm.DB {
	return gdb.Order("sort_order ASC, spec_name ASC")
}

func listSpecifications(c *fiber.Ctx) error {
	id := c.Params("id")

	var product models.Product
	if err := db.DB.First(&product, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}

	var specs []models.Specification
	if err := specOrder(db.DB.Where("product_id = ?", product.ID)).Find(&specs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get specifications",
		})
	}
	return c.JSON(specs)
}

func createSpecification(c *fiber.Ctx) error {
	id := c.Params("id")

	var product models.Product
	if err := db.DB.First(&product, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}

	spec := new(models.Specification)
	if err := c.BodyParser(spec); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validate.Struct(spec); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Spec name and value are required",
		})
	}
	spec.ProductID = product.ID

	if err := db.DB.Create(&spec).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create specification",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(spec)
}

func updateSpecification(c *fiber.Ctx) error {
	id := c.Params("id")
	specID := c.Params("specID")

	spec := new(models.Specification)
	if err := c.BodyParser(spec); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validate.Struct(spec); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Spec name and value are required",
		})
	}

	var existing models.Specification
	if err := db.DB.Where("id = ? AND product_id = ?", specID, id).First(&existing).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Specification not found",
		})
	}

	if err := db.DB.Model(&existing).
		Select("spec_name", "spec_value", "sort_order").
		Updates(spec).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update specification",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Specification updated successfully",
		"data":    existing,
	})
}

func deleteSpecification(c *fiber.Ctx) error {
	id := c.Params("id")
	specID := c.Params("specID")

	var spec models.Specification
	if err := db.DB.Where("id = ? AND product_id = ?", specID, id).First(&spec).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Specification not found",
		})
	}

	if err := db.DB.Delete(&spec).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete specification",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Specification deleted successfully",
	})
}
