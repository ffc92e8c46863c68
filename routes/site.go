package routes

import (
	"dealersite/db"
	"dealersite/models"
	"dealersite/seo"
	"dealersite/utils"

	"github.com/gofiber/fiber/v2"
)

// Slider image handlers

func listSliderImages(c *fiber.Ctx) error {
	var sliders []models.SliderImage
	if err := db.DB.Order("sort_order ASC").Find(&sliders).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get slider images",
		})
	}
	return c.JSON(sliders)
}

func createSliderImage(c *fiber.Ctx) error {
	slider := new(models.SliderImage)
	if err := c.BodyParser(slider); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validate.Struct(slider); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Image is required",
		})
	}

	if err := db.DB.Create(&slider).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create slider image",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(slider)
}

func getSliderImage(c *fiber.Ctx) error {
	id := c.Params("id")
	var slider models.SliderImage

	if err := db.DB.First(&slider, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Slider image not found",
		})
	}
	return c.JSON(slider)
}

func updateSliderImage(c *fiber.Ctx) error {
	id := c.Params("id")
	slider := new(models.SliderImage)

	if err := c.BodyParser(slider); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	var existing models.SliderImage
	if err := db.DB.First(&existing, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Slider image not found",
		})
	}

	// A replacement image orphans the old file
	if slider.Image != "" && slider.Image != existing.Image {
		utils.DeleteImage(existing.Image)
	}

	if err := db.DB.Model(&existing).Updates(slider).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update slider image",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Slider image updated successfully",
		"data":    existing,
	})
}

func deleteSliderImage(c *fiber.Ctx) error {
	id := c.Params("id")

	var slider models.SliderImage
	if err := db.DB.First(&slider, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Slider image not found",
		})
	}

	utils.DeleteImage(slider.Image)

	if err := db.DB.Delete(&slider).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete slider image",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Slider image deleted successfully",
	})
}

// Testimonial handlers

func listTestimonials(c *fiber.Ctx) error {
	var testimonials []models.Testimonial
	if err := db.DB.Order("sort_order ASC, name ASC").Find(&testimonials).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get testimonials",
		})
	}
	return c.JSON(testimonials)
}

func createTestimonial(c *fiber.Ctx) error {
	testimonial := new(models.Testimonial)
	if err := c.BodyParser(testimonial); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validate.Struct(testimonial); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name and content are required",
		})
	}

	if err := db.DB.Create(&testimonial).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create testimonial",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(testimonial)
}

func getTestimonial(c *fiber.Ctx) error {
	id := c.Params("id")
	var testimonial models.Testimonial

	if err := db.DB.First(&testimonial, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Testimonial not found",
		})
	}
	return c.JSON(testimonial)
}

func updateTestimonial(c *fiber.Ctx) error {
	id := c.Params("id")
	testimonial := new(models.Testimonial)

	if err := c.BodyParser(testimonial); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	var existing models.Testimonial
	if err := db.DB.First(&existing, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Testimonial not found",
		})
	}

	if err := db.DB.Model(&existing).Updates(testimonial).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update testimonial",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Testimonial updated successfully",
		"data":    existing,
	})
}

func deleteTestimonial(c *fiber.Ctx) error {
	id := c.Params("id")

	var testimonial models.Testimonial
	if err := db.DB.First(&testimonial, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Testimonial not found",
		})
	}

	utils.DeleteImage(testimonial.Image)

	if err := db.DB.Delete(&testimonial).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete testimonial",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Testimonial deleted successfully",
	})
}

// Certification handlers

func listCertifications(c *fiber.Ctx) error {
	var certifications []models.Certification
	if err := db.DB.Order("sort_order ASC, name ASC").Find(&certifications).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get certifications",
		})
	}
	return c.JSON(certifications)
}

func createCertification(c *fiber.Ctx) error {
	certification := new(models.Certification)
	if err := c.BodyParser(certification); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validate.Struct(certification); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name is required",
		})
	}

	if err := db.DB.Create(&certification).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create certification",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(certification)
}

func getCertification(c *fiber.Ctx) error {
	id := c.Params("id")
	var certification models.Certification

	if err := db.DB.First(&certification, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Certification not found",
		})
	}
	return c.JSON(certification)
}

func updateCertification(c *fiber.Ctx) error {
	id := c.Params("id")
	certification := new(models.Certification)

	if err := c.BodyParser(certification); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	var existing models.Certification
	if err := db.DB.First(&existing, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Certification not found",
		})
	}

	if err := db.DB.Model(&existing).Updates(certification).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update certification",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Certification updated successfully",
		"data":    existing,
	})
}

func deleteCertification(c *fiber.Ctx) error {
	id := c.Params("id")

	var certification models.Certification
	if err := db.DB.First(&certification, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Certification not found",
		})
	}

	utils.DeleteImage(certification.Image)

	if err := db.DB.Delete(&certification).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete certification",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Certification deleted successfully",
	})
}

// Contact detail handlers

func listContactDetails(c *fiber.Ctx) error {
	var contacts []models.ContactDetail
	if err := db.DB.Order("type ASC, sort_order ASC").Find(&contacts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get contact details",
		})
	}
	return c.JSON(contacts)
}

func createContactDetail(c *fiber.Ctx) error {
	contact := new(models.ContactDetail)
	if err := c.BodyParser(contact); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validate.Struct(contact); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Type and value are required",
		})
	}

	if err := db.DB.Create(&contact).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create contact detail",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(contact)
}

func getContactDetail(c *fiber.Ctx) error {
	id := c.Params("id")
	var contact models.ContactDetail

	if err := db.DB.First(&contact, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Contact detail not found",
		})
	}
	return c.JSON(contact)
}

func updateContactDetail(c *fiber.Ctx) error {
	id := c.Params("id")
	contact := new(models.ContactDetail)

	if err := c.BodyParser(contact); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	var existing models.ContactDetail
	if err := db.DB.First(&existing, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Contact detail not found",
		})
	}

	if err := db.DB.Model(&existing).Updates(contact).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update contact detail",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Contact detail updated successfully",
		"data":    existing,
	})
}

func deleteContactDetail(c *fiber.Ctx) error {
	id := c.Params("id")

	var contact models.ContactDetail
	if err := db.DB.First(&contact, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Contact detail not found",
		})
	}

	if err := db.DB.Delete(&contact).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete contact detail",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Contact detail deleted successfully",
	})
}

// Static page handlers

func listStaticPages(c *fiber.Ctx) error {
	var pages []models.StaticPage
	if err := db.DB.Order("page_key ASC").Find(&pages).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get pages",
		})
	}
	return c.JSON(pages)
}

func createStaticPage(c *fiber.Ctx) error {
	page := new(models.StaticPage)
	if err := c.BodyParser(page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validate.Struct(page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Page key and title are required",
		})
	}
	page.PageKey = utils.GenerateSlug(page.PageKey)

	if err := db.DB.Create(&page).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create page",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(page)
}

func getStaticPageByID(c *fiber.Ctx) error {
	id := c.Params("id")
	var page models.StaticPage

	if err := db.DB.First(&page, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Page not found",
		})
	}
	return c.JSON(page)
}

func updateStaticPage(c *fiber.Ctx) error {
	id := c.Params("id")
	page := new(models.StaticPage)

	if err := c.BodyParser(page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	var existing models.StaticPage
	if err := db.DB.First(&existing, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Page not found",
		})
	}

	if page.PageKey != "" {
		page.PageKey = utils.GenerateSlug(page.PageKey)
	}

	if err := db.DB.Model(&existing).Updates(page).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update page",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Page updated successfully",
		"data":    existing,
	})
}

func deleteStaticPage(c *fiber.Ctx) error {
	id := c.Params("id")

	var page models.StaticPage
	if err := db.DB.First(&page, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Page not found",
		})
	}

	db.DB.Where("entity_type = ? AND entity_id = ?", seo.EntityPage, page.ID).
		Delete(&models.SEOEntry{})

	if err := db.DB.Delete(&page).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete page",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Page deleted successfully",
	})
}
