package routes

import (
	"dealersite/config"
	"dealersite/db"
	"dealersite/models"

	"github.com/gofiber/fiber/v2"
)

type EnquiryListResponse struct {
	Enquiries  []models.Enquiry `json:"enquiries"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	TotalPages int              `json:"total_pages"`
}

// resolveEnquiryRefs validates the optional product/brand references and
// fills the brand from the product when only the product was sent.
func resolveEnquiryRefs(enquiry *models.Enquiry) error {
	if enquiry.ProductID != nil {
		var product models.Product
		if err := db.DB.First(&product, *enquiry.ProductID).Error; err != nil {
			enquiry.ProductID = nil
		} else if enquiry.BrandID == nil {
			brandID := product.BrandID
			enquiry.BrandID = &brandID
		}
	}
	if enquiry.BrandID != nil {
		var count int64
		if err := db.DB.Model(&models.Brand{}).Where("id = ?", *enquiry.BrandID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			enquiry.BrandID = nil
		}
	}
	return nil
}

// Public enquiry form submission
func createEnquiry(c *fiber.Ctx) error {
	enquiry := new(models.Enquiry)
	if err := c.BodyParser(enquiry); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to parse request body",
		})
	}

	if err := validate.Struct(enquiry); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Name, a valid email and a message are required",
		})
	}

	enquiry.ID = 0
	enquiry.Status = models.EnquiryStatusNew
	enquiry.IPAddress = c.IP()
	enquiry.UserAgent = c.Get("User-Agent")

	if err := resolveEnquiryRefs(enquiry); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to save enquiry",
		})
	}

	if err := db.DB.Create(&enquiry).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to save enquiry",
		})
	}

	broadcastEnquiry(*enquiry)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":    true,
		"enquiry_id": enquiry.ID,
	})
}

// syncEnquiryRequest accepts the aliased field names used by external
// form integrations alongside the canonical ones.
type syncEnquiryRequest struct {
	Name           string `json:"name"`
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Mobile         string `json:"mobile"`
	Company        string `json:"company"`
	CompanyName    string `json:"company_name"`
	Subject        string `json:"subject"`
	Message        string `json:"message"`
	Enquiry        string `json:"enquiry"`
	EnquiryDetails string `json:"enquiry_details"`
	Address        string `json:"address"`
	ProductID      *uint  `json:"product_id"`
	BrandID        *uint  `json:"brand_id"`
	CategoryID     *uint  `json:"category_id"`
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// External integration endpoint. Field aliases are coalesced into the
// canonical enquiry shape before the same validation applies.
func syncEnquiry(c *fiber.Ctx) error {
	req := new(syncEnquiryRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to parse request body",
		})
	}

	enquiry := models.Enquiry{
		Name:      firstNonEmpty(req.FullName, req.Name),
		Email:     req.Email,
		Phone:     firstNonEmpty(req.Mobile, req.Phone),
		Company:   firstNonEmpty(req.CompanyName, req.Company),
		Subject:   req.Subject,
		Message:   firstNonEmpty(req.EnquiryDetails, req.Message, req.Enquiry),
		ProductID: req.ProductID,
		BrandID:   req.BrandID,
		Status:    models.EnquiryStatusNew,
		IPAddress: c.IP(),
		UserAgent: c.Get("User-Agent"),
	}

	if req.Address != "" {
		enquiry.Message += "\n\nAddress: " + req.Address
	}
	if enquiry.Subject == "" && enquiry.Company != "" {
		enquiry.Subject = "Enquiry from " + enquiry.Company
	}

	// A category reference resolves to its brand when no brand was sent.
	if enquiry.BrandID == nil && req.CategoryID != nil {
		var category models.Category
		if err := db.DB.First(&category, *req.CategoryID).Error; err == nil {
			brandID := category.BrandID
			enquiry.BrandID = &brandID
		}
	}

	if err := validate.Struct(&enquiry); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Name, a valid email and a message are required",
		})
	}

	if err := resolveEnquiryRefs(&enquiry); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to save enquiry",
		})
	}

	if err := db.DB.Create(&enquiry).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to save enquiry",
		})
	}

	broadcastEnquiry(enquiry)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":    true,
		"enquiry_id": enquiry.ID,
	})
}

// Admin enquiry handlers

func listEnquiries(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	query := db.DB.Model(&models.Enquiry{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get enquiries",
		})
	}

	var enquiries []models.Enquiry
	if err := query.Order("created_at DESC").
		Offset((page - 1) * config.ItemsPerPage).
		Limit(config.ItemsPerPage).
		Find(&enquiries).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get enquiries",
		})
	}

	return c.JSON(EnquiryListResponse{
		Enquiries:  enquiries,
		Total:      total,
		Page:       page,
		TotalPages: totalPages(total),
	})
}

func getEnquiry(c *fiber.Ctx) error {
	id := c.Params("id")
	var enquiry models.Enquiry

	if err := db.DB.Preload("Product").Preload("Brand").First(&enquiry, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Enquiry not found",
		})
	}

	// First admin view marks the enquiry read.
	if enquiry.Status == models.EnquiryStatusNew {
		if err := db.DB.Model(&enquiry).Update("status", models.EnquiryStatusRead).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update enquiry",
			})
		}
	}

	return c.JSON(enquiry)
}

func updateEnquiryStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	var body struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	switch body.Status {
	case models.EnquiryStatusNew, models.EnquiryStatusRead,
		models.EnquiryStatusReplied, models.EnquiryStatusClosed:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid status",
		})
	}

	var enquiry models.Enquiry
	if err := db.DB.First(&enquiry, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Enquiry not found",
		})
	}

	if err := db.DB.Model(&enquiry).Update("status", body.Status).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update enquiry",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Enquiry status updated successfully",
		"data":    enquiry.ID,
	})
}
