package routes

import (
	"encoding/xml"

	"dealersite/config"
	"dealersite/db"
	"dealersite/models"

	"github.com/gofiber/fiber/v2"
)

type sitemapURL struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

var staticSitemapPages = []string{
	"about-us", "certifications", "testimonials", "contact-us", "enquiry",
}

// sitemapXML emits every crawlable URL: the home page, the static pages,
// and the base plus per-city variants of every active brand and product.
// Products of inactive brands are excluded even when active themselves.
func sitemapXML(c *fiber.Ctx) error {
	base := config.App.SiteURL

	var cities []models.City
	if err := db.DB.Where("status = ?", "active").Order("name ASC").Find(&cities).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("sitemap unavailable")
	}

	var brands []models.Brand
	if err := db.DB.Where("status = ?", "active").Order("sort_order ASC, name ASC").Find(&brands).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("sitemap unavailable")
	}

	activeBrandSlugs := make(map[uint]string, len(brands))
	for _, brand := range brands {
		activeBrandSlugs[brand.ID] = brand.Slug
	}

	var products []models.Product
	if err := db.DB.Where("status = ?", "active").Order("id ASC").Find(&products).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("sitemap unavailable")
	}

	set := sitemapURLSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	set.URLs = append(set.URLs, sitemapURL{Loc: base + "/", ChangeFreq: "daily", Priority: "1.0"})

	for _, page := range staticSitemapPages {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        base + "/" + page,
			ChangeFreq: "monthly",
			Priority:   "0.8",
		})
	}

	for _, brand := range brands {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        base + "/" + brand.Slug,
			ChangeFreq: "weekly",
			Priority:   "0.9",
		})
		for _, city := range cities {
			set.URLs = append(set.URLs, sitemapURL{
				Loc:        base + "/" + brand.Slug + "-" + city.Slug,
				ChangeFreq: "weekly",
				Priority:   "0.9",
			})
		}
	}

	for _, product := range products {
		brandSlug, ok := activeBrandSlugs[product.BrandID]
		if !ok {
			continue
		}
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        base + "/" + brandSlug + "/" + product.Slug,
			ChangeFreq: "monthly",
			Priority:   "0.7",
		})
		for _, city := range cities {
			set.URLs = append(set.URLs, sitemapURL{
				Loc:        base + "/" + brandSlug + "/" + product.Slug + "-" + city.Slug,
				ChangeFreq: "monthly",
				Priority:   "0.7",
			})
		}
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("sitemap unavailable")
	}

	c.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
	return c.SendString(xml.Header + string(body))
}

// getDashboard returns the counts the admin landing page shows, plus the
// projected sitemap size for the current catalog.
func getDashboard(c *fiber.Ctx) error {
	counts := fiber.Map{}

	type counted struct {
		key   string
		model interface{}
		where []interface{}
	}
	for _, item := range []counted{
		{"brands", &models.Brand{}, nil},
		{"products", &models.Product{}, nil},
		{"cities", &models.City{}, nil},
		{"enquiries", &models.Enquiry{}, nil},
		{"new_enquiries", &models.Enquiry{}, []interface{}{"status = ?", models.EnquiryStatusNew}},
	} {
		var n int64
		query := db.DB.Model(item.model)
		if item.where != nil {
			query = query.Where(item.where[0], item.where[1:]...)
		}
		if err := query.Count(&n).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to load dashboard",
			})
		}
		counts[item.key] = n
	}

	var activeBrands, activeProducts, activeCities int64
	db.DB.Model(&models.Brand{}).Where("status = ?", "active").Count(&activeBrands)
	db.DB.Model(&models.City{}).Where("status = ?", "active").Count(&activeCities)
	db.DB.Model(&models.Product{}).
		Where("status = ? AND brand_id IN (?)", "active",
			db.DB.Model(&models.Brand{}).Select("id").Where("status = ?", "active")).
		Count(&activeProducts)

	// Home + static pages + per-brand and per-product base URLs and city
	// variants. Matches what the sitemap actually emits.
	sitemapURLs := 1 + int64(len(staticSitemapPages)) +
		activeBrands*(1+activeCities) +
		activeProducts*(1+activeCities)

	var recent []models.Enquiry
	db.DB.Order("created_at DESC").Limit(5).Find(&recent)

	counts["sitemap_urls"] = sitemapURLs
	counts["recent_enquiries"] = recent
	return c.JSON(counts)
}
