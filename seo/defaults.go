package seo

import (
	"strings"
	"unicode"

	"dealersite/config"
	"dealersite/models"
)

const dealerSuffix = " Authorised Dealer Distributor and Supplier in "

// BrandDefaults fills the empty fields of a resolved entry from brand and
// city data. Stored values always take precedence over synthesized ones.
func BrandDefaults(entry *models.SEOEntry, brand *models.Brand, city *models.City) {
	cfg := config.App

	if entry.H1Text == "" {
		h1 := titleCase(brand.Name)
		if city != nil {
			h1 += dealerSuffix + titleCase(city.Name)
		}
		entry.H1Text = h1
	}
	if entry.MetaTitle == "" {
		title := brand.Name
		if city != nil {
			title += dealerSuffix + city.Name
		}
		entry.MetaTitle = title + " - " + cfg.SiteName
	}
	if entry.CanonicalURL == "" {
		url := cfg.SiteURL + "/" + brand.Slug
		if city != nil {
			url += "-" + city.Slug
		}
		entry.CanonicalURL = url
	}
	if entry.MetaDescription == "" {
		entry.MetaDescription = brand.Description
	}
}

// ProductDefaults fills the empty fields of a resolved entry from product,
// brand and city data.
func ProductDefaults(entry *models.SEOEntry, product *models.Product, brand *models.Brand, city *models.City) {
	cfg := config.App

	if entry.H1Text == "" {
		h1 := product.Name
		if city != nil {
			h1 += dealerSuffix + city.Name
		}
		entry.H1Text = h1
	}
	if entry.MetaTitle == "" {
		title := product.Name + " - " + brand.Name
		if city != nil {
			title += dealerSuffix + city.Name
		}
		entry.MetaTitle = title + " - " + cfg.SiteName
	}
	if entry.CanonicalURL == "" {
		url := cfg.SiteURL + "/" + brand.Slug + "/" + product.Slug
		if city != nil {
			url += "-" + city.Slug
		}
		entry.CanonicalURL = url
	}
	if entry.MetaDescription == "" {
		entry.MetaDescription = product.ShortDescription
	}
}

// PageDefaults fills the empty fields of a resolved entry for a static or
// home page. path is the site-relative URL path without leading slash.
func PageDefaults(entry *models.SEOEntry, title, path string) {
	cfg := config.App

	if entry.H1Text == "" {
		entry.H1Text = title
	}
	if entry.MetaTitle == "" {
		if title == "" {
			entry.MetaTitle = cfg.SiteName
		} else {
			entry.MetaTitle = title + " - " + cfg.SiteName
		}
	}
	if entry.CanonicalURL == "" {
		url := cfg.SiteURL
		if path != "" {
			url += "/" + path
		}
		entry.CanonicalURL = url
	}
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
