package main

import (
	"log"
	"os"

	"dealersite/config"
	"dealersite/db"
	"dealersite/models"
	"dealersite/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg := config.Load()

	// Initialize database
	db.InitDatabase(cfg.DatabasePath)
	seedAdmin()

	// Create uploads directory if it doesn't exist
	if _, err := os.Stat(cfg.UploadPath); os.IsNotExist(err) {
		os.MkdirAll(cfg.UploadPath, 0755)
	}

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Serve static files
	app.Static("/uploads", "./"+cfg.UploadPath)

	// Setup routes
	routes.SetupRoutes(app)

	// Start server
	log.Fatal(app.Listen(":" + cfg.Port))
}

// seedAdmin creates the initial admin account from the environment when the
// table is empty, so a fresh deployment is immediately usable.
func seedAdmin() {
	var count int64
	if err := db.DB.Model(&models.AdminUser{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		log.Println("No admin account exists; set ADMIN_USERNAME and ADMIN_PASSWORD to seed one")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Println("Failed to hash admin password:", err)
		return
	}

	admin := models.AdminUser{
		Username: username,
		Email:    config.App.AdminEmail,
		Password: string(hash),
		Status:   "active",
	}
	if err := db.DB.Create(&admin).Error; err != nil {
		log.Println("Failed to seed admin account:", err)
		return
	}
	log.Println("Seeded admin account:", username)

	// Seed the static pages the public site links to.
	for key, title := range map[string]string{
		"about-us":       "About Us",
		"certifications": "Certifications",
		"testimonials":   "Testimonials",
		"contact-us":     "Contact Us",
		"enquiry":        "Enquiry",
	} {
		page := models.StaticPage{PageKey: key, Title: title, Status: "active"}
		db.DB.Where("page_key = ?", key).FirstOrCreate(&page)
	}
}
