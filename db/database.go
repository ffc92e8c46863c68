package db

import (
	"log"
	"os"
	"path/filepath"

	"dealersite/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDatabase(dbPath string) {
	var err error

	// Ensure the directory exists (create if it doesn't)
	dir := filepath.Dir(dbPath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatal("Failed to create database directory:", err)
		}
	}

	DB, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	log.Println("Database connected successfully at", dbPath)

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
}

// Migrate runs the schema migration for every model.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.Brand{}, &models.Category{}, &models.Product{}, &models.Specification{},
		&models.City{}, &models.SEOEntry{}, &models.Enquiry{}, &models.SliderImage{},
		&models.Testimonial{}, &models.Certification{}, &models.ContactDetail{},
		&models.StaticPage{}, &models.AdminUser{},
	)
}
