package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Image upload settings
const (
	MaxUploadSize = 5 * 1024 * 1024 // 5MB
	ItemsPerPage  = 12
	TokenLifetime = 24 * time.Hour
)

// AllowedImageExtensions lists the file extensions accepted by the upload endpoint.
var AllowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

type Config struct {
	SiteName     string
	SiteURL      string
	Port         string
	DatabasePath string
	UploadPath   string
	JWTSecret    string
	AdminEmail   string
}

var App *Config

// Load reads the optional .env file and populates the global config.
func Load() *Config {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Println("Error loading .env file:", err)
		}
	}

	App = &Config{
		SiteName:     getEnv("SITE_NAME", "Professional Dealer Website"),
		SiteURL:      getEnv("SITE_URL", "http://localhost:3000"),
		Port:         getEnv("PORT", "3000"),
		DatabasePath: getEnv("DATABASE_PATH", "database.db"),
		UploadPath:   getEnv("UPLOAD_PATH", "uploads"),
		JWTSecret:    getEnv("JWT_SECRET", "change-me-in-production"),
		AdminEmail:   getEnv("ADMIN_EMAIL", "admin@dealerwebsite.com"),
	}
	return App
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
