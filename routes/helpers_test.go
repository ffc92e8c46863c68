package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"dealersite/config"
	"dealersite/db"
	"dealersite/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupApp wires a fresh in-memory database and a fully routed app.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	config.Load()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	db.DB = gdb

	app := fiber.New()
	SetupRoutes(app)
	return app
}

// adminToken seeds an admin account and logs in through the API.
func adminToken(t *testing.T, app *fiber.App) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if err := db.DB.Create(&models.AdminUser{
		Username: "admin",
		Email:    "admin@example.com",
		Password: string(hash),
		Status:   "active",
	}).Error; err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	resp, body := doJSON(t, app, fiber.MethodPost, "/api/admin/login",
		fiber.Map{"username": "admin", "password": "secret123"}, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d, body %v", resp.StatusCode, body)
	}
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatal("login returned no token")
	}
	return token
}

// doJSON sends a request with an optional JSON body and bearer token and
// decodes the JSON response.
func doJSON(t *testing.T, app *fiber.App, method, target string, payload interface{}, token string) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reqBody)
	if payload != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	resp.Body.Close()

	var body map[string]interface{}
	if len(raw) > 0 {
		json.Unmarshal(raw, &body)
	}
	return resp, body
}

func seedBrand(t *testing.T, name, slug, status string) models.Brand {
	t.Helper()
	brand := models.Brand{Name: name, Slug: slug, Status: status}
	if err := db.DB.Create(&brand).Error; err != nil {
		t.Fatalf("seed brand: %v", err)
	}
	return brand
}

func seedProduct(t *testing.T, brandID uint, name, slug, status string) models.Product {
	t.Helper()
	product := models.Product{BrandID: brandID, Name: name, Slug: slug, Status: status}
	if err := db.DB.Create(&product).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return product
}

func seedCity(t *testing.T, name, slug, status string) models.City {
	t.Helper()
	city := models.City{Name: name, Slug: slug, Status: status}
	if err := db.DB.Create(&city).Error; err != nil {
		t.Fatalf("seed city: %v", err)
	}
	return city
}
