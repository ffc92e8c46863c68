package routes

import (
	"encoding/json"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"dealersite/config"
	"dealersite/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Adjust this for production
	},
}

// Connected admin dashboards with mutex for thread safety
var feedClients = make(map[*websocket.Conn]bool)
var enquiryFeed = make(chan []byte, 100) // Buffered channel to prevent blocking
var feedMutex = &sync.Mutex{}
var feedOnce sync.Once
var validate = validator.New()

func SetupRoutes(app *fiber.App) {

	wsHandler := adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("Error upgrading:", err)
			return
		}
		defer conn.Close()

		feedMutex.Lock()
		feedClients[conn] = true
		feedMutex.Unlock()
		log.Println("Dashboard connected:", conn.RemoteAddr())

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					log.Printf("WebSocket read error: %v", err)
				}
				feedMutex.Lock()
				delete(feedClients, conn)
				feedMutex.Unlock()
				log.Println("Dashboard disconnected:", conn.RemoteAddr())
				break
			}
		}
	})

	// Push new enquiries to all connected dashboards
	feedOnce.Do(func() {
		go func() {
			for message := range enquiryFeed {
				feedMutex.Lock()
				for client := range feedClients {
					if err := client.WriteMessage(websocket.TextMessage, message); err != nil {
						log.Printf("WebSocket write error: %v", err)
						client.Close()
						delete(feedClients, client)
					}
				}
				feedMutex.Unlock()
			}
		}()
	})

	// Live enquiry feed for the admin dashboard
	app.Get("/ws/enquiries", wsHandler)

	// Public sitemap
	app.Get("/sitemap.xml", sitemapXML)

	api := app.Group("/api")

	// Public content endpoints
	api.Get("/home", getHomePage)
	api.Get("/pages/:key", getStaticPage)
	api.Get("/search", searchProducts)
	api.Get("/cities", getActiveCities)
	api.Get("/slider-images", getActiveSliderImages)
	api.Get("/testimonials", getActiveTestimonials)
	api.Get("/certifications", getActiveCertifications)
	api.Get("/brands", getActiveBrands)
	api.Get("/brands/:slug", getBrandPage)
	api.Get("/brands/:brand/products/:slug", getProductPage)

	// Enquiry capture
	api.Post("/enquiries", createEnquiry)
	api.Post("/sync-enquiry", syncEnquiry)

	// Admin back-office
	admin := api.Group("/admin")
	admin.Post("/login", adminLogin)
	admin.Use(RequireAdmin)
	admin.Get("/me", getCurrentAdmin)
	admin.Get("/dashboard", getDashboard)
	admin.Post("/upload", uploadImage)

	brands := admin.Group("/brands")
	brands.Get("/", listBrands)
	brands.Post("/", createBrand)
	brands.Get("/:id", getBrand)
	brands.Put("/:id", updateBrand)
	brands.Delete("/:id", deleteBrand)
	brands.Delete("/:id/image", deleteBrandImage)
	brands.Delete("/:id/logo", deleteBrandLogo)

	categories := admin.Group("/categories")
	categories.Get("/", listCategories)
	categories.Post("/", createCategory)
	categories.Get("/:id", getCategory)
	categories.Put("/:id", updateCategory)
	categories.Delete("/:id", deleteCategory)
	categories.Delete("/:id/image", deleteCategoryImage)

	products := admin.Group("/products")
	products.Get("/", listProducts)
	products.Post("/", createProduct)
	products.Get("/:id", getProduct)
	products.Put("/:id", updateProduct)
	products.Delete("/:id", deleteProduct)
	products.Delete("/:id/image", deleteProductImage)
	products.Post("/:id/gallery", addGalleryImages)
	products.Delete("/:id/gallery/:index", deleteGalleryImage)
	products.Get("/:id/specs", listSpecifications)
	products.Post("/:id/specs", createSpecification)
	products.Put("/:id/specs/:specID", updateSpecification)
	products.Delete("/:id/specs/:specID", deleteSpecification)

	cities := admin.Group("/cities")
	cities.Get("/", listCities)
	cities.Post("/", createCity)
	cities.Get("/:id", getCity)
	cities.Put("/:id", updateCity)
	cities.Delete("/:id", deleteCity)

	sliders := admin.Group("/slider-images")
	sliders.Get("/", listSliderImages)
	sliders.Post("/", createSliderImage)
	sliders.Get("/:id", getSliderImage)
	sliders.Put("/:id", updateSliderImage)
	sliders.Delete("/:id", deleteSliderImage)

	testimonials := admin.Group("/testimonials")
	testimonials.Get("/", listTestimonials)
	testimonials.Post("/", createTestimonial)
	testimonials.Get("/:id", getTestimonial)
	testimonials.Put("/:id", updateTestimonial)
	testimonials.Delete("/:id", deleteTestimonial)

	certifications := admin.Group("/certifications")
	certifications.Get("/", listCertifications)
	certifications.Post("/", createCertification)
	certifications.Get("/:id", getCertification)
	certifications.Put("/:id", updateCertification)
	certifications.Delete("/:id", deleteCertification)

	contacts := admin.Group("/contact-details")
	contacts.Get("/", listContactDetails)
	contacts.Post("/", createContactDetail)
	contacts.Get("/:id", getContactDetail)
	contacts.Put("/:id", updateContactDetail)
	contacts.Delete("/:id", deleteContactDetail)

	pages := admin.Group("/pages")
	pages.Get("/", listStaticPages)
	pages.Post("/", createStaticPage)
	pages.Get("/:id", getStaticPageByID)
	pages.Put("/:id", updateStaticPage)
	pages.Delete("/:id", deleteStaticPage)

	adminSEO := admin.Group("/seo")
	adminSEO.Get("/", getSEOEntry)
	adminSEO.Put("/", saveSEOEntry)

	enquiries := admin.Group("/enquiries")
	enquiries.Get("/", listEnquiries)
	enquiries.Get("/:id", getEnquiry)
	enquiries.Put("/:id/status", updateEnquiryStatus)
}

// broadcastEnquiry queues an event for the dashboard feed without ever
// blocking the request that captured the enquiry.
func broadcastEnquiry(enquiry models.Enquiry) {
	payload, err := json.Marshal(fiber.Map{
		"event":   "enquiry.created",
		"enquiry": enquiry,
	})
	if err != nil {
		return
	}
	select {
	case enquiryFeed <- payload:
	default:
	}
}

// Image upload handler
func uploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to get uploaded file",
		})
	}

	folder := sanitizeFolder(c.Query("folder", "general"))
	storedPath, err := saveUploadedImage(c, file, folder)
	if err != nil {
		return err
	}

	// Return the relative path that can be stored in the database
	return c.JSON(fiber.Map{
		"filename": path.Base(storedPath),
		"path":     storedPath,
	})
}

// saveUploadedImage validates and stores one multipart image under
// uploads/{folder}/, returning the relative path for DB columns.
func saveUploadedImage(c *fiber.Ctx, file *multipart.FileHeader, folder string) (string, error) {
	if file.Size > config.MaxUploadSize {
		return "", c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "File size exceeds limit",
		})
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !config.AllowedImageExtensions[ext] {
		return "", c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid file type",
		})
	}

	filename := uuid.New().String() + ext
	dir := filepath.Join(config.App.UploadPath, filepath.FromSlash(folder))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save file",
		})
	}
	if err := c.SaveFile(file, filepath.Join(dir, filename)); err != nil {
		return "", c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save file",
		})
	}

	return path.Join(folder, filename), nil
}

// sanitizeFolder keeps upload folders inside the uploads tree.
func sanitizeFolder(folder string) string {
	folder = path.Clean(strings.Trim(folder, "/"))
	if folder == "." || folder == ".." || strings.Contains(folder, "..") {
		return "general"
	}
	return folder
}
