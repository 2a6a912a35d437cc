package handlers

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"pasartani/internal/models"
	"pasartani/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// GuideHandler handles HTTP requests for farming guides.
type GuideHandler struct {
	guideService *services.GuideService
	validate     *validator.Validate
	imageDir     string
}

// NewGuideHandler creates a new GuideHandler. Guide cover images are stored
// under imageDir.
func NewGuideHandler(guideService *services.GuideService, imageDir string) *GuideHandler {
	return &GuideHandler{
		guideService: guideService,
		validate:     validator.New(),
		imageDir:     imageDir,
	}
}

// RegisterRoutes registers the guide routes with the Fiber app.
func (h *GuideHandler) RegisterRoutes(router fiber.Router) {
	guideRoutes := router.Group("/guides")
	guideRoutes.Post("/", h.HandleCreateGuide)
	guideRoutes.Delete("/", h.HandleDeleteGuide)
	guideRoutes.Get("/:type", h.HandleGetGuidesByType)
}

// HandleCreateGuide creates a guide from a multipart form with an optional
// cover image.
func (h *GuideHandler) HandleCreateGuide(c *fiber.Ctx) error {
	guide := models.Guide{
		Title: c.FormValue("title"),
		URL:   c.FormValue("url"),
		Type:  c.FormValue("type"),
	}

	if err := h.validate.Struct(guide); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Required fields are missing",
			"error":   err.Error(),
		})
	}

	if file, err := c.FormFile("image"); err == nil {
		filename := fmt.Sprintf("image-%d%s", time.Now().UnixMilli(), filepath.Ext(file.Filename))
		dest := filepath.Join(h.imageDir, filename)
		if err := c.SaveFile(file, dest); err != nil {
			log.Printf("Error saving guide image: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not save guide image",
			})
		}
		guide.Image = filepath.ToSlash(filepath.Join("GuideImages", filename))
	}

	if err := h.guideService.CreateGuide(&guide); err != nil {
		log.Printf("Error creating guide: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(guide)
}

// HandleGetGuidesByType retrieves all guides of one type.
func (h *GuideHandler) HandleGetGuidesByType(c *fiber.Ctx) error {
	guides, err := h.guideService.GetGuidesByType(c.Params("type"))
	if err != nil {
		log.Printf("Error fetching guides: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error",
		})
	}
	return c.JSON(guides)
}

// HandleDeleteGuide deletes a guide by the id query parameter, removing its
// image file as well.
func (h *GuideHandler) HandleDeleteGuide(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Guide ID is required.",
		})
	}

	guide, err := h.guideService.DeleteGuide(id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Guide not found.",
			})
		}
		log.Printf("Error deleting guide %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error.",
		})
	}

	if guide.Image != "" {
		if err := os.Remove(filepath.Join(h.imageDir, filepath.Base(guide.Image))); err != nil && !os.IsNotExist(err) {
			log.Printf("Error removing image for guide %s: %v", id, err)
		}
	}

	return c.JSON(fiber.Map{
		"message": "Guide deleted successfully.",
	})
}
