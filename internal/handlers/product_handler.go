package handlers

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"pasartani/internal/models"
	"pasartani/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for marketplace listings.
type ProductHandler struct {
	productService *services.ProductService
	orderService   *services.OrderService
	validate       *validator.Validate
	uploadDir      string
}

// NewProductHandler creates a new ProductHandler. Uploaded listing images
// are stored under uploadDir.
func NewProductHandler(productService *services.ProductService, orderService *services.OrderService, uploadDir string) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		orderService:   orderService,
		validate:       validator.New(),
		uploadDir:      uploadDir,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Get("/stocks/:farmerName", h.HandleGetFarmerStocks)
	productRoutes.Post("/submit-order", h.HandleSubmitFlatOrder)
	productRoutes.Patch("/:id/status", h.HandleReviewProduct)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleGetProducts retrieves all listings.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.productService.GetAllProducts()
	if err != nil {
		log.Printf("Error getting all products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
		})
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single listing by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	productID := c.Params("id")
	product, err := h.productService.GetProductByID(productID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		log.Printf("Error getting product %s: %v", productID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve product",
		})
	}
	return c.JSON(product)
}

// HandleGetFarmerStocks retrieves the listings belonging to one farmer.
// An empty result is reported as not found, same as the transactions view.
func (h *ProductHandler) HandleGetFarmerStocks(c *fiber.Ctx) error {
	farmerName := c.Params("farmerName")
	products, err := h.productService.GetFarmerStocks(farmerName)
	if err != nil {
		log.Printf("Error fetching stocks for farmer %s: %v", farmerName, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error while fetching stocks.",
		})
	}
	if len(products) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "No stock found for this farmer.",
		})
	}
	return c.JSON(products)
}

// HandleCreateProduct creates a listing from a multipart form, saving the
// optional image to disk. The listing starts in Pending review state.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	quantity, _ := strconv.ParseFloat(c.FormValue("quantity"), 64)
	price, _ := strconv.ParseFloat(c.FormValue("price"), 64)

	product := models.Product{
		Name:          c.FormValue("name"),
		Quantity:      quantity,
		Grade:         c.FormValue("grade"),
		Price:         price,
		Location:      c.FormValue("location"),
		FarmerName:    c.FormValue("farmerName"),
		FarmerAddress: c.FormValue("farmerAddress"),
		FarmerEmail:   c.FormValue("farmerEmail"),
	}
	if userID, ok := c.Locals("user_id").(string); ok {
		product.UserID = userID
	}

	if err := h.validate.Struct(product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Required fields are missing",
			"error":   err.Error(),
		})
	}

	if file, err := c.FormFile("image"); err == nil {
		filename := fmt.Sprintf("%d%s", time.Now().UnixMilli(), filepath.Ext(file.Filename))
		dest := filepath.Join(h.uploadDir, filename)
		if err := c.SaveFile(file, dest); err != nil {
			log.Printf("Error saving product image: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not save product image",
			})
		}
		product.Image = filepath.ToSlash(filepath.Join("uploads", filename))
	}

	if err := h.productService.CreateProduct(&product); err != nil {
		log.Printf("Error saving product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Product added successfully",
		"product": product,
	})
}

// HandleReviewProduct moves a listing between review states. Admin only.
func (h *ProductHandler) HandleReviewProduct(c *fiber.Ctx) error {
	role, _ := c.Locals("role").(string)
	if role != models.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Admin access required.",
		})
	}

	productID := c.Params("id")
	var updateData struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&updateData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.productService.ReviewProduct(productID, updateData.Status); err != nil {
		log.Printf("Error reviewing product %s: %v", productID, err)
		if strings.Contains(err.Error(), "invalid product status") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": err.Error(),
			})
		}
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update product status",
		})
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Product %s marked %s", productID, updateData.Status),
	})
}

// HandleDeleteProduct deletes a listing owned by the caller, removing its
// image file from disk as well.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	userID, _ := c.Locals("user_id").(string)

	product, err := h.productService.GetProductByID(productID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		log.Printf("Error getting product %s for deletion: %v", productID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	if err := h.productService.DeleteProduct(productID, userID); err != nil {
		log.Printf("Error deleting product %s: %v", productID, err)
		if strings.Contains(err.Error(), "not authorized") {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Not authorized to delete this product",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	if product.Image != "" {
		if err := os.Remove(filepath.Join(h.uploadDir, filepath.Base(product.Image))); err != nil && !os.IsNotExist(err) {
			log.Printf("Error removing image for product %s: %v", productID, err)
		}
	}

	return c.JSON(fiber.Map{
		"message": "Product deleted successfully",
	})
}

// HandleSubmitFlatOrder accepts the legacy flat products checkout payload
// and stores it through the same order pipeline.
func (h *ProductHandler) HandleSubmitFlatOrder(c *fiber.Ctx) error {
	var req models.FlatOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Missing required fields.",
			"error":   err.Error(),
		})
	}

	userID, _ := c.Locals("user_id").(string)
	order, err := h.orderService.PlaceFlatOrder(userID, req)
	if err != nil {
		log.Printf("Error placing flat order: %v", err)
		switch {
		case errors.Is(err, services.ErrMissingPrincipal):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Access Denied.",
			})
		case isValidationErr(err):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Order rejected",
				"error":   err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Internal server error",
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Order placed successfully",
		"order":   order,
	})
}
