package handlers

import (
	"errors"
	"log"

	"pasartani/internal/models"
	"pasartani/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for checkout and transaction views.
type OrderHandler struct {
	orderService *services.OrderService
	txService    *services.TransactionService
	validate     *validator.Validate
	deliveryFee  float64
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderService *services.OrderService, txService *services.TransactionService, deliveryFee float64) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		txService:    txService,
		validate:     validator.New(),
		deliveryFee:  deliveryFee,
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Post("/", h.HandlePlaceOrder)
	orderRoutes.Post("/quote", h.HandleQuote)
	orderRoutes.Get("/report", h.HandleReport)
	orderRoutes.Get("/transactions/:identifier/:role", h.HandleListTransactions)
}

// isValidationErr reports whether the service rejected the payload itself,
// as opposed to failing while storing it.
func isValidationErr(err error) bool {
	return errors.Is(err, services.ErrMissingBuyer) ||
		errors.Is(err, services.ErrEmptyOrder) ||
		errors.Is(err, services.ErrInvalidTransportation) ||
		errors.Is(err, services.ErrInvalidLineItem) ||
		errors.Is(err, services.ErrTotalMismatch)
}

// HandlePlaceOrder accepts the nested checkout payload and stores the order.
func (h *OrderHandler) HandlePlaceOrder(c *fiber.Ctx) error {
	var req models.OrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing order request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Missing required fields",
			"error":   err.Error(),
		})
	}

	userID, _ := c.Locals("user_id").(string)
	order, err := h.orderService.PlaceOrder(userID, req)
	if err != nil {
		log.Printf("Error placing order: %v", err)
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

// QuoteRequest carries the flat cart lines for a checkout preview.
type QuoteRequest struct {
	Items          []models.CartLine `json:"items"`
	Transportation string            `json:"transportation" validate:"required,oneof=Pick-up Delivery"`
}

// HandleQuote groups the cart and returns the computed totals without
// storing anything.
func (h *OrderHandler) HandleQuote(c *fiber.Ctx) error {
	var req QuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Missing required fields",
			"error":   err.Error(),
		})
	}

	checkout := services.BuildCheckout(req.Items, req.Transportation, h.deliveryFee)
	return c.JSON(checkout)
}

// HandleListTransactions returns the orders visible to the given identifier
// under the given role.
func (h *OrderHandler) HandleListTransactions(c *fiber.Ctx) error {
	identifier := c.Params("identifier")
	role := c.Params("role")

	orders, err := h.txService.ListTransactions(identifier, role)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRole):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid role provided.",
			})
		case errors.Is(err, services.ErrNoTransactions):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "No transactions found.",
			})
		default:
			log.Printf("Error fetching transactions for %s/%s: %v", identifier, role, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Error fetching transactions. Please try again later.",
			})
		}
	}

	return c.JSON(orders)
}

// HandleReport returns the full ledger re-grouped by buyer and farmer for
// tabular display. Admin only.
func (h *OrderHandler) HandleReport(c *fiber.Ctx) error {
	role, _ := c.Locals("role").(string)
	if role != models.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Admin access required.",
		})
	}

	orders, err := h.txService.ListTransactions(models.RoleAdmin, models.RoleAdmin)
	if err != nil {
		if errors.Is(err, services.ErrNoTransactions) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "No transactions found.",
			})
		}
		log.Printf("Error building transaction report: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching transactions. Please try again later.",
		})
	}

	return c.JSON(h.txService.BuildReport(orders))
}
