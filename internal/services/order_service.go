package services

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"time"

	"pasartani/internal/models"
	"pasartani/internal/repositories"

	"github.com/google/uuid"
)

// totalTolerance absorbs float rounding when comparing a client-supplied
// total against the server-side recomputation.
const totalTolerance = 1e-6

// EventPublisher publishes order events to the message broker.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// OrderService handles checkout: it validates the nested payload, recomputes
// the totals, and persists each order as one atomic document.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	publisher   EventPublisher
	deliveryFee float64
}

// NewOrderService creates a new OrderService. The publisher may be nil, in
// which case order events are skipped.
func NewOrderService(orderRepo repositories.OrderRepository, publisher EventPublisher, deliveryFee float64) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		publisher:   publisher,
		deliveryFee: deliveryFee,
	}
}

// PlaceOrder validates the checkout payload, stamps the creation time, and
// stores the order as a single nested row. The transportation cost and the
// total are recomputed server-side; a client-supplied total that disagrees
// with the line items is rejected rather than overwritten.
func (s *OrderService) PlaceOrder(userID string, req models.OrderRequest) (*models.Order, error) {
	if userID == "" {
		return nil, ErrMissingPrincipal
	}
	if req.BuyerDetails.Name == "" || req.BuyerDetails.Email == "" {
		return nil, ErrMissingBuyer
	}
	if req.Transportation != models.TransportPickup && req.Transportation != models.TransportDelivery {
		return nil, ErrInvalidTransportation
	}

	var subtotal float64
	var lineCount int
	for _, group := range req.Farmers {
		for _, item := range group.Products {
			if item.Quantity <= 0 || item.Price <= 0 {
				return nil, ErrInvalidLineItem
			}
			subtotal += item.Price * item.Quantity
			lineCount++
		}
	}
	if len(req.Farmers) == 0 || lineCount == 0 {
		return nil, ErrEmptyOrder
	}

	cost := TransportationCost(req.Transportation, s.deliveryFee)
	total := subtotal + cost
	if req.TotalPrice != 0 && math.Abs(req.TotalPrice-total) > totalTolerance {
		return nil, ErrTotalMismatch
	}

	order := &models.Order{
		ID:                 uuid.New().String(),
		UserID:             userID,
		BuyerDetails:       req.BuyerDetails,
		Farmers:            req.Farmers,
		Transportation:     req.Transportation,
		TransportationCost: cost,
		TotalPrice:         total,
		CreatedAt:          time.Now(),
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to store order: %w", err)
	}

	s.publishOrderPlaced(order)

	return order, nil
}

// PlaceFlatOrder accepts the legacy flat products payload, groups the lines
// by farmer, and stores the result in the same nested shape as PlaceOrder.
func (s *OrderService) PlaceFlatOrder(userID string, req models.FlatOrderRequest) (*models.Order, error) {
	if len(req.Products) == 0 {
		return nil, ErrEmptyOrder
	}

	return s.PlaceOrder(userID, models.OrderRequest{
		BuyerDetails:       req.BuyerDetails,
		Farmers:            GroupCart(req.Products),
		Transportation:     req.Transportation,
		TransportationCost: req.TransportationCost,
		TotalPrice:         req.TotalPrice,
	})
}

// publishOrderPlaced emits an order.placed event. Publishing is best-effort:
// a broker failure is logged and never fails the checkout.
func (s *OrderService) publishOrderPlaced(order *models.Order) {
	if s.publisher == nil {
		return
	}

	event := map[string]interface{}{
		"orderId":    order.ID,
		"buyerEmail": order.BuyerDetails.Email,
		"farmers":    len(order.Farmers),
		"totalPrice": order.TotalPrice,
		"createdAt":  order.CreatedAt,
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal order event for order %s: %v", order.ID, err)
		return
	}

	if err := s.publisher.Publish("", "order.placed", body); err != nil {
		log.Printf("Warning: failed to publish order placed event for order %s: %v", order.ID, err)
	}
}
