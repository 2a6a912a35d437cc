package repositories

import (
	"sort"
	"sync"
	"time"

	"pasartani/internal/models"

	"github.com/google/uuid"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
type MockOrderRepository struct {
	orders map[string]models.Order
	mu     sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{
		orders: make(map[string]models.Order),
	}
}

// Create adds a new order.
func (r *MockOrderRepository) Create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	r.orders[order.ID] = *order
	return nil
}

// GetAll returns all orders, oldest first.
func (r *MockOrderRepository) GetAll() ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orderList := make([]models.Order, 0, len(r.orders))
	for _, order := range r.orders {
		orderList = append(orderList, order)
	}
	sort.Slice(orderList, func(i, j int) bool {
		return orderList[i].CreatedAt.Before(orderList[j].CreatedAt)
	})
	return orderList, nil
}

// FindByFarmerName returns orders containing a farmer group for the given
// farmer name.
func (r *MockOrderRepository) FindByFarmerName(farmerName string) ([]models.Order, error) {
	all, _ := r.GetAll()

	matched := make([]models.Order, 0)
	for _, order := range all {
		for _, group := range order.Farmers {
			if group.FarmerDetails.FarmerName == farmerName {
				matched = append(matched, order)
				break
			}
		}
	}
	return matched, nil
}

// FindByBuyerEmail returns orders placed by the given buyer email.
func (r *MockOrderRepository) FindByBuyerEmail(email string) ([]models.Order, error) {
	all, _ := r.GetAll()

	matched := make([]models.Order, 0)
	for _, order := range all {
		if order.BuyerDetails.Email == email {
			matched = append(matched, order)
		}
	}
	return matched, nil
}
