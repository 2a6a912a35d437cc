package repositories

import (
	"pasartani/internal/models"
)

// OrderRepository defines the interface for order data access. Orders are
// write-once: there is deliberately no update or delete.
type OrderRepository interface {
	Create(order *models.Order) error
	GetAll() ([]models.Order, error)
	FindByFarmerName(farmerName string) ([]models.Order, error)
	FindByBuyerEmail(email string) ([]models.Order, error)
}
