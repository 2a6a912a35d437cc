package repositories

import (
	"pasartani/internal/models"
)

// ProductRepository defines the interface for product listing data access.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	FindByFarmerName(farmerName string) ([]models.Product, error)
	Create(product *models.Product) error
	UpdateStatus(id string, status string) error
	Delete(id string) error
}
