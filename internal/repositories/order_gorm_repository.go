package repositories

import (
	"fmt"

	"pasartani/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository. Each
// order is one row with the nested farmer groups JSON-serialized, so a
// checkout is a single atomic insert.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// Create inserts a new order.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if err := r.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// GetAll retrieves every order, oldest first.
func (r *GORMOrderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Order("created_at asc").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get all orders: %w", err)
	}
	return orders, nil
}

// FindByFarmerName retrieves every order containing at least one farmer
// group for the given farmer name. The farmer groups live inside the
// serialized JSON column, so the filter runs over the decoded rows rather
// than in SQL; that keeps the query portable across the sqlite and postgres
// drivers.
func (r *GORMOrderRepository) FindByFarmerName(farmerName string) ([]models.Order, error) {
	all, err := r.GetAll()
	if err != nil {
		return nil, err
	}

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

// FindByBuyerEmail retrieves every order placed by the given buyer email.
func (r *GORMOrderRepository) FindByBuyerEmail(email string) ([]models.Order, error) {
	all, err := r.GetAll()
	if err != nil {
		return nil, err
	}

	matched := make([]models.Order, 0)
	for _, order := range all {
		if order.BuyerDetails.Email == email {
			matched = append(matched, order)
		}
	}
	return matched, nil
}
