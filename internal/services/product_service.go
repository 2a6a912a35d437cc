package services

import (
	"fmt"

	"pasartani/internal/models"
	"pasartani/internal/repositories"
)

// ProductService handles business logic for marketplace listings.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// GetAllProducts retrieves all listings.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single listing by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// GetFarmerStocks retrieves all listings belonging to the given farmer.
func (s *ProductService) GetFarmerStocks(farmerName string) ([]models.Product, error) {
	return s.repo.FindByFarmerName(farmerName)
}

// CreateProduct creates a new listing. Listings always start in Pending
// review state regardless of what the client sent.
func (s *ProductService) CreateProduct(product *models.Product) error {
	product.Status = models.ProductStatusPending
	return s.repo.Create(product)
}

// ReviewProduct moves a listing into one of the review states.
func (s *ProductService) ReviewProduct(id string, status string) error {
	validStatuses := map[string]bool{
		models.ProductStatusPending:  true,
		models.ProductStatusApproved: true,
		models.ProductStatusRejected: true,
	}
	if !validStatuses[status] {
		return fmt.Errorf("invalid product status: %s", status)
	}
	return s.repo.UpdateStatus(id, status)
}

// DeleteProduct deletes a listing after checking the caller owns it.
func (s *ProductService) DeleteProduct(id string, userID string) error {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product.UserID != userID {
		return fmt.Errorf("not authorized to delete product %s", id)
	}
	return s.repo.Delete(id)
}
