package services_test

import (
	"fmt"
	"testing"

	"pasartani/internal/models"
	"pasartani/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) FindByFarmerName(farmerName string) ([]models.Product, error) {
	args := m.Called(farmerName)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) UpdateStatus(id string, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestProductService_GetAllProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expectedProducts := []models.Product{
		{ID: "1", Name: "Mango", Price: 100.0, Quantity: 50, Grade: "A", FarmerName: "Farmer One"},
		{ID: "2", Name: "Banana", Price: 50.0, Quantity: 80, Grade: "B", FarmerName: "Farmer Two"},
	}

	mockRepo.On("GetAll").Return(expectedProducts, nil).Once()

	products, err := service.GetAllProducts()

	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, expectedProducts, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetFarmerStocks(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expected := []models.Product{
		{ID: "1", Name: "Mango", FarmerName: "Farmer One"},
	}
	mockRepo.On("FindByFarmerName", "Farmer One").Return(expected, nil).Once()

	products, err := service.GetFarmerStocks("Farmer One")
	assert.NoError(t, err)
	assert.Equal(t, expected, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	// A client-supplied status is ignored; new listings always start Pending.
	newProduct := &models.Product{Name: "Papaya", Price: 150.0, Quantity: 20, Grade: "A", Status: models.ProductStatusApproved}

	mockRepo.On("Create", newProduct).Return(nil).Once()
	err := service.CreateProduct(newProduct)
	assert.NoError(t, err)
	assert.Equal(t, models.ProductStatusPending, newProduct.Status)
	mockRepo.AssertExpectations(t)
}

func TestProductService_ReviewProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	mockRepo.On("UpdateStatus", "1", models.ProductStatusApproved).Return(nil).Once()
	err := service.ReviewProduct("1", models.ProductStatusApproved)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Unknown review states are rejected before the repository is touched.
	err = service.ReviewProduct("1", "Sold")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid product status")
	mockRepo.AssertNumberOfCalls(t, "UpdateStatus", 1)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	owned := &models.Product{ID: "1", Name: "Mango", UserID: "user-1"}

	// The owner can delete their listing.
	mockRepo.On("GetByID", "1").Return(owned, nil).Once()
	mockRepo.On("Delete", "1").Return(nil).Once()
	err := service.DeleteProduct("1", "user-1")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Anyone else is rejected.
	mockRepo.On("GetByID", "1").Return(owned, nil).Once()
	err = service.DeleteProduct("1", "user-2")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not authorized")
	mockRepo.AssertNumberOfCalls(t, "Delete", 1)

	// Missing listing surfaces the repository error.
	mockRepo.On("GetByID", "99").Return(nil, fmt.Errorf("product with ID 99 not found")).Once()
	err = service.DeleteProduct("99", "user-1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
