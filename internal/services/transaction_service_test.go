package services_test

import (
	"testing"
	"time"

	"pasartani/internal/models"
	"pasartani/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func storedOrders() []models.Order {
	return []models.Order{
		{
			ID:           "order-1",
			BuyerDetails: models.BuyerDetails{Name: "Acme Foods", Email: "acme@business.test"},
			Farmers: []models.FarmerGroup{
				{
					FarmerDetails: models.FarmerDetails{FarmerName: "Farmer One"},
					Products: []models.LineItem{
						{Name: "Mango", Quantity: 5, Price: 100},
						{Name: "Papaya", Quantity: 2, Price: 150},
					},
				},
				{
					FarmerDetails: models.FarmerDetails{FarmerName: "Farmer Two"},
					Products: []models.LineItem{
						{Name: "Banana", Quantity: 10, Price: 50},
					},
				},
			},
			Transportation: models.TransportDelivery,
			TotalPrice:     2300,
			CreatedAt:      time.Date(2025, 5, 10, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:           "order-2",
			BuyerDetails: models.BuyerDetails{Name: "Budi Catering", Email: "budi@business.test"},
			Farmers: []models.FarmerGroup{
				{
					FarmerDetails: models.FarmerDetails{FarmerName: "Farmer Two"},
					Products: []models.LineItem{
						{Name: "Banana", Quantity: 4, Price: 50},
					},
				},
			},
			Transportation: models.TransportPickup,
			TotalPrice:     200,
			CreatedAt:      time.Date(2025, 5, 11, 9, 0, 0, 0, time.UTC),
		},
	}
}

func TestTransactionService_ListTransactions_Admin(t *testing.T) {
	mockRepo := new(MockOrderRepo)
	service := services.NewTransactionService(mockRepo)

	mockRepo.On("GetAll").Return(storedOrders(), nil).Once()

	orders, err := service.ListTransactions("admin", models.RoleAdmin)
	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	mockRepo.AssertExpectations(t)
}

func TestTransactionService_ListTransactions_Farmer(t *testing.T) {
	mockRepo := new(MockOrderRepo)
	service := services.NewTransactionService(mockRepo)

	all := storedOrders()
	mockRepo.On("FindByFarmerName", "Farmer One").Return(all[:1], nil).Once()

	orders, err := service.ListTransactions("Farmer One", models.RoleFarmer)
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, "order-1", orders[0].ID)
	mockRepo.AssertExpectations(t)
}

func TestTransactionService_ListTransactions_Business(t *testing.T) {
	mockRepo := new(MockOrderRepo)
	service := services.NewTransactionService(mockRepo)

	all := storedOrders()
	mockRepo.On("FindByBuyerEmail", "budi@business.test").Return(all[1:], nil).Once()

	orders, err := service.ListTransactions("budi@business.test", models.RoleBusiness)
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, "order-2", orders[0].ID)
	mockRepo.AssertExpectations(t)
}

func TestTransactionService_ListTransactions_InvalidRole(t *testing.T) {
	mockRepo := new(MockOrderRepo)
	service := services.NewTransactionService(mockRepo)

	_, err := service.ListTransactions("whoever", "courier")
	assert.ErrorIs(t, err, services.ErrInvalidRole)

	// The role check runs before any storage access.
	mockRepo.AssertNotCalled(t, "GetAll")
	mockRepo.AssertNotCalled(t, "FindByFarmerName", mock.Anything)
	mockRepo.AssertNotCalled(t, "FindByBuyerEmail", mock.Anything)
}

func TestTransactionService_ListTransactions_Empty(t *testing.T) {
	mockRepo := new(MockOrderRepo)
	service := services.NewTransactionService(mockRepo)

	mockRepo.On("FindByFarmerName", "Farmer Three").Return([]models.Order{}, nil).Once()

	_, err := service.ListTransactions("Farmer Three", models.RoleFarmer)
	assert.ErrorIs(t, err, services.ErrNoTransactions)
	mockRepo.AssertExpectations(t)
}

func TestTransactionService_BuildReport(t *testing.T) {
	service := services.NewTransactionService(nil)

	rows := service.BuildReport(storedOrders())

	// One row per farmer group: two for order-1, one for order-2.
	assert.Len(t, rows, 3)

	// Rows are grouped by buyer, buyers in first-seen order.
	assert.Equal(t, "Acme Foods", rows[0].Buyer)
	assert.Equal(t, "Acme Foods", rows[1].Buyer)
	assert.Equal(t, "Budi Catering", rows[2].Buyer)

	assert.Equal(t, "Farmer One", rows[0].FarmerName)
	assert.Equal(t, "Farmer Two", rows[1].FarmerName)

	// Per-line totals are computed per product.
	assert.Equal(t, 500.0, rows[0].Products[0].LineTotal)
	assert.Equal(t, 300.0, rows[0].Products[1].LineTotal)
	assert.Equal(t, 500.0, rows[1].Products[0].LineTotal)

	// Order-level transportation and total repeat on every row of the
	// order, not once per order.
	assert.Equal(t, models.TransportDelivery, rows[0].Transportation)
	assert.Equal(t, 2300.0, rows[0].TotalPrice)
	assert.Equal(t, models.TransportDelivery, rows[1].Transportation)
	assert.Equal(t, 2300.0, rows[1].TotalPrice)
	assert.Equal(t, 200.0, rows[2].TotalPrice)
}

func TestTransactionService_BuildReport_Empty(t *testing.T) {
	service := services.NewTransactionService(nil)
	assert.Empty(t, service.BuildReport(nil))
}
