package services

import (
	"fmt"

	"pasartani/internal/models"
	"pasartani/internal/repositories"
)

// TransactionService answers role-scoped queries over stored orders and
// builds the re-aggregated admin report.
type TransactionService struct {
	orderRepo repositories.OrderRepository
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(orderRepo repositories.OrderRepository) *TransactionService {
	return &TransactionService{
		orderRepo: orderRepo,
	}
}

// ListTransactions returns the orders visible to the given principal.
// Admins see everything; farmers see orders containing one of their farmer
// groups, matched by farmer name; businesses see orders placed under their
// buyer email. The role check runs before any storage access, and an empty
// result is reported as ErrNoTransactions for every role alike.
func (s *TransactionService) ListTransactions(identifier, role string) ([]models.Order, error) {
	var (
		orders []models.Order
		err    error
	)

	switch role {
	case models.RoleAdmin:
		orders, err = s.orderRepo.GetAll()
	case models.RoleFarmer:
		orders, err = s.orderRepo.FindByFarmerName(identifier)
	case models.RoleBusiness:
		orders, err = s.orderRepo.FindByBuyerEmail(identifier)
	default:
		return nil, ErrInvalidRole
	}

	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}
	if len(orders) == 0 {
		return nil, ErrNoTransactions
	}
	return orders, nil
}

// BuildReport flattens orders into the farmer-row-oriented ledger: rows are
// grouped by buyer name, then one row per farmer group. Each row repeats the
// order-level transportation and total once per farmer group and carries the
// computed per-line totals. This is a reporting denormalization only; the
// stored orders are untouched.
func (s *TransactionService) BuildReport(orders []models.Order) []models.ReportRow {
	rowsByBuyer := make(map[string][]models.ReportRow)
	buyerOrder := make([]string, 0)

	for _, order := range orders {
		buyer := order.BuyerDetails.Name
		if _, seen := rowsByBuyer[buyer]; !seen {
			buyerOrder = append(buyerOrder, buyer)
		}

		for _, group := range order.Farmers {
			lines := make([]models.ReportLine, 0, len(group.Products))
			for _, item := range group.Products {
				lines = append(lines, models.ReportLine{
					LineItem:  item,
					LineTotal: item.Price * item.Quantity,
				})
			}
			rowsByBuyer[buyer] = append(rowsByBuyer[buyer], models.ReportRow{
				Buyer:          buyer,
				FarmerName:     group.FarmerDetails.FarmerName,
				Products:       lines,
				Transportation: order.Transportation,
				TotalPrice:     order.TotalPrice,
				CreatedAt:      order.CreatedAt,
			})
		}
	}

	rows := make([]models.ReportRow, 0)
	for _, buyer := range buyerOrder {
		rows = append(rows, rowsByBuyer[buyer]...)
	}
	return rows
}
