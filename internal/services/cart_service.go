package services

import (
	"pasartani/internal/models"
)

// GroupCart partitions flat cart lines into one FarmerGroup per distinct
// farmer. Farmers appear in first-seen order, and so do products within a
// farmer. The farmer snapshot is taken from that farmer's first line; later
// lines are not merged or cross-checked.
func GroupCart(lines []models.CartLine) []models.FarmerGroup {
	groups := make([]models.FarmerGroup, 0)
	indexByFarmer := make(map[string]int)

	for _, line := range lines {
		idx, seen := indexByFarmer[line.FarmerID]
		if !seen {
			idx = len(groups)
			indexByFarmer[line.FarmerID] = idx
			groups = append(groups, models.FarmerGroup{
				FarmerDetails: models.FarmerDetails{
					FarmerName:    line.FarmerName,
					FarmerEmail:   line.FarmerEmail,
					FarmerAddress: line.FarmerAddress,
					Location:      line.Location,
				},
			})
		}
		groups[idx].Products = append(groups[idx].Products, models.LineItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			Price:     line.Price,
			Grade:     line.Grade,
			Image:     line.Image,
		})
	}
	return groups
}

// TransportationCost returns the surcharge for the given transportation
// option: zero for Pick-up, the configured fee for Delivery.
func TransportationCost(transportation string, deliveryFee float64) float64 {
	if transportation == models.TransportDelivery {
		return deliveryFee
	}
	return 0
}

// BuildCheckout groups a cart and computes its totals. An empty cart yields
// an empty farmers list with the total equal to the transportation cost;
// rejecting empty submissions is the caller's call.
func BuildCheckout(lines []models.CartLine, transportation string, deliveryFee float64) models.Checkout {
	cost := TransportationCost(transportation, deliveryFee)

	var subtotal float64
	for _, line := range lines {
		subtotal += line.Price * line.Quantity
	}

	return models.Checkout{
		Farmers:            GroupCart(lines),
		Subtotal:           subtotal,
		Transportation:     transportation,
		TransportationCost: cost,
		TotalPrice:         subtotal + cost,
	}
}
