package models

import "time"

// Transportation options for an order. Delivery carries a fixed surcharge,
// Pick-up costs nothing.
const (
	TransportPickup   = "Pick-up"
	TransportDelivery = "Delivery"
)

// CartLine is one buyer-selected product quantity from one farmer, prior to
// order submission. It carries the farmer's contact snapshot alongside the
// product detail so the grouped order needs no further lookups.
type CartLine struct {
	FarmerID      string  `json:"farmerId" validate:"required"`
	FarmerName    string  `json:"farmerName"`
	FarmerEmail   string  `json:"farmerEmail"`
	FarmerAddress string  `json:"farmerAddress"`
	Location      string  `json:"location"`
	ProductID     string  `json:"productId"`
	Name          string  `json:"name"`
	Quantity      float64 `json:"quantity" validate:"required,gt=0"`
	Price         float64 `json:"price" validate:"required,gt=0"`
	Grade         string  `json:"grade"`
	Image         string  `json:"image"`
}

// BuyerDetails is a snapshot of the buyer at checkout time, not a live
// reference to the buyer account.
type BuyerDetails struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Address  string `json:"address"`
	Location string `json:"location"`
}

// FarmerDetails is a snapshot of one farmer at checkout time.
type FarmerDetails struct {
	FarmerName    string `json:"farmerName"`
	FarmerEmail   string `json:"farmerEmail"`
	FarmerAddress string `json:"farmerAddress"`
	Location      string `json:"location"`
}

// LineItem is one product position inside a farmer group. Price is the
// per-unit price captured at checkout, not the current catalog price.
type LineItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	Price     float64 `json:"price"`
	Grade     string  `json:"grade"`
	Image     string  `json:"image"`
}

// FarmerGroup holds one farmer's snapshot details and the line items bought
// from them in a single order.
type FarmerGroup struct {
	FarmerDetails FarmerDetails `json:"farmerDetails"`
	Products      []LineItem    `json:"products"`
}

// Checkout is the grouped view of a cart plus its computed totals, returned
// by the quote endpoint before the buyer submits.
type Checkout struct {
	Farmers            []FarmerGroup `json:"farmers"`
	Subtotal           float64       `json:"subtotal"`
	Transportation     string        `json:"transportation"`
	TransportationCost float64       `json:"transportationCost"`
	TotalPrice         float64       `json:"totalPrice"`
}

// Order is one checkout, persisted as a single row. The nested buyer and
// farmer trees are stored through GORM's JSON serializer so the whole
// document is written atomically; orders are never updated or deleted after
// creation.
type Order struct {
	ID                 string        `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID             string        `json:"userId" gorm:"type:varchar(36);index"`
	BuyerDetails       BuyerDetails  `json:"buyerDetails" gorm:"type:text;serializer:json"`
	Farmers            []FarmerGroup `json:"farmers" gorm:"type:text;serializer:json"`
	Transportation     string        `json:"transportation"`
	TransportationCost float64       `json:"transportationCost"`
	TotalPrice         float64       `json:"totalPrice"`
	CreatedAt          time.Time     `json:"createdAt"`
}

// OrderRequest is the checkout payload submitted by the client. TotalPrice
// is recomputed server-side and must match when supplied.
type OrderRequest struct {
	BuyerDetails       BuyerDetails  `json:"buyerDetails" validate:"required"`
	Farmers            []FarmerGroup `json:"farmers" validate:"required,min=1"`
	Transportation     string        `json:"transportation" validate:"required,oneof=Pick-up Delivery"`
	TransportationCost float64       `json:"transportationCost"`
	TotalPrice         float64       `json:"totalPrice"`
}

// FlatOrderRequest is the legacy checkout payload carrying ungrouped cart
// lines instead of farmer groups. It maps onto the same stored Order.
type FlatOrderRequest struct {
	BuyerDetails       BuyerDetails `json:"buyerDetails" validate:"required"`
	Products           []CartLine   `json:"products" validate:"required,min=1"`
	Transportation     string       `json:"transportation" validate:"required,oneof=Pick-up Delivery"`
	TransportationCost float64      `json:"transportationCost"`
	TotalPrice         float64      `json:"totalPrice"`
}

// ReportLine is one product position in the admin report with its computed
// line total.
type ReportLine struct {
	LineItem
	LineTotal float64 `json:"lineTotal"`
}

// ReportRow is one farmer group of one order, flattened for the admin
// ledger. Transportation and TotalPrice repeat the order-level values once
// per farmer group because the report is farmer-row-oriented.
type ReportRow struct {
	Buyer          string       `json:"buyer"`
	FarmerName     string       `json:"farmerName"`
	Products       []ReportLine `json:"products"`
	Transportation string       `json:"transportation"`
	TotalPrice     float64      `json:"totalPrice"`
	CreatedAt      time.Time    `json:"createdAt"`
}
