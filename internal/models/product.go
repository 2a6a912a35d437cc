package models

import "gorm.io/gorm"

// Product review states. New listings start Pending until an admin reviews
// them; only Approved listings show up in the buyer marketplace.
const (
	ProductStatusPending  = "Pending"
	ProductStatusApproved = "Approved"
	ProductStatusRejected = "Rejected"
)

// Product represents a farmer's marketplace listing. The farmer contact
// fields are copied into cart lines at checkout time as a snapshot.
type Product struct {
	ID            string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name          string  `json:"name" validate:"required,min=2,max=100"`
	Quantity      float64 `json:"quantity" validate:"required,gt=0"`
	Grade         string  `json:"grade" validate:"required"`
	Price         float64 `json:"price" validate:"required,gt=0"`
	Location      string  `json:"location"`
	FarmerName    string  `json:"farmerName" gorm:"index"`
	FarmerAddress string  `json:"farmerAddress"`
	FarmerEmail   string  `json:"farmerEmail"`
	Status        string  `json:"status"`
	Image         string  `json:"image"`
	UserID        string  `json:"userId" gorm:"type:varchar(36);index"`
	gorm.Model    `json:"-"` // CreatedAt, UpdatedAt, DeletedAt
}
