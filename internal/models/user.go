package models

import "gorm.io/gorm"

// Marketplace roles. The role decides which transaction view a principal
// sees: farmers their sales, businesses their purchases, admins everything.
const (
	RoleFarmer   = "farmer"
	RoleBusiness = "business"
	RoleAdmin    = "admin"
)

// User represents a marketplace account. The profile fields seed the buyer
// details snapshot at checkout.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string `json:"name" validate:"required,min=2,max=100"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string `gorm:"type:varchar(255)" validate:"required,min=6"` // No json tag for security
	Role       string `json:"role" validate:"required,oneof=farmer business admin"`
	Address    string `json:"address"`
	Location   string `json:"location"`
	gorm.Model `json:"-"` // CreatedAt, UpdatedAt, DeletedAt
}
