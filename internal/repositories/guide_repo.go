package repositories

import "pasartani/internal/models"

// GuideRepository defines the interface for guide data access.
type GuideRepository interface {
	Create(guide *models.Guide) error
	GetByID(id string) (*models.Guide, error)
	FindByType(guideType string) ([]models.Guide, error)
	Delete(id string) error
}
