package repositories

import (
	"fmt"

	"pasartani/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMGuideRepository is a GORM implementation of GuideRepository.
type GORMGuideRepository struct {
	db *gorm.DB
}

// NewGORMGuideRepository creates a new instance of GORMGuideRepository.
func NewGORMGuideRepository(db *gorm.DB) *GORMGuideRepository {
	return &GORMGuideRepository{
		db: db,
	}
}

// Create creates a new guide in the database.
func (r *GORMGuideRepository) Create(guide *models.Guide) error {
	if guide.ID == "" {
		guide.ID = uuid.New().String()
	}
	if err := r.db.Create(guide).Error; err != nil {
		return fmt.Errorf("failed to create guide: %w", err)
	}
	return nil
}

// GetByID retrieves a single guide by its ID from the database.
func (r *GORMGuideRepository) GetByID(id string) (*models.Guide, error) {
	var guide models.Guide
	if err := r.db.First(&guide, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("guide with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get guide by ID %s: %w", id, err)
	}
	return &guide, nil
}

// FindByType retrieves all guides of the given type.
func (r *GORMGuideRepository) FindByType(guideType string) ([]models.Guide, error) {
	var guides []models.Guide
	if err := r.db.Find(&guides, "type = ?", guideType).Error; err != nil {
		return nil, fmt.Errorf("failed to get guides of type %s: %w", guideType, err)
	}
	return guides, nil
}

// Delete deletes a guide by its ID from the database.
func (r *GORMGuideRepository) Delete(id string) error {
	res := r.db.Delete(&models.Guide{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete guide: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("guide with ID %s not found for deletion", id)
	}
	return nil
}
