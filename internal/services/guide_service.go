package services

import (
	"pasartani/internal/models"
	"pasartani/internal/repositories"
)

// GuideService handles business logic for farming guides.
type GuideService struct {
	repo repositories.GuideRepository
}

// NewGuideService creates a new GuideService.
func NewGuideService(repo repositories.GuideRepository) *GuideService {
	return &GuideService{
		repo: repo,
	}
}

// CreateGuide creates a new guide.
func (s *GuideService) CreateGuide(guide *models.Guide) error {
	return s.repo.Create(guide)
}

// GetGuidesByType retrieves all guides of the given type.
func (s *GuideService) GetGuidesByType(guideType string) ([]models.Guide, error) {
	return s.repo.FindByType(guideType)
}

// DeleteGuide deletes a guide by its ID, returning the deleted guide so the
// handler can clean up its image file.
func (s *GuideService) DeleteGuide(id string) (*models.Guide, error) {
	guide, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(id); err != nil {
		return nil, err
	}
	return guide, nil
}
