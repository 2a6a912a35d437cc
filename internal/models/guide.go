package models

import "gorm.io/gorm"

// Guide is a farming guide entry (article or video link) curated by the
// admin, optionally with a cover image.
type Guide struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title      string `json:"title" validate:"required,min=2,max=200"`
	URL        string `json:"url" validate:"required,url"`
	Type       string `json:"type" gorm:"index" validate:"required"`
	Image      string `json:"image"`
	gorm.Model `json:"-"`
}
