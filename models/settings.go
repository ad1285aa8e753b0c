package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SiteSettings is the single settings row edited by the dashboard settings
// form. Exactly one row exists; Upsert keeps it that way.
type SiteSettings struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	SiteNameAr string    `json:"site_name_ar" gorm:"not null"`
	SiteNameEn string    `json:"site_name_en" gorm:"not null"`
	Logo       *string   `json:"logo,omitempty"`
	Email      *string   `json:"email,omitempty"`
	Phone      *string   `json:"phone,omitempty"`
	Address    *string   `json:"address,omitempty"`
	Currency   string    `json:"currency" gorm:"not null;default:'EGP'"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (s *SiteSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (SiteSettings) TableName() string {
	return "site_settings"
}

type UpdateSettingsRequest struct {
	SiteNameAr *string `json:"site_name_ar"`
	SiteNameEn *string `json:"site_name_en"`
	Logo       *string `json:"logo"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Phone      *string `json:"phone"`
	Address    *string `json:"address"`
	Currency   *string `json:"currency"`
}
