package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	NameAr    string    `json:"name_ar" gorm:"not null;uniqueIndex"`
	NameEn    string    `json:"name_en" gorm:"not null"`
	Image     *string   `json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Category) TableName() string {
	return "categories"
}

type CategoryRequest struct {
	NameAr string  `json:"name_ar" binding:"required" example:"أحذية"`
	NameEn string  `json:"name_en" binding:"required" example:"Shoes"`
	Image  *string `json:"image"`
}

type UpdateCategoryRequest struct {
	NameAr *string `json:"name_ar"`
	NameEn *string `json:"name_en"`
	Image  *string `json:"image"`
}
