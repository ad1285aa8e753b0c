package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// JSONB Type Definitions
// ═══════════════════════════════════════════════════════════

// ImageList is the ordered list of public image URLs stored as JSONB.
type ImageList []string

func (l *ImageList) Scan(value interface{}) error {
	if value == nil {
		*l = make(ImageList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan ImageList")
	}
	return json.Unmarshal(bytes, l)
}

func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(l)
}

// ═══════════════════════════════════════════════════════════
// Main Product Model (GORM)
// ═══════════════════════════════════════════════════════════

type Product struct {
	ID            uuid.UUID          `json:"id" gorm:"type:uuid;primaryKey"`
	NameAr        string             `json:"name_ar" gorm:"not null;index"`
	NameEn        string             `json:"name_en" gorm:"not null;index"`
	DescriptionAr *string            `json:"description_ar,omitempty"`
	DescriptionEn *string            `json:"description_en,omitempty"`
	Price         float64            `json:"price" gorm:"type:numeric(12,2);not null;check:price >= 0"`
	OfferPrice    *float64           `json:"offer_price,omitempty" gorm:"type:numeric(12,2)"`
	Stock         *int               `json:"stock,omitempty"`
	Images        ImageList          `json:"images" gorm:"type:jsonb;not null;default:'[]'"`
	CategoryID    uuid.UUID          `json:"category_id" gorm:"type:uuid;not null;index:idx_products_category"`
	Category      *Category          `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID"`
	IsBestSeller  bool               `json:"is_best_seller" gorm:"not null;default:false;index"`
	IsOffer       bool               `json:"is_offer" gorm:"not null;default:false;index"`
	Attributes    []ProductAttribute `json:"attributes" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time          `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time          `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// ProductAttribute is a free-form name/value pair owned by a product.
// No uniqueness is enforced; duplicates supplied by the caller are kept.
// Rows are removed by the FK cascade when the owning product is deleted.
type ProductAttribute struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index:idx_product_attributes_product"`
	Name      string    `json:"name" gorm:"not null"`
	Value     string    `json:"value" gorm:"not null"`
}

func (a *ProductAttribute) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (ProductAttribute) TableName() string {
	return "product_attributes"
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type AttributeInput struct {
	Name  string `json:"name" binding:"required" example:"اللون"`
	Value string `json:"value" binding:"required" example:"أسود"`
}

type ProductRequest struct {
	NameAr        string           `json:"name_ar" binding:"required" example:"حذاء رياضي"`
	NameEn        string           `json:"name_en" binding:"required" example:"Running Shoes"`
	DescriptionAr *string          `json:"description_ar"`
	DescriptionEn *string          `json:"description_en"`
	Price         float64          `json:"price" binding:"required,min=0" example:"99.99"`
	OfferPrice    *float64         `json:"offer_price" binding:"omitempty,min=0"`
	Stock         *int             `json:"stock" binding:"omitempty,min=0"`
	Images        []string         `json:"images"`
	CategoryID    uuid.UUID        `json:"category_id" binding:"required"`
	IsBestSeller  bool             `json:"is_best_seller"`
	IsOffer       bool             `json:"is_offer"`
	Attributes    []AttributeInput `json:"attributes"`
}

// UpdateProductRequest carries a partial update: only non-nil fields are
// written. A non-nil Attributes (even empty) replaces the whole attribute
// set, delete-then-reinsert, never incremental.
type UpdateProductRequest struct {
	NameAr        *string           `json:"name_ar"`
	NameEn        *string           `json:"name_en"`
	DescriptionAr *string           `json:"description_ar"`
	DescriptionEn *string           `json:"description_en"`
	Price         *float64          `json:"price" binding:"omitempty,min=0"`
	OfferPrice    *float64          `json:"offer_price" binding:"omitempty,min=0"`
	Stock         *int              `json:"stock" binding:"omitempty,min=0"`
	Images        *[]string         `json:"images"`
	CategoryID    *uuid.UUID        `json:"category_id"`
	IsBestSeller  *bool             `json:"is_best_seller"`
	IsOffer       *bool             `json:"is_offer"`
	Attributes    *[]AttributeInput `json:"attributes"`
}

// ProductFilters are the independently optional list filters. DateWindow is
// computed against wall-clock now at query time.
type ProductFilters struct {
	CategoryID   *uuid.UUID // exact category match
	Search       string     // case-insensitive substring over name_ar OR name_en
	DateWindow   string     // "" | "today" | "7days" | "month" | "year"
	IsBestSeller *bool      // exact flag match
	IsOffer      *bool      // exact flag match
}

// UploadImageRequest is the base64 upload path. Multipart uploads carry the
// file directly instead.
type UploadImageRequest struct {
	Base64   string `json:"base64" binding:"required"`
	FileName string `json:"file_name" binding:"required" example:"shoe.png"`
	Folder   string `json:"folder" example:"products"`
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

type ProductStatsResponse struct {
	TotalProducts   int     `json:"total_products"`
	BestSellers     int     `json:"best_sellers"`
	ActiveOffers    int     `json:"active_offers"`
	OutOfStock      int     `json:"out_of_stock"`
	AveragePrice    float64 `json:"average_price"`
	NewThisMonth    int     `json:"new_this_month"`
	PercentBestSell float64 `json:"percent_best_sellers"`
	PercentOnOffer  float64 `json:"percent_on_offer"`
}
