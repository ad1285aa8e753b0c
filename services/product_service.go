package services

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BassamElsayed2/e-commerceCp/models"
)

// ProductService coordinates the product row, its attribute rows, and the
// stored image objects. The three resources are independent: multi-step
// operations run sequentially with no cross-resource transaction, and a
// partially completed write (row saved, attributes not) is an accepted
// outcome reported through the warnings list, not an error.
type ProductService struct {
	db     *gorm.DB
	images ImageStore
}

func NewProductService(db *gorm.DB, images ImageStore) *ProductService {
	return &ProductService{db: db, images: images}
}

// List returns one page of products joined with their attributes, plus the
// total match count for pagination. Every filter is independently optional;
// ordering is always newest first.
func (s *ProductService) List(ctx context.Context, page, limit int, f models.ProductFilters) ([]models.Product, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.Product{})

	if f.CategoryID != nil {
		query = query.Where("category_id = ?", *f.CategoryID)
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		query = query.Where("name_ar ILIKE ? OR name_en ILIKE ?", pattern, pattern)
	}
	if cutoff, ok := dateWindowCutoff(time.Now(), f.DateWindow); ok {
		query = query.Where("created_at >= ?", cutoff)
	}
	if f.IsBestSeller != nil {
		query = query.Where("is_best_seller = ?", *f.IsBestSeller)
	}
	if f.IsOffer != nil {
		query = query.Where("is_offer = ?", *f.IsOffer)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	products := make([]models.Product, 0)
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Preload("Attributes").
		Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func dateWindowCutoff(now time.Time, window string) (time.Time, bool) {
	switch window {
	case "today":
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), true
	case "7days":
		return now.AddDate(0, 0, -7), true
	case "month":
		return now.AddDate(0, -1, 0), true
	case "year":
		return now.AddDate(-1, 0, 0), true
	default:
		return time.Time{}, false
	}
}

// GetByID returns one product with its attributes. A missing row surfaces
// as gorm.ErrRecordNotFound.
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).
		Preload("Attributes").
		First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// Create inserts the product row, then its attribute rows as a dependent
// second step. A row-insert failure aborts with no attribute writes. An
// attribute-insert failure is logged and reported as a warning only: the
// created product is returned as success regardless.
func (s *ProductService) Create(ctx context.Context, req models.ProductRequest) (*models.Product, []string, error) {
	product := models.Product{
		NameAr:        req.NameAr,
		NameEn:        req.NameEn,
		DescriptionAr: req.DescriptionAr,
		DescriptionEn: req.DescriptionEn,
		Price:         req.Price,
		OfferPrice:    req.OfferPrice,
		Stock:         req.Stock,
		Images:        models.ImageList(req.Images),
		CategoryID:    req.CategoryID,
		IsBestSeller:  req.IsBestSeller,
		IsOffer:       req.IsOffer,
	}

	if err := s.db.WithContext(ctx).Omit("Attributes").Create(&product).Error; err != nil {
		return nil, nil, err
	}

	var warnings []string
	if len(req.Attributes) > 0 {
		attrs := attributeRows(product.ID, req.Attributes)
		if err := s.db.WithContext(ctx).Create(&attrs).Error; err != nil {
			log.Printf("[product.create] WARN attribute insert failed product=%s err=%v", product.ID, err)
			warnings = append(warnings, fmt.Sprintf("attributes were not saved: %v", err))
		} else {
			product.Attributes = attrs
		}
	}

	return &product, warnings, nil
}

// Update writes only the supplied fields on the product row. A non-nil
// Attributes set (even empty) replaces the whole attribute set: existing
// rows are deleted first, then the new set is inserted. Attribute step
// failures are logged and reported as warnings; the updated row is still
// returned as success.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req models.UpdateProductRequest) (*models.Product, []string, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, nil, err
	}

	updates := buildProductUpdates(req)
	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&product).Updates(updates).Error; err != nil {
			return nil, nil, err
		}
	}

	var warnings []string
	if req.Attributes != nil {
		if err := s.db.WithContext(ctx).
			Where("product_id = ?", id).
			Delete(&models.ProductAttribute{}).Error; err != nil {
			log.Printf("[product.update] WARN attribute delete failed product=%s err=%v", id, err)
			warnings = append(warnings, fmt.Sprintf("old attributes were not removed: %v", err))
		} else if len(*req.Attributes) > 0 {
			attrs := attributeRows(id, *req.Attributes)
			if err := s.db.WithContext(ctx).Create(&attrs).Error; err != nil {
				log.Printf("[product.update] WARN attribute insert failed product=%s err=%v", id, err)
				warnings = append(warnings, fmt.Sprintf("new attributes were not saved: %v", err))
			}
		}
	}

	// Best-effort reload; the update already succeeded.
	if err := s.db.WithContext(ctx).
		Preload("Attributes").
		First(&product, "id = ?", id).Error; err != nil {
		log.Printf("[product.update] WARN reload failed product=%s err=%v", id, err)
	}

	return &product, warnings, nil
}

// Delete removes the stored image objects, then the product row. The image
// URL fetch failing aborts the whole deletion; a per-image removal failure
// is logged and does not stop the remaining removals or the row delete.
// Attribute rows are removed by the FK cascade, not here.
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) ([]string, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).
		Select("id", "images").
		First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}

	var warnings []string
	for _, url := range product.Images {
		publicID := PublicIDFromURL(url)
		if publicID == "" {
			log.Printf("[product.delete] WARN unrecognized image URL product=%s url=%s", id, url)
			warnings = append(warnings, fmt.Sprintf("image not removed (unrecognized URL): %s", url))
			continue
		}
		if err := s.images.Remove(ctx, publicID); err != nil {
			log.Printf("[product.delete] WARN image removal failed product=%s key=%s err=%v", id, publicID, err)
			warnings = append(warnings, fmt.Sprintf("image %s was not removed: %v", publicID, err))
		}
	}

	if err := s.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id).Error; err != nil {
		return warnings, err
	}

	return warnings, nil
}

// UploadImageFile stores a multipart file and returns its public URL.
func (s *ProductService) UploadImageFile(ctx context.Context, file multipart.File, fileName, folder string) (string, error) {
	return s.images.UploadFile(ctx, file, fileName, folder)
}

// UploadImageBase64 stores a base64 payload and returns its public URL.
func (s *ProductService) UploadImageBase64(ctx context.Context, payload, fileName, folder string) (string, error) {
	return s.images.UploadBase64(ctx, payload, fileName, folder)
}

func attributeRows(productID uuid.UUID, inputs []models.AttributeInput) []models.ProductAttribute {
	attrs := make([]models.ProductAttribute, 0, len(inputs))
	for _, in := range inputs {
		attrs = append(attrs, models.ProductAttribute{
			ProductID: productID,
			Name:      in.Name,
			Value:     in.Value,
		})
	}
	return attrs
}

func buildProductUpdates(req models.UpdateProductRequest) map[string]interface{} {
	updates := make(map[string]interface{})
	if req.NameAr != nil {
		updates["name_ar"] = *req.NameAr
	}
	if req.NameEn != nil {
		updates["name_en"] = *req.NameEn
	}
	if req.DescriptionAr != nil {
		updates["description_ar"] = *req.DescriptionAr
	}
	if req.DescriptionEn != nil {
		updates["description_en"] = *req.DescriptionEn
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.OfferPrice != nil {
		updates["offer_price"] = *req.OfferPrice
	}
	if req.Stock != nil {
		updates["stock"] = *req.Stock
	}
	if req.Images != nil {
		updates["images"] = models.ImageList(*req.Images)
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.IsBestSeller != nil {
		updates["is_best_seller"] = *req.IsBestSeller
	}
	if req.IsOffer != nil {
		updates["is_offer"] = *req.IsOffer
	}
	return updates
}
